package main

import (
	"github.com/i5heu/GoNatContainers/internal/container"
	"github.com/i5heu/GoNatContainers/pkg/linked"
	"github.com/i5heu/GoNatContainers/pkg/niqueue"
	"github.com/i5heu/GoNatContainers/pkg/nistack"
)

// Implementation represents one benchmarked container.
type Implementation struct {
	name         string
	description  string
	pkgName      string
	authors      []string
	features     []string
	order        container.Order
	newContainer func(opts ...linked.Option) (container.ValidationInterface, error)
}

// queueContainer adapts niqueue.Queue to container.ValidationInterface.
type queueContainer struct{ *niqueue.Queue }

func (c queueContainer) Insert(v uint) error    { return c.Add(v) }
func (c queueContainer) Extract() (uint, error) { return c.Remove() }

type stackContainer struct{ *nistack.Stack }

func (c stackContainer) Insert(v uint) error    { return c.Push(v) }
func (c stackContainer) Extract() (uint, error) { return c.Pop() }

type linkedQueueContainer struct{ *linked.Queue[uint] }

func (c linkedQueueContainer) Insert(v uint) error    { return c.Add(v) }
func (c linkedQueueContainer) Extract() (uint, error) { return c.Remove() }
func (c linkedQueueContainer) Invalidate() error      { return c.Queue.Invalidate(nil) }

type linkedStackContainer struct{ *linked.Stack[uint] }

func (c linkedStackContainer) Insert(v uint) error    { return c.Push(v) }
func (c linkedStackContainer) Extract() (uint, error) { return c.Pop() }
func (c linkedStackContainer) Invalidate() error      { return c.Stack.Invalidate(nil) }

// getImplementations enumerates the containers under test.
func getImplementations() []Implementation {
	return []Implementation{
		{
			name:        "IntegerQueue",
			pkgName:     "niqueue",
			description: "FIFO adapter over the linked queue with stable error codes.",
			authors:     []string{"Mia Heidenstedt <heidenstedt.org>"},
			features:    []string{"FIFO", "Adapter", "Node-Limit"},
			order:       container.FIFO,
			newContainer: func(opts ...linked.Option) (container.ValidationInterface, error) {
				q := &niqueue.Queue{}
				if err := q.Init(opts...); err != nil {
					return nil, err
				}
				return queueContainer{q}, nil
			},
		},
		{
			name:        "IntegerStack",
			pkgName:     "nistack",
			description: "LIFO adapter over the linked stack with stable error codes.",
			authors:     []string{"Mia Heidenstedt <heidenstedt.org>"},
			features:    []string{"LIFO", "Adapter", "Node-Limit"},
			order:       container.LIFO,
			newContainer: func(opts ...linked.Option) (container.ValidationInterface, error) {
				s := &nistack.Stack{}
				if err := s.Init(opts...); err != nil {
					return nil, err
				}
				return stackContainer{s}, nil
			},
		},
		{
			name:        "LinkedQueue",
			pkgName:     "linked",
			description: "The generic linked queue used directly, as a baseline for the adapter overhead.",
			authors:     []string{"Mia Heidenstedt <heidenstedt.org>"},
			features:    []string{"FIFO", "Baseline", "Node-Limit"},
			order:       container.FIFO,
			newContainer: func(opts ...linked.Option) (container.ValidationInterface, error) {
				return linkedQueueContainer{linked.NewQueue[uint](opts...)}, nil
			},
		},
		{
			name:        "LinkedStack",
			pkgName:     "linked",
			description: "The generic linked stack used directly.",
			authors:     []string{"Mia Heidenstedt <heidenstedt.org>"},
			features:    []string{"LIFO", "Baseline", "Node-Limit"},
			order:       container.LIFO,
			newContainer: func(opts ...linked.Option) (container.ValidationInterface, error) {
				return linkedStackContainer{linked.NewStack[uint](opts...)}, nil
			},
		},
	}
}
