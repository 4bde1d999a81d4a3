package testbench

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/i5heu/GoNatContainers/internal/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceQueue is a minimal container used to drive the runner.
type sliceQueue struct {
	values []uint
	swap   bool
}

func (q *sliceQueue) Insert(v uint) error {
	q.values = append(q.values, v)
	return nil
}

func (q *sliceQueue) Extract() (uint, error) {
	if len(q.values) == 0 {
		return 0, errors.New("empty")
	}
	i := 0
	if q.swap && len(q.values) > 1 {
		i = 1
	}
	v := q.values[i]
	q.values = append(q.values[:i], q.values[i+1:]...)
	return v, nil
}

func (q *sliceQueue) Peek() (uint, error) {
	if len(q.values) == 0 {
		return 0, errors.New("empty")
	}
	if q.swap && len(q.values) > 1 {
		return q.values[1], nil
	}
	return q.values[0], nil
}

func (q *sliceQueue) Count() (uint, error) { return uint(len(q.values)), nil }

func (q *sliceQueue) Invalidate() error {
	q.values = nil
	return nil
}

func TestRunTimedTest(t *testing.T) {
	res, err := RunTimedTest(context.Background(), func() (*sliceQueue, error) {
		return &sliceQueue{}, nil
	}, container.FIFO, Config{NumWorkers: 4, BatchSize: 16}, 50*time.Millisecond)

	require.NoError(t, err)
	assert.Positive(t, res.Rounds)
	assert.Equal(t, res.Inserted, res.Removed)
	assert.Equal(t, res.Rounds*16, res.Inserted)
	assert.Equal(t, res.Inserted*2, res.Ops())
	assert.GreaterOrEqual(t, res.Elapsed, 50*time.Millisecond)
}

func TestRunTimedTestDetectsDisorder(t *testing.T) {
	_, err := RunTimedTest(context.Background(), func() (*sliceQueue, error) {
		return &sliceQueue{swap: true}, nil
	}, container.FIFO, Config{NumWorkers: 2, BatchSize: 4}, time.Second)

	var ierr *IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "extract", ierr.What)
	assert.Equal(t, uint(0), ierr.Index)
	assert.Equal(t, uint(0), ierr.Want)
	assert.Equal(t, uint(1), ierr.Got)
}

func TestRunTimedTestConstructorError(t *testing.T) {
	boom := errors.New("boom")
	_, err := RunTimedTest(context.Background(), func() (*sliceQueue, error) {
		return nil, boom
	}, container.LIFO, Config{}, time.Second)

	assert.ErrorIs(t, err, boom)
}
