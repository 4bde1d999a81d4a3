package testbench

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/i5heu/GoNatContainers/internal/container"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config describes one workload: how many workers, and how many elements each
// worker inserts before draining its container again.
type Config struct {
	NumWorkers int
	BatchSize  int
}

// Result is what RunTimedTest measured.
type Result struct {
	Inserted int64
	Removed  int64
	Rounds   int64
	Elapsed  time.Duration
}

// Ops is the number of insert plus extract calls that succeeded.
func (r Result) Ops() int64 {
	return r.Inserted + r.Removed
}

// IntegrityError reports a container that returned the wrong element or count.
type IntegrityError struct {
	Worker int
	Round  int64
	Index  uint
	Want   uint
	Got    uint
	What   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("worker %d round %d: %s at index %d: want %d, got %d",
		e.Worker, e.Round, e.What, e.Index, e.Want, e.Got)
}

// RunTimedTest starts cfg.NumWorkers goroutines that each own a container made
// by newContainer. Containers are never shared: every worker repeatedly fills
// its own container with BatchSize values and drains it, checking that values
// come back in the promised order. Workers stop when testDuration expires, or
// on the first error, which is returned.
func RunTimedTest[Q container.ValidationInterface](
	ctx context.Context,
	newContainer func() (Q, error),
	order container.Order,
	cfg Config,
	testDuration time.Duration,
) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, testDuration)
	defer cancel()

	if cfg.NumWorkers < 1 {
		cfg.NumWorkers = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}

	var inserted, removed, rounds atomic.Int64

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.NumWorkers; i++ {
		worker := i
		g.Go(func() error {
			c, err := newContainer()
			if err != nil {
				return err
			}
			defer c.Invalidate()

			n := uint(cfg.BatchSize)
			for round := int64(0); ctx.Err() == nil; round++ {
				if err := fill(c, n); err != nil {
					return err
				}
				inserted.Add(int64(n))
				if err := drain(c, order, n, worker, round); err != nil {
					return err
				}
				removed.Add(int64(n))
				rounds.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	res := Result{
		Inserted: inserted.Load(),
		Removed:  removed.Load(),
		Rounds:   rounds.Load(),
		Elapsed:  time.Since(start),
	}
	if err != nil {
		zap.L().Error("workload failed", zap.Error(err), zap.Int("workers", cfg.NumWorkers))
	}
	return res, err
}

func fill[Q container.ValidationInterface](c Q, n uint) error {
	for i := uint(0); i < n; i++ {
		if err := c.Insert(i); err != nil {
			return err
		}
	}
	return nil
}

func drain[Q container.ValidationInterface](c Q, order container.Order, n uint, worker int, round int64) error {
	count, err := c.Count()
	if err != nil {
		return err
	}
	if count != n {
		return &IntegrityError{Worker: worker, Round: round, What: "count", Want: n, Got: count}
	}
	for i := uint(0); i < n; i++ {
		want := order.Expected(i, n)
		top, err := c.Peek()
		if err != nil {
			return err
		}
		v, err := c.Extract()
		if err != nil {
			return err
		}
		if v != want {
			return &IntegrityError{Worker: worker, Round: round, Index: i, What: "extract", Want: want, Got: v}
		}
		if top != v {
			return &IntegrityError{Worker: worker, Round: round, Index: i, What: "peek", Want: v, Got: top}
		}
	}
	return nil
}
