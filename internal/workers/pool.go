package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

type semaphorePool struct {
	sem *semaphore.Weighted
}

// NewPool returns a Pool that runs at most size jobs concurrently.
// A size of zero or less means runtime.NumCPU().
func NewPool(size int) Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	return &semaphorePool{sem: semaphore.NewWeighted(int64(size))}
}

func (p *semaphorePool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)

	return fn()
}
