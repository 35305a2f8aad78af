// Package workers provides bounded execution of CPU-heavy jobs so that a
// burst of expensive work cannot starve unrelated request handling.
package workers

import "context"

// Pool runs jobs with a fixed upper bound on how many execute at once.
//
// Do blocks until a slot is free or ctx is done. When ctx is done first, fn
// is not run and ctx.Err() is returned; otherwise the error of fn is
// returned.
//
// Example:
//
//	var digest string
//	err := pool.Do(ctx, func() error {
//	    var err error
//	    digest, err = hasher.Hash(password)
//	    return err
//	})
type Pool interface {
	Do(ctx context.Context, fn func() error) error
}
