// SPDX-License-Identifier: MIT
package strassen

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/z4mat/matrix"
)

// fanOut evaluates the seven product tasks of one recursion level.
//
// Sequential mode runs them in order on the caller. Parallel mode submits a
// task to the level's errgroup only when a worker slot is free; otherwise the
// caller runs it inline, so nested levels never wait on slots held by their
// own ancestors. g.Wait is the only join; tasks share nothing mutable and
// each writes a distinct slot of out.
func (e *Engine) fanOut(tasks [7]func() (*matrix.Packed, error)) ([7]*matrix.Packed, error) {
	var out [7]*matrix.Packed
	if e.sem == nil {
		for i, task := range tasks {
			p, err := task()
			if err != nil {
				return out, err
			}
			out[i] = p
		}

		return out, nil
	}

	var (
		g         errgroup.Group
		inlineErr error
		inlined   int
	)
	for i, task := range tasks {
		if e.sem.TryAcquire(1) {
			g.Go(func() error {
				defer e.sem.Release(1)
				p, err := task()
				out[i] = p

				return err
			})
			continue
		}
		inlined++
		p, err := task()
		if err != nil {
			inlineErr = err
			break
		}
		out[i] = p
	}
	if inlined > 0 {
		e.opts.log.Debugf("fan-out saturated: %d of 7 products ran inline", inlined)
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, inlineErr
}
