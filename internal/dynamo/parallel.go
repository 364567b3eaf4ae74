package dynamo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/linsim/internal/linalg"
)

// SimulateEach runs op independently from every initial state. Results are
// returned in the order of initials. The first failure cancels runs that
// have not started yet and is returned.
func SimulateEach(ctx context.Context, op linalg.Matrix, initials []linalg.Vector, cycles int, opts Options) ([]*Result, error) {
	results := make([]*Result, len(initials))
	shared := op.Clone()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, x0 := range initials {
		i, x0 := i, x0
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := &Simulator{op: shared, opts: opts}
			res, err := s.Run(x0, cycles)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
