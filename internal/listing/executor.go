package listing

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Source is the store-side half of a list operation.
type Source[T any] interface {
	Count(ctx context.Context, f Filter) (int, error)
	Find(ctx context.Context, f Filter, w Window) ([]T, error)
}

// Execute runs the count and the windowed fetch concurrently and assembles the page.
// The two reads are independent; if either fails the whole call fails and the
// other is cancelled through the shared context. There is no retry.
func Execute[T any](ctx context.Context, src Source[T], q Query) (Page[T], error) {
	var (
		total int
		items []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := src.Count(gctx, q.Filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	g.Go(func() error {
		rows, err := src.Find(gctx, q.Filter, q.Page.Window())
		if err != nil {
			return err
		}
		items = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return Page[T]{}, err
	}
	return Assemble(q.Page, items, total), nil
}
