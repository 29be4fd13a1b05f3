package minkowski

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// task runs fn on every element of data. The elements are split into at
// most workers contiguous chunks, each walked by its own goroutine. A
// failing element does not stop its chunk; the errors of the first failing
// chunk are returned joined.
func task[T any](workers int, data []T, fn func(T) error) error {
	if len(data) == 0 {
		return nil
	}

	workers = max(DEFAULT_WORKERS, min(workers, len(data)))
	chunkSize := (len(data) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(data); start += chunkSize {
		chunk := data[start:min(start+chunkSize, len(data))]

		g.Go(func() error {
			var errs []error
			for _, v := range chunk {
				if err := fn(v); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		})
	}

	return g.Wait()
}
