// SPDX-License-Identifier: MIT

package tensor

// DefaultWorkers is the number of goroutines Query uses unless overridden.
const DefaultWorkers = 1

const panicWorkersInvalid = "tensor: WithWorkers: n must be ≥ 1"

// QueryOption configures a single Query or In call.
type QueryOption func(*queryOptions)

type queryOptions struct {
	workers int
}

// WithWorkers splits the point range into n contiguous chunks transformed
// concurrently. Panics if n < 1.
func WithWorkers(n int) QueryOption {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *queryOptions) { o.workers = n }
}

func gatherQueryOptions(opts ...QueryOption) queryOptions {
	o := queryOptions{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
