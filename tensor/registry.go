// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/metricfield/data"
	"github.com/katalvlaran/metricfield/space"
)

const opBuild = "Build"

// Constructor builds a field over a sample set with fixed parameters.
type Constructor func(set *data.Set) (*Field, error)

// catalogue maps metric names to constructors with default parameters.
var catalogue = map[string]Constructor{
	"euclidean-xyz": func(set *data.Set) (*Field, error) { return Euclidean(space.XYZ, set) },
	"dEab":          DEab,
	"dEuv":          DEuv,
	"dE00":          func(set *data.Set) (*Field, error) { return DE00(set, DefaultWeights()) },
	"poincare-cielab": func(set *data.Set) (*Field, error) {
		return PoincareDisk(space.CIELAB, set)
	},
}

// Build constructs the named metric over set.
//
// Errors:
//   - ErrUnknownMetric; constructor errors are passed through.
func Build(name string, set *data.Set) (*Field, error) {
	ctor, ok := catalogue[name]
	if !ok {
		return nil, tensorErrorf(opBuild, fmt.Errorf("%q: %w", name, ErrUnknownMetric))
	}

	return ctor(set)
}

// Names returns the catalogue names in ascending byte order.
func Names() []string {
	out := make([]string, 0, len(catalogue))
	for name := range catalogue {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
