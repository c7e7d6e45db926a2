// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/metricfield/space"
	"github.com/katalvlaran/metricfield/tensor"
)

// benchPoints returns an n-point CIELAB lattice clear of the neutral axis.
func benchPoints(n int) []space.Vec3 {
	out := make([]space.Vec3, n)
	for i := range out {
		out[i] = space.Vec3{20 + float64(i%60), -40 + float64(i%80), 5 + float64(i%50)}
	}

	return out
}

func BenchmarkDE00(b *testing.B) {
	set := mustSet(b, space.CIELAB, benchPoints(4096))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tensor.DE00(set, tensor.DefaultWeights()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	set := mustSet(b, space.CIELAB, benchPoints(4096))
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				f, err := tensor.DE00(set, tensor.DefaultWeights()) // fresh field: no memo hit
				if err != nil {
					b.Fatal(err)
				}
				if _, err = f.Query(space.CIELUV, tensor.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
