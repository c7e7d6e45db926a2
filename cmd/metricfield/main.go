// SPDX-License-Identifier: MIT

// Command metricfield builds metric tensor fields over colour samples and
// prints them re-expressed in a chosen coordinate space.
//
// Usage:
//
//	metricfield compute --metric dE00 --input points.yaml --target cielab
//	metricfield spaces
//	metricfield metrics
//
// Configuration is read from $HOME/.metricfield.yaml (or --config) and from
// METRICFIELD_* environment variables; flags take precedence.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("metricfield failed")
		os.Exit(1)
	}
}
