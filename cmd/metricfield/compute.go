// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metricfield/data"
	"github.com/katalvlaran/metricfield/matrix"
	"github.com/katalvlaran/metricfield/space"
	"github.com/katalvlaran/metricfield/tensor"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"

	metricDE00 = "dE00"
)

// errFormat reports an unknown --format value.
var errFormat = errors.New("unsupported output format")

// pointFile is the input document. JSON input parses too (YAML superset).
type pointFile struct {
	Space  string       `yaml:"space" json:"space"`
	Points [][3]float64 `yaml:"points" json:"points"`
}

// fieldDoc is the output document: one tensor per input point, expressed in
// Space, with the points themselves in Space.
type fieldDoc struct {
	Metric  string          `yaml:"metric" json:"metric"`
	Anchor  string          `yaml:"anchor" json:"anchor"`
	Space   string          `yaml:"space" json:"space"`
	Points  [][3]float64    `yaml:"points" json:"points"`
	Tensors [][3][3]float64 `yaml:"tensors" json:"tensors"`

	// Indefinite lists points whose finite anchor tensor has a negative
	// eigenvalue.
	Indefinite []int `yaml:"indefinite,omitempty" json:"indefinite,omitempty"`
}

func newComputeCmd(v *viper.Viper) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Build a metric field over a point file and print it in a target space",
		Long: `Build a metric tensor field over the points of a YAML (or JSON) file and
print the tensors re-expressed in the target space.

Input document:
  space: cielab
  points:
    - [50, 20, -10]
    - [70, -30, 40]

Examples:
  metricfield compute -i points.yaml --metric dE00 --target cielab
  metricfield compute -i points.yaml --metric dEuv --target xyz --format json
  cat points.yaml | metricfield compute --kl 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, closeIn, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer closeIn()

			doc, err := runCompute(in, computeSettings{
				metric:  v.GetString(keyMetric),
				target:  v.GetString(keyTarget),
				workers: v.GetInt(keyWorkers),
				weights: tensor.Weights{KL: v.GetFloat64(keyKL), KC: v.GetFloat64(keyKC), KH: v.GetFloat64(keyKH)},
			})
			if err != nil {
				return err
			}

			return writeDoc(cmd.OutOrStdout(), doc, v.GetString(keyFormat))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "-", "point file, - for stdin")
	f.String(keyMetric, metricDE00, "metric name (see 'metricfield metrics')")
	f.StringP(keyTarget, "t", space.XYZ.Name(), "target space (see 'metricfield spaces')")
	f.StringP(keyFormat, "f", formatYAML, "output format: yaml or json")
	f.Int(keyWorkers, tensor.DefaultWorkers, "goroutines used for re-expression")
	f.Float64("kl", 1, "CIEDE2000 lightness factor kL")
	f.Float64("kc", 1, "CIEDE2000 chroma factor kC")
	f.Float64("kh", 1, "CIEDE2000 hue factor kH")

	for key, flag := range map[string]string{
		keyMetric: keyMetric, keyTarget: keyTarget, keyFormat: keyFormat, keyWorkers: keyWorkers,
		keyKL: "kl", keyKC: "kc", keyKH: "kh",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

// computeSettings are the resolved compute parameters.
type computeSettings struct {
	metric  string
	target  string
	workers int
	weights tensor.Weights
}

// runCompute decodes a point file, builds the metric and re-expresses it.
func runCompute(in io.Reader, s computeSettings) (*fieldDoc, error) {
	var pf pointFile
	if err := yaml.NewDecoder(in).Decode(&pf); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	if pf.Space == "" {
		pf.Space = space.CIELAB.Name()
	}
	src, err := space.Lookup(pf.Space)
	if err != nil {
		return nil, fmt.Errorf("input space: %w", err)
	}
	target, err := space.Lookup(s.target)
	if err != nil {
		return nil, fmt.Errorf("target space: %w", err)
	}
	if s.workers < 1 {
		return nil, fmt.Errorf("workers=%d: must be ≥ 1", s.workers)
	}

	pts := make([]space.Vec3, len(pf.Points))
	for i, p := range pf.Points {
		pts[i] = space.Vec3(p)
	}
	set, err := data.New(src, pts)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("space", src.Name()).Int("points", set.Len()).Msg("points loaded")

	var field *tensor.Field
	if s.metric == metricDE00 {
		field, err = tensor.DE00(set, s.weights)
	} else {
		field, err = tensor.Build(s.metric, set)
	}
	if err != nil {
		return nil, err
	}

	bad, err := indefinite(field.Tensors())
	if err != nil {
		return nil, err
	}
	if len(bad) > 0 {
		log.Warn().Ints("points", bad).Msg("anchor tensors are not positive semi-definite")
	}

	gs, err := field.Query(target, tensor.WithWorkers(s.workers))
	if err != nil {
		return nil, err
	}
	coords, err := set.Get(target)
	if err != nil {
		return nil, err
	}

	doc := &fieldDoc{
		Metric:     s.metric,
		Anchor:     field.Space().Name(),
		Space:      target.Name(),
		Points:     make([][3]float64, len(coords)),
		Tensors:    make([][3][3]float64, len(gs)),
		Indefinite: bad,
	}
	nonFinite := 0
	for i := range gs {
		doc.Points[i] = coords[i]
		doc.Tensors[i] = toArray(gs[i])
		if !gs[i].IsFinite() {
			nonFinite++
		}
	}
	if nonFinite > 0 {
		log.Warn().Int("points", nonFinite).Msg("non-finite tensors: samples outside the metric's domain")
	}
	log.Debug().Str("metric", s.metric).Str("anchor", doc.Anchor).Str("target", doc.Space).Msg("field computed")

	return doc, nil
}

// indefinite returns the indices of finite tensors with an eigenvalue below
// −DefaultEpsilon. Non-finite tensors have no spectrum and are skipped.
// Definiteness survives congruence, so anchor tensors speak for every space.
func indefinite(gs []*matrix.Dense) ([]int, error) {
	var out []int
	for i, g := range gs {
		if !g.IsFinite() {
			continue
		}
		ok, err := matrix.IsPositiveSemiDefinite(g, matrix.DefaultEpsilon)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		if !ok {
			out = append(out, i)
		}
	}

	return out, nil
}

func toArray(g *matrix.Dense) [3][3]float64 {
	var out [3][3]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c], _ = g.At(r, c)
		}
	}

	return out
}

// openInput returns stdin for "-" and the named file otherwise.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return fh, func() { _ = fh.Close() }, nil
}

// writeDoc encodes doc as YAML or JSON. JSON cannot carry non-finite
// numbers; such fields fail to encode.
func writeDoc(w io.Writer, doc *fieldDoc, format string) error {
	switch strings.ToLower(format) {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	default:
		return fmt.Errorf("%q: %w", format, errFormat)
	}
}
