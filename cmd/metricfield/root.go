// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName       = "metricfield"
	envPrefix     = "METRICFIELD"
	defaultConfig = ".metricfield.yaml"
)

// Config keys shared by flags, environment and config file.
const (
	keyVerbose = "verbose"
	keyMetric  = "metric"
	keyTarget  = "target"
	keyFormat  = "format"
	keyWorkers = "workers"
	keyKL      = "weights.kl"
	keyKC      = "weights.kc"
	keyKH      = "weights.kh"
)

// newRootCmd wires the command tree against a fresh viper instance so tests
// can run commands in isolation.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   appName,
		Short: "Metric tensor fields over colour coordinates",
		Long: `metricfield evaluates perceptual colour-difference formulas (ΔE*ab, ΔE*uv,
CIEDE2000, Poincaré disk) as fields of 3×3 metric tensors over a set of
colour samples, and re-expresses those fields in any supported space.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cfgFile); err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), v.GetBool(keyVerbose))
			if used := v.ConfigFileUsed(); used != "" {
				log.Debug().Str("file", used).Msg("config loaded")
			}

			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/"+defaultConfig+")")
	root.PersistentFlags().BoolP(keyVerbose, "v", false, "debug logging on stderr")
	_ = v.BindPFlag(keyVerbose, root.PersistentFlags().Lookup(keyVerbose))

	root.AddCommand(newComputeCmd(v), newSpacesCmd(), newMetricsCmd())

	return root
}

// loadConfig reads the config file (explicit path or $HOME/.metricfield.yaml)
// and enables METRICFIELD_* environment overrides. A missing default file is
// not an error.
func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)

		return v.ReadInConfig()
	}

	home, err := homedir.Dir()
	if err != nil {
		log.Debug().Err(err).Msg("home directory not found; skipping config file")

		return nil
	}
	v.SetConfigFile(filepath.Join(home, defaultConfig))
	if err := v.ReadInConfig(); err != nil {
		log.Debug().Err(err).Msg("no config file")
	}

	return nil
}

// setupLogging routes zerolog to a console writer on w.
func setupLogging(w io.Writer, verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}
