package main

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gofit/pkg/analysis"
	"github.com/philipparndt/gofit/pkg/bestfit"
	"github.com/philipparndt/gofit/pkg/numeric"
	"github.com/spf13/cobra"
)

// fitProfile holds search defaults read from a TOML file. Zero values keep
// the built-in defaults.
type fitProfile struct {
	Samples   int     `toml:"samples"`
	Tolerance float64 `toml:"tolerance"`
	Metric    string  `toml:"metric"`
}

func loadProfile(path string) (fitProfile, error) {
	var p fitProfile
	if path == "" {
		return p, nil
	}
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return p, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return p, fmt.Errorf("config %s: unknown keys %v: %w", path, undecoded, numeric.ErrValue)
	}
	return p, nil
}

// searchFlags are shared by the circle and sphere commands
type searchFlags struct {
	samples     int
	tolerance   float64
	metric      string
	yMin        float64
	yMax        float64
	maxResidual float64
	watch       bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.samples, "samples", bestfit.DefaultSamples, "Candidates evaluated per narrowing pass")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", numeric.DefaultEpsilon, "Absolute tolerance for zero and equality tests")
	cmd.Flags().StringVar(&f.metric, "metric", bestfit.MetricMeanSquared.String(), "Error metric (mse, signed)")
	cmd.Flags().Float64Var(&f.yMin, "y-min", 0, "Lower end of the center y bracket")
	cmd.Flags().Float64Var(&f.yMax, "y-max", 0, "Upper end of the center y bracket")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "Fit again whenever the file changes")
	registerMaxResidual(cmd, &f.maxResidual)
	cmd.MarkFlagsRequiredTogether("y-min", "y-max")
}

func registerMaxResidual(cmd *cobra.Command, limit *float64) {
	cmd.Flags().Float64Var(limit, "max-residual", 0, "Fail when a point lies farther than this from the fitted boundary")
}

// checkResiduals enforces --max-residual once the report has been printed
func checkResiduals(cmd *cobra.Command, r analysis.Residuals, limit float64) error {
	if !cmd.Flags().Changed("max-residual") || r.Within(limit) {
		return nil
	}
	worst := math.Max(math.Abs(r.MinSigned), math.Abs(r.MaxSigned))
	return fmt.Errorf("point #%d is %g off the boundary, above --max-residual %g: %w", r.Worst, worst, limit, numeric.ErrValue)
}

// options merges built-in defaults, the profile and explicitly set flags,
// in that order of precedence.
func (f *searchFlags) options(cmd *cobra.Command, a *app) ([]bestfit.Option, error) {
	samples := bestfit.DefaultSamples
	tolerance := numeric.DefaultEpsilon
	metric := bestfit.MetricMeanSquared.String()

	if a.profile.Samples != 0 {
		samples = a.profile.Samples
	}
	if a.profile.Tolerance != 0 {
		tolerance = a.profile.Tolerance
	}
	if a.profile.Metric != "" {
		metric = a.profile.Metric
	}

	flags := cmd.Flags()
	if flags.Changed("samples") {
		samples = f.samples
	}
	if flags.Changed("tolerance") {
		tolerance = f.tolerance
	}
	if flags.Changed("metric") {
		metric = f.metric
	}

	m, err := bestfit.ParseMetric(metric)
	if err != nil {
		return nil, err
	}

	opts := []bestfit.Option{
		bestfit.WithSamples(samples),
		bestfit.WithTolerance(tolerance),
		bestfit.WithMetric(m),
		bestfit.WithLogger(a.logger),
	}
	if flags.Changed("y-min") {
		opts = append(opts, bestfit.WithYRange([2]float64{f.yMin, f.yMax}))
	}
	return opts, nil
}
