package bestfit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipparndt/gofit/internal/options"
	"github.com/philipparndt/gofit/pkg/numeric"
)

const (
	// DefaultSamples is the number of candidates evaluated per pass
	DefaultSamples = 9

	// MinSamples is the smallest sample count the unimodality check accepts
	MinSamples = 3

	// MaxIterations caps the number of narrowing passes per search
	MaxIterations = 50

	// InnerToleranceScale tightens the tolerance of the y-search when it
	// serves as the error function of a radius search.
	InnerToleranceScale = 1e-3

	// MinCirclePoints is the smallest point count accepted by the circle searches
	MinCirclePoints = 4

	// MinSpherePoints is the smallest point count accepted by the sphere searches
	MinSpherePoints = 5
)

// Metric selects the error minimized by a search
type Metric int

const (
	// MetricMeanSquared minimizes the mean of the squared signed distances
	MetricMeanSquared Metric = iota
	// MetricMeanSigned drives the mean signed distance towards zero
	MetricMeanSigned
)

// ParseMetric accepts "mse" or "signed"
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mse", "mean-squared":
		return MetricMeanSquared, nil
	case "signed", "mean-signed":
		return MetricMeanSigned, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (must be mse or signed): %w", s, numeric.ErrValue)
	}
}

func (m Metric) String() string {
	switch m {
	case MetricMeanSquared:
		return "mse"
	case MetricMeanSigned:
		return "signed"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Config holds the search parameters. Use the With* options to change the
// defaults returned by DefaultConfig.
type Config struct {
	Metric    Metric
	Samples   int
	Tolerance float64
	// YRange replaces the y bracket derived from the point discriminants
	YRange *[2]float64
	Logger *slog.Logger
}

// DefaultConfig returns mean squared error, nine samples and numeric.DefaultEpsilon
func DefaultConfig() Config {
	return Config{
		Metric:    MetricMeanSquared,
		Samples:   DefaultSamples,
		Tolerance: numeric.DefaultEpsilon,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// Option configures a search
type Option = options.Option[*Config]

// WithMetric selects the error metric
func WithMetric(m Metric) Option {
	return options.New(func(cfg *Config) error {
		if m != MetricMeanSquared && m != MetricMeanSigned {
			return fmt.Errorf("unknown metric %d: %w", int(m), numeric.ErrValue)
		}
		cfg.Metric = m
		return nil
	})
}

// WithMeanSquaredError selects mean squared error when true and mean
// signed distance when false.
func WithMeanSquaredError(useMSE bool) Option {
	return options.NoError(func(cfg *Config) {
		if useMSE {
			cfg.Metric = MetricMeanSquared
		} else {
			cfg.Metric = MetricMeanSigned
		}
	})
}

// WithSamples sets the number of candidates per pass
func WithSamples(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < MinSamples {
			return fmt.Errorf("need at least %d samples per pass, got %d: %w", MinSamples, n, numeric.ErrValue)
		}
		cfg.Samples = n
		return nil
	})
}

// WithTolerance sets the absolute tolerance for zero and equality tests
func WithTolerance(eps float64) Option {
	return options.New(func(cfg *Config) error {
		if eps < 0 || !numeric.IsFinite(eps) {
			return fmt.Errorf("tolerance must be a finite non-negative number, got %g: %w", eps, numeric.ErrValue)
		}
		cfg.Tolerance = eps
		return nil
	})
}

// WithYRange sets the initial y bracket explicitly
func WithYRange(r [2]float64) Option {
	return options.New(func(cfg *Config) error {
		if !numeric.IsFinite(r[0]) || !numeric.IsFinite(r[1]) {
			return fmt.Errorf("y range must be finite, got %v: %w", r, numeric.ErrValue)
		}
		normalized := ordered(r)
		cfg.YRange = &normalized
		return nil
	})
}

// WithLogger receives per-iteration debug records
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// inner returns the configuration used by the y-search nested in a radius search
func (c *Config) inner() *Config {
	tightened := *c
	tightened.Tolerance = c.Tolerance * InnerToleranceScale
	tightened.Logger = c.Logger.With("search", "inner")
	return &tightened
}

func ordered(r [2]float64) [2]float64 {
	if r[0] > r[1] {
		return [2]float64{r[1], r[0]}
	}
	return r
}
