package moqi

import (
	"log/slog"

	"github.com/ar90n/moqi/metric"
	"github.com/cockroachdb/errors"
)

// Option configures an indicator.
type Option func(*config)

type config struct {
	metric        metric.Metric
	metricName    string
	maxGoroutines uint
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		metric:        metric.Euclidean,
		maxGoroutines: 1,
		logger:        slog.Default(),
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// resolveMetric returns the distance function selected by WithMetric or WithMetricName.
func (c config) resolveMetric() (metric.Metric, metric.Func, error) {
	m := c.metric
	if c.metricName != "" {
		parsed, err := metric.Parse(c.metricName)
		if err != nil {
			return 0, nil, errors.Mark(err, ErrInvalidInput)
		}
		m = parsed
	}

	f, err := metric.Provider(m)
	if err != nil {
		return 0, nil, errors.Mark(err, ErrInvalidInput)
	}
	return m, f, nil
}

// WithMetric sets the pairwise distance used by GenerationalDistance (default: metric.Euclidean).
func WithMetric(m metric.Metric) Option {
	return func(c *config) {
		c.metric = m
		c.metricName = ""
	}
}

// WithMetricName selects the metric by name, e.g. "chebyshev". Unknown names
// make Evaluate fail with ErrInvalidInput.
func WithMetricName(name string) Option {
	return func(c *config) {
		c.metricName = name
	}
}

// WithMaxGoroutines bounds the workers used for one evaluation (default: 1).
// Zero means runtime.NumCPU().
func WithMaxGoroutines(n uint) Option {
	return func(c *config) {
		c.maxGoroutines = n
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
