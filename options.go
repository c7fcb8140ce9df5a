package crcgo

import "log/slog"

type options struct {
	strategy         Strategy
	metricsCollector MetricsCollector
	logger           *Logger
	selfTest         bool
}

// Option configures engine construction.
type Option func(*options)

// WithStrategy selects the computation strategy.
//
// Auto (the default) resolves to Accelerated for eligible 32-bit parameters
// on CPUs with CRC instructions and to Slice4 otherwise. The CRCGO_STRATEGY
// environment variable overrides what Auto resolves to.
//
// Trade-offs:
//   - Bitwise: no memory, slowest; the reference implementation
//   - Table: one 256-entry table
//   - Slice4/Slice8/Slice16: 4/8/16 tables, more bytes per step
//   - Accelerated: CRC-32 IEEE/Castagnoli/Koopman only
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithSelfTest runs the check vector through the engine after construction
// and fails with a *CheckMismatchError if it disagrees with the parameters.
func WithSelfTest(enabled bool) Option {
	return func(o *options) {
		o.selfTest = enabled
	}
}

// WithMetricsCollector configures a metrics collector for construction events.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &crcgo.BasicMetricsCollector{}
//	e, _ := crcgo.New(crcgo.CRC32, crcgo.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Builds: %d, Avg build: %dns\n", stats.BuildCount, stats.BuildAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for construction events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := crcgo.NewJSONLogger(slog.LevelDebug)
//	e, _ := crcgo.New(crcgo.CRC64XZ, crcgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		strategy:         Auto,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
