package store

import "log/slog"

type config struct {
	logger *slog.Logger
	equal  func(a, b any) bool
}

// Option configures a Store during construction.
type Option func(*config)

// WithLogger sets the [slog.Logger] used for debug output about accepted and
// suppressed writes. A nil logger is ignored and [slog.Default] is used.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithEqual replaces the shallow identity rule used to decide whether a
// write changes a field. A nil func is ignored.
//
// The rule must stay shallow: it is called once per written field.
func WithEqual(equal func(a, b any) bool) Option {
	return func(cfg *config) {
		if equal != nil {
			cfg.equal = equal
		}
	}
}
