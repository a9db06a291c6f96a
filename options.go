package swiftdsv

import "log/slog"

const defaultCapacityHint = 4

type options struct {
	logger       *slog.Logger
	capacityHint int
}

func defaultOptions() options {
	return options{
		logger:       slog.New(slog.DiscardHandler),
		capacityHint: defaultCapacityHint,
	}
}

// Option configures a Parser.
type Option func(*options)

// WithLogger sets the structured logger used while building the index.
// If nil is passed, logging is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithCapacityHint sets the value capacity reserved for the first record.
// Later records reserve as many values as the record before them held.
// Values below 1 restore the default.
func WithCapacityHint(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = defaultCapacityHint
		}
		o.capacityHint = n
	}
}
