// SPDX-License-Identifier: MPL-2.0

package resolver

import "github.com/charmbracelet/log"

type (
	// resolveOptions holds per-call configuration.
	resolveOptions struct {
		logger      *log.Logger
		onLoadError func(path string, err error)
	}

	// Option configures a Resolve or ListAvailable call.
	Option func(*resolveOptions)
)

func applyOptions(opts []Option) resolveOptions {
	o := resolveOptions{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger for scan warnings and resolution debug records.
// Default is log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(o *resolveOptions) {
		o.logger = logger
	}
}

// withLoadErrorFunc registers a callback invoked for every plugin file that
// fails to load, in addition to the warning log record. Used by
// ListAvailable to report broken files alongside the valid ones.
func withLoadErrorFunc(fn func(path string, err error)) Option {
	return func(o *resolveOptions) {
		o.onLoadError = fn
	}
}
