// Package sentry is the reentrant error-reporting hook of the numeric
// core. Domain-error sites report here before returning NaN; errors
// still propagate strictly by value, so the handler is advisory only
// (logging, counting). The default handler discards reports.
package sentry

import "sync/atomic"

// Handler receives advisory reports of numeric domain errors.
// Implementations must be safe for concurrent use.
type Handler interface {
	Report(op, msg string)
}

type nop struct{}

func (nop) Report(string, string) {}

// holder keeps the stored type uniform for atomic.Value.
type holder struct{ h Handler }

var handler atomic.Value

func init() { handler.Store(holder{nop{}}) }

// Set installs h as the process-wide handler. A nil h restores the
// discarding default.
func Set(h Handler) {
	if h == nil {
		h = nop{}
	}
	handler.Store(holder{h})
}

// Report notifies the installed handler of a domain error in op.
func Report(op, msg string) {
	handler.Load().(holder).h.Report(op, msg)
}
