// context.go — explicit recorder propagation for xgx-trace core.
//
// Design:
//   - No implicit thread-local state: the Recorder travels explicitly through
//     context.Context, the stdlib's request-scoped carrier.
//   - Lazy presence: a context without a recorder is valid; instrumentation
//     against it degrades to a no-op rather than failing.
//   - Teardown is ordinary garbage collection once the owning goroutine's
//     work (and the contexts derived for it) end.
//
// Note: the context carries a *pointer* to the one Recorder owned by the
// goroutine; deriving child contexts shares that recorder, which is exactly
// what nested instrumented calls need.
package xgxtrace

import "context"

// recorderKey is the unexported context key type; an empty struct avoids
// collisions with keys from other packages.
type recorderKey struct{}

// NewContext returns a copy of parent carrying rec. Installing nil removes
// visibility of any recorder on the returned context.
func NewContext(parent context.Context, rec *Recorder) context.Context {
	return context.WithValue(parent, recorderKey{}, rec)
}

// FromContext returns the Recorder installed on ctx, or nil when absent.
// Nil-safe: a nil ctx yields nil.
func FromContext(ctx context.Context) *Recorder {
	if ctx == nil {
		return nil
	}
	rec, _ := ctx.Value(recorderKey{}).(*Recorder)
	return rec
}
