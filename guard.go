// guard.go — scoped frame acquisition with guaranteed release.
//
// Contract:
//   - Scope pushes the CALLER's frame onto the recorder and returns the
//     release func. `defer Scope(ctx)()` executes the matching Pop on every
//     exit path of the enclosing function: normal completion, early return,
//     or panic unwinding. Deferred releases run in reverse order of
//     acquisition, which keeps push/pop balanced across arbitrarily nested
//     and recursive instrumented calls without per-site bookkeeping.
//   - When the active tier is not TierRecorded, Scope returns a shared no-op
//     release: the annotation stays syntactically present and carries no
//     recording cost. ActiveTier is a build-time constant, so the check
//     folds away.
package xgxtrace

import "context"

// nopRelease is the shared release for un-instrumented paths; one value for
// the whole package so no-op scopes allocate nothing.
var nopRelease = func() {}

// Scope records the caller's frame on the recorder carried by ctx and
// returns the release that removes it. Intended use:
//
//	func handle(ctx context.Context) error {
//	    defer xgxtrace.Scope(ctx)()
//	    ...
//	}
//
// Absent recorder (or a non-recording tier) → no-op release.
func Scope(ctx context.Context) func() {
	if ActiveTier != TierRecorded {
		return nopRelease
	}
	rec := FromContext(ctx)
	if rec == nil {
		return nopRelease
	}
	rec.Push(captureFrame(1))
	return rec.Pop
}

// Scope is the recorder-direct variant for call sites that hold the
// Recorder itself rather than a context. Same contract as the package-level
// Scope; nil receiver degrades to a no-op.
func (r *Recorder) Scope() func() {
	if ActiveTier != TierRecorded || r == nil {
		return nopRelease
	}
	r.Push(captureFrame(1))
	return r.Pop
}
