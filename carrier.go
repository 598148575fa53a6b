// carrier.go — the generic failure carrier for xgx-trace core.
//
// Scope (tiny core):
//   - One concrete type, Carrier[P], holding message, payload, creation
//     frame, and the trace snapshot the active strategy produced.
//   - Constructors capture synchronously: no I/O, no laziness. Only the
//     native tier pays an unwinding-capture cost, and only at construction.
//   - Carriers are immutable values after construction; they propagate as
//     ordinary errors returned up the call chain and need no synchronization
//     while a single flow of control holds them.
//
// Interop:
//   - errors.Is/As work via Unwrap; PayloadAs/As recover typed payloads.
//   - The non-generic Error interface (error.go) exposes the diagnostic
//     surface to boundaries that do not know P.
package xgxtrace

import "context"

// Carrier bundles a failure's message, a typed payload, the creation frame,
// and a trace snapshot fixed by the build's active tier. Create with New or
// Wrap; the zero value carries no diagnostic information.
type Carrier[P any] struct {
	msg      string
	payload  P
	cause    error
	creation Frame
	trace    Trace
}

// New constructs a carrier at the failure site. The creation frame is the
// caller of New; the trace is whatever the build's active strategy captures
// at this instant (recorder snapshot, native backtrace, or nothing beyond
// the creation frame). ctx supplies the Recorder under TierRecorded; the
// other tiers ignore it, and a recorder-less ctx yields an empty recorded
// trace rather than an error.
func New[P any](ctx context.Context, msg string, payload P) *Carrier[P] {
	creation := captureFrame(1)
	return &Carrier[P]{
		msg:      msg,
		payload:  payload,
		creation: creation,
		trace:    activeStrategy.capture(FromContext(ctx), creation, 1),
	}
}

// Wrap is New with a wrapped cause, so errors.Is/As can traverse from the
// carrier to sentinel or foreign errors beneath it.
func Wrap[P any](ctx context.Context, err error, msg string, payload P) *Carrier[P] {
	creation := captureFrame(1)
	return &Carrier[P]{
		msg:      msg,
		payload:  payload,
		cause:    err,
		creation: creation,
		trace:    activeStrategy.capture(FromContext(ctx), creation, 1),
	}
}

// Error returns the concise one-line form: the message, suffixed with the
// wrapped cause when present.
func (c *Carrier[P]) Error() string {
	switch {
	case c.msg == "" && c.cause != nil:
		return c.cause.Error()
	case c.msg == "":
		return "exception"
	case c.cause != nil:
		return c.msg + ": " + c.cause.Error()
	default:
		return c.msg
	}
}

// Message returns the construction message, without any cause suffix.
func (c *Carrier[P]) Message() string { return c.msg }

// Payload returns the stored payload value. No copy beyond the return: for
// large payloads choose a pointer payload type.
func (c *Carrier[P]) Payload() P { return c.payload }

// Location returns the frame where the carrier was constructed.
func (c *Carrier[P]) Location() Frame { return c.creation }

// Trace returns the trace snapshot taken at construction. It never changes
// afterwards, however far the carrier propagates.
func (c *Carrier[P]) Trace() Trace { return c.trace }

// Unwrap returns the wrapped cause, or nil.
func (c *Carrier[P]) Unwrap() error { return c.cause }

// Interface conformance guard (any payload instantiation suffices).
var _ Error = (*Carrier[struct{}])(nil)
