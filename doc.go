// doc.go — package documentation for xgx-trace
//
// Package xgxtrace provides a tiny, policy-free failure-carrier core with
// adaptive stack-trace capture. A Carrier bundles a message, a typed payload,
// the frame where it was created, and a trace snapshot whose fidelity is
// selected at BUILD time — not per call — among three tiers. It is designed
// to be:
//   - Ergonomic at call sites (one annotation per instrumented function)
//   - Interoperable with the stdlib (error, errors.Is/As, fmt.Formatter)
//   - Policy-free (no logging/HTTP/retry rules in core)
//
// # Capture Tiers
//
// The trace strategy is fixed for a whole build via build tags; every Carrier
// in one binary uses the same tier. There is no runtime dispatch on the hot
// path — the tier is a package-level constant and dead branches fold away.
//
//	+---------------+---------------------+--------------------------------------------+
//	| build tags    | tier                | trace contents                             |
//	+---------------+---------------------+--------------------------------------------+
//	| tracenative   | TierNative          | full runtime backtrace at creation time    |
//	| (none)        | TierRecorded        | snapshot of the goroutine's Recorder       |
//	| tracemin      | TierLocation        | creation frame only; no trace allocation   |
//	+---------------+---------------------+--------------------------------------------+
//
// TierNative has the highest fidelity and the highest cost: it walks the real
// call stack and includes non-instrumented frames. TierRecorded shows only
// functions that carry the Scope annotation — intermediate non-instrumented
// calls are invisible in the trace. That is a documented limitation of the
// tier, not a bug. TierLocation is for severely constrained targets: no
// dynamic allocation for trace data, fixed small footprint.
//
// # Instrumentation
//
// Under TierRecorded, each goroutine that wants recorded traces owns a
// Recorder, propagated explicitly through context.Context:
//
//	rec := xgxtrace.NewRecorder()
//	ctx = xgxtrace.NewContext(ctx, rec)
//
//	func loadOrder(ctx context.Context, id int) error {
//	    defer xgxtrace.Scope(ctx)()
//	    ...
//	    return xgxtrace.New(ctx, "order not found", OrderNotFound{ID: id})
//	}
//
// Scope pushes the caller's frame on entry; the deferred release pops it on
// EVERY exit path — normal return, early return, or panic unwinding. Deferred
// releases run in reverse order of acquisition, so the Recorder always
// reflects exactly the instrumented calls on the active chain. Under
// TierNative and TierLocation, Scope degrades to a shared no-op: the
// annotation stays in the source and costs nothing.
//
// A Recorder is confined to one goroutine. No lock, no atomics: confinement
// is the synchronization. Do not share a Recorder across goroutines.
//
// # Carriers
//
// New captures the creation frame and the active tier's trace snapshot
// synchronously — no hidden I/O. The snapshot is an independent copy: pops
// that happen while the carrier travels up the call chain never mutate it.
// Construct a carrier at depth 3, unwind to depth 0, and its report still
// shows 3 frames.
//
// Handlers recover by payload type without knowing the carrier's type
// parameter at the boundary:
//
//	if nf, ok := xgxtrace.PayloadAs[OrderNotFound](err); ok {
//	    // recover or retry locally
//	}
//
// Carriers not caught anywhere should reach a top-level boundary with a
// catch-all that renders ReportOf(err) — silent termination without a report
// is an instrumentation defect, not an accepted outcome.
//
// # Report Format
//
//	Exception: <message>
//	Location: <file>(<line>:<column>) `<function>`
//	Stack trace:
//	<file>(<line>:<column>) `<function>`     (one line per frame)
//
// Frames render oldest-first by default; ReportWith(NewestFirst) flips the
// ordering — it is a rendering policy, not a data invariant. TierLocation
// omits the "Stack trace:" section entirely. ParseFrameString inverts the
// location grammar, so a rendered line round-trips to the exact captured
// frame. The Go runtime exposes no column information; runtime-captured
// frames record column 0 and the field survives for frames decoded from
// external renderings.
//
// # Formatting
//
// Carrier implements fmt.Formatter:
//   - `%v`, `%s`   → concise, single-line Error()
//   - `%+v`        → the full report (message, location, tier trace)
//   - `%q`         → quoted Error()
//
// JSON export (MarshalJSON on Frame, Trace, and Carrier) is provided for
// shipping reports across process boundaries; it is serialization of the
// diagnostic value itself, not a logging pipeline.
//
// # Performance Notes
//
//   - Scope under TierRecorded: one append + one pop per instrumented call.
//   - Scope under other tiers: returns a shared no-op func; nothing recorded.
//   - TierLocation: constructing a carrier allocates nothing for trace data
//     (the frames slice stays nil) beyond the carrier value itself.
//   - Snapshot copies are taken once, at construction, never lazily.
//
// See integration tests for a runnable order-service demonstration.
package xgxtrace
