// Package xgxtrace's Error interface is the tier-agnostic view of a carrier.
// Handlers at ownership boundaries rarely know a carrier's payload type
// parameter; this interface lets them read the diagnostic surface anyway via
// errors.As, while PayloadAs recovers the typed payload where the type IS
// known.
//
// Design tenets:
//   - Interop-first: carriers are ordinary error values; errors.Is/As
//     traverse them through Unwrap.
//   - Minimal surface: message, location, trace, report. No logging/HTTP/JSON
//     methods here — adapters live outside the core.
//   - Immutable: a carrier never changes after construction; accessors
//     return values or independent copies.
package xgxtrace

// Error is the read-only contract every Carrier[P] satisfies regardless of
// its payload type parameter. Obtain it at a boundary with:
//
//	var te xgxtrace.Error
//	if errors.As(err, &te) {
//	    fmt.Println(te.Report())
//	}
type Error interface {
	// error provides the concise message string; the rich report belongs to
	// Report and %+v formatting.
	error

	// Message returns the message given at construction, without any
	// wrapped-cause suffix that Error() may add.
	Message() string

	// Location returns the frame where the carrier was constructed.
	Location() Frame

	// Trace returns the tier-tagged trace snapshot taken at construction.
	Trace() Trace

	// Report renders the human-readable diagnostic (message, location, and
	// the active tier's trace) with the default oldest-first ordering.
	Report() string

	// Unwrap returns the wrapped cause (if any) to enable stdlib traversal
	// via errors.Is/As. Carriers that wrap nothing return nil.
	Unwrap() error
}
