// predicates.go — minimal, stdlib-aligned helpers over arbitrary errors.
//
// Scope:
//   - Zero-policy helpers that answer "is this one of ours, and what does it
//     carry?" for any error value.
//   - Interop-first: everything goes through errors.As, so traversal works
//     across Unwrap chains, including foreign wrappers around carriers.
//
// Out of scope (by design):
//   - Retry/backoff policy, HTTP/status mapping, logging. The carrier is a
//     transport for the payload's classification, not the classification
//     itself.
package xgxtrace

import "errors"

// IsCarrier reports whether err is (or wraps) an xgxtrace carrier.
func IsCarrier(err error) bool {
	if err == nil {
		return false
	}
	var te Error
	return errors.As(err, &te)
}

// As extracts the first *Carrier[P] along err's unwrap chain. The payload
// type parameter must match the carrier's exactly; no conversions.
func As[P any](err error) (*Carrier[P], bool) {
	if err == nil {
		return nil, false
	}
	var c *Carrier[P]
	if errors.As(err, &c) {
		return c, true
	}
	return nil, false
}

// PayloadAs recovers the typed payload of the first Carrier[P] along err's
// unwrap chain. Returns (zero, false) when no such carrier exists. This is
// the "catch by payload type" operation for local recovery:
//
//	if nf, ok := xgxtrace.PayloadAs[OrderNotFound](err); ok {
//	    return placeholderOrder(nf.ID), nil
//	}
func PayloadAs[P any](err error) (P, bool) {
	if c, ok := As[P](err); ok {
		return c.Payload(), true
	}
	var zero P
	return zero, false
}

// LocationOf returns the creation frame of the first carrier along err's
// unwrap chain.
func LocationOf(err error) (Frame, bool) {
	if err == nil {
		return Frame{}, false
	}
	var te Error
	if errors.As(err, &te) {
		return te.Location(), true
	}
	return Frame{}, false
}

// TraceOf returns the trace snapshot of the first carrier along err's
// unwrap chain.
func TraceOf(err error) (Trace, bool) {
	if err == nil {
		return Trace{}, false
	}
	var te Error
	if errors.As(err, &te) {
		return te.Trace(), true
	}
	return Trace{}, false
}

// ReportOf renders the minimum diagnostic for a top-level catch-all
// boundary: the carrier's full report when err is (or wraps) one, otherwise
// an "Exception:" line around the plain error text. Nil yields "".
func ReportOf(err error) string {
	if err == nil {
		return ""
	}
	var te Error
	if errors.As(err, &te) {
		return te.Report()
	}
	return "Exception: " + err.Error()
}
