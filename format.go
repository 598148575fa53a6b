// format.go — report rendering and fmt.Formatter for xgx-trace core.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → the full report:
//	             Exception: <message>
//	             Location: <file>(<line>:<column>) `<function>`
//	             Stack trace:
//	             <file>(<line>:<column>) `<function>`   (one line per frame)
//	%q       → quoted Error().
//
// Rationale:
//   - Keep core free of logging/HTTP policy; only fmt formatting and the
//     plain-text report the diagnostic boundary prints.
//   - Frame ordering is a RENDERING policy (OldestFirst default), not a data
//     invariant; traces always store oldest-first internally.
//   - TierLocation omits the "Stack trace:" section entirely; the other
//     tiers omit it only when the snapshot came back empty (recorder absent
//     or nothing instrumented).
package xgxtrace

import (
	"fmt"
	"io"
	"strings"
)

// FrameOrder selects the line order for rendered trace frames.
type FrameOrder uint8

const (
	// OldestFirst renders the outermost frame first (the default).
	OldestFirst FrameOrder = iota
	// NewestFirst renders the innermost frame first.
	NewestFirst
)

// Report renders the carrier's diagnostic text with OldestFirst ordering.
func (c *Carrier[P]) Report() string {
	return c.ReportWith(OldestFirst)
}

// ReportWith renders the carrier's diagnostic text with the given frame
// ordering.
func (c *Carrier[P]) ReportWith(order FrameOrder) string {
	var sb strings.Builder
	renderReport(&sb, c.Error(), c.creation, c.trace, order)
	return sb.String()
}

// Format implements fmt.Formatter.
func (c *Carrier[P]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			renderReport(s, c.Error(), c.creation, c.trace, OldestFirst)
			return
		}
		_, _ = io.WriteString(s, c.Error())
	case 's':
		_, _ = io.WriteString(s, c.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.Error())
	default:
		_, _ = io.WriteString(s, c.Error())
	}
}

// RenderTrace renders the trace's frames one per line in the given order,
// using the same grammar as the Location line. Empty string when the trace
// has no frames to show.
func RenderTrace(t Trace, order FrameOrder) string {
	frames := t.Frames()
	if len(frames) == 0 {
		return ""
	}
	var sb strings.Builder
	writeFrames(&sb, frames, order)
	return sb.String()
}

// renderReport writes the report body without a trailing newline.
func renderReport(w io.Writer, msg string, creation Frame, t Trace, order FrameOrder) {
	_, _ = fmt.Fprintf(w, "Exception: %s\nLocation: %s", msg, creation)

	if t.Tier() == TierLocation {
		return
	}
	if len(t.frames) == 0 {
		return
	}
	_, _ = io.WriteString(w, "\nStack trace:\n")
	writeFrames(w, t.frames, order)
}

// writeFrames writes one frame per line, no trailing newline. The frames
// slice is read-only here; NewestFirst iterates backwards rather than
// reversing a copy.
func writeFrames(w io.Writer, frames []Frame, order FrameOrder) {
	if order == NewestFirst {
		for i := len(frames) - 1; i >= 0; i-- {
			if i < len(frames)-1 {
				_, _ = io.WriteString(w, "\n")
			}
			_, _ = io.WriteString(w, frames[i].String())
		}
		return
	}
	for i, fr := range frames {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = io.WriteString(w, fr.String())
	}
}
