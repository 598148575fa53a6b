// frame.go — call-site frames and runtime capture for xgx-trace core.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Minimal policy: capture produces plain values; rendering grammar lives
//     here because ParseFrameString must invert Frame.String exactly.
//   - Pragmatic performance: single-frame capture touches one PC; the full
//     backtrace path is bounded by a conservative depth.
//
// References:
//   - runtime.Callers / CallersFrames docs and example
//   - Prefer CallersFrames over FuncForPC for inlined frames
//   - Callers skip semantics (0 = Callers, 1 = its caller)
package xgxtrace

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Frame is an immutable record of a call-site identity. Two captures at the
// same textual call site produce equal Frames; distinct call sites differ.
//
// Column is always 0 for runtime-captured frames — the Go runtime does not
// expose column information. The field is kept so frames decoded from an
// external rendering (ParseFrameString, UnmarshalJSON) survive a round trip
// without loss.
type Frame struct {
	Function string // fully-qualified function name (pkg.Func or recv.method)
	File     string // absolute file path (as provided by runtime)
	Line     uint   // line number
	Column   uint   // column number; 0 when captured via runtime
}

// Capture returns the Frame of its caller. No heap allocation beyond the
// small fixed fields; resolution goes through CallersFrames so inlined call
// sites report their logical position.
func Capture() Frame {
	return captureFrame(1)
}

// CaptureSkip is like Capture but skips an additional 'skip' frames — useful
// for helpers that capture on behalf of their own caller.
func CaptureSkip(skip int) Frame {
	return captureFrame(skip + 1)
}

// String renders the report grammar: <file>(<line>:<column>) `<function>`.
// ParseFrameString inverts it exactly.
func (f Frame) String() string {
	return fmt.Sprintf("%s(%d:%d) `%s`", f.File, f.Line, f.Column, f.Function)
}

// IsZero reports whether f carries no call-site identity (the zero Frame,
// returned when capture could not resolve any caller).
func (f Frame) IsZero() bool {
	return f.Function == "" && f.File == "" && f.Line == 0 && f.Column == 0
}

// ParseFrameString parses a rendering produced by Frame.String back into a
// Frame. Leading/trailing whitespace is ignored. The grammar is:
//
//	<file>(<line>:<column>) `<function>`
//
// File paths may themselves contain parentheses; parsing anchors on the LAST
// '(' before the numeric span, which is unambiguous for the grammar above.
func ParseFrameString(s string) (Frame, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || !strings.HasSuffix(s, "`") {
		return Frame{}, fmt.Errorf("xgxtrace: frame %q: missing `function` suffix", s)
	}
	open := strings.LastIndex(s[:len(s)-1], "`")
	if open < 0 {
		return Frame{}, fmt.Errorf("xgxtrace: frame %q: unterminated function name", s)
	}
	function := s[open+1 : len(s)-1]

	loc := strings.TrimSpace(s[:open])
	if !strings.HasSuffix(loc, ")") {
		return Frame{}, fmt.Errorf("xgxtrace: frame %q: missing (line:column) span", s)
	}
	paren := strings.LastIndex(loc, "(")
	if paren < 0 {
		return Frame{}, fmt.Errorf("xgxtrace: frame %q: missing (line:column) span", s)
	}
	span := loc[paren+1 : len(loc)-1]
	colon := strings.IndexByte(span, ':')
	if colon < 0 {
		return Frame{}, fmt.Errorf("xgxtrace: frame %q: span %q lacks ':'", s, span)
	}
	line, err := strconv.ParseUint(span[:colon], 10, 64)
	if err != nil {
		return Frame{}, fmt.Errorf("xgxtrace: frame %q: bad line: %w", s, err)
	}
	column, err := strconv.ParseUint(span[colon+1:], 10, 64)
	if err != nil {
		return Frame{}, fmt.Errorf("xgxtrace: frame %q: bad column: %w", s, err)
	}

	return Frame{
		Function: function,
		File:     loc[:paren],
		Line:     uint(line),
		Column:   uint(column),
	}, nil
}

const (
	// defaultMaxDepth bounds native backtraces: enough context for diagnosis
	// without excessive work on exceptional paths.
	defaultMaxDepth = 64
)

// captureFrame resolves the single frame 'skip' levels above captureFrame's
// caller (skip=0 → the caller itself). Returns the zero Frame when the skip
// runs past the top of the stack.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureFrame
func captureFrame(skip int) Frame {
	var pc [1]uintptr
	if runtime.Callers(skip+2, pc[:]) == 0 {
		return Frame{}
	}
	fr, _ := runtime.CallersFrames(pc[:]).Next()
	return Frame{
		Function: fr.Function,
		File:     fr.File,
		Line:     uint(fr.Line),
	}
}

// captureBacktrace captures up to maxDepth frames, skipping 'skip' frames
// beyond captureBacktrace's caller. Used only by the native capture tier.
//
// Notes:
//   - We allocate a PC buffer sized by maxDepth and let Callers trim it.
//   - Frames resolve via CallersFrames to handle inlined calls correctly.
//   - runtime returns innermost-first; we reverse to the recorder's
//     oldest-first convention so both trace kinds share one rendering path.
func captureBacktrace(skip, maxDepth int) []Frame {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			Function: fr.Function,
			File:     fr.File,
			Line:     uint(fr.Line),
		})
		if !more {
			break
		}
	}

	// Reverse in place: oldest (outermost) first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
