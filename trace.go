// trace.go — immutable trace snapshots for xgx-trace core.
//
// A Trace is captured once, at carrier construction, by the active strategy.
// It holds COPIES: for TierRecorded the frames come from Recorder.Snapshot,
// so pops during unwinding never reach a trace already taken. Under
// TierLocation the frames slice stays nil and the creation frame stands in —
// no dynamic allocation for trace data on that tier.
package xgxtrace

// Trace is a tier-tagged, immutable snapshot of trace state taken when a
// carrier was constructed. The zero Trace has no tier and no frames.
type Trace struct {
	captureTier Tier
	creation    Frame
	frames      []Frame // oldest first; nil under TierLocation
}

// Tier returns the tier that produced this trace.
func (t Trace) Tier() Tier { return t.captureTier }

// Depth returns the number of frames the trace renders: the captured frame
// count, or 1 under TierLocation (the creation frame).
func (t Trace) Depth() int {
	if t.captureTier == TierLocation {
		return 1
	}
	return len(t.frames)
}

// Frames returns an independent copy of the trace's frames, oldest first.
// Under TierLocation it returns the creation frame as a single-element
// slice. Copy-on-read: mutating the result never affects the trace.
func (t Trace) Frames() []Frame {
	if t.captureTier == TierLocation {
		return []Frame{t.creation}
	}
	if len(t.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(t.frames))
	copy(out, t.frames)
	return out
}
