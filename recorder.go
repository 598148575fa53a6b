// recorder.go — goroutine-scoped frame recorder for xgx-trace core.
//
// Design:
//   - Internal representation: append-only-at-tail []Frame, oldest first.
//   - Mutation only through Push (append) and Pop (remove last). Pop on an
//     empty recorder is a defensive no-op, not an error.
//   - Snapshot returns an independent copy that never aliases live storage;
//     later Pops must not affect a previously taken snapshot.
//
// Concurrency contract:
//   - A Recorder is CONFINED to the goroutine that owns it. Confinement is
//     the synchronization: no lock, no atomics, no memory-ordering concerns.
//     Sharing a Recorder across goroutines is a caller bug.
//   - The recorder participates only under TierRecorded; the other tiers
//     never touch it.
package xgxtrace

// Recorder holds the frames of the instrumented calls currently active on
// the owning goroutine, oldest first. The zero value is NOT ready for use;
// obtain one from NewRecorder and install it with NewContext.
type Recorder struct {
	frames []Frame
}

// NewRecorder returns an empty Recorder for a single goroutine's use.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Push appends frame at the tail; depth grows by one.
func (r *Recorder) Push(frame Frame) {
	r.frames = append(r.frames, frame)
}

// Pop removes the most recent frame if present; depth shrinks by at most one.
// Popping an empty recorder is a no-op.
func (r *Recorder) Pop() {
	if n := len(r.frames); n > 0 {
		// Clear the vacated slot so retained strings become collectable even
		// while the backing array lives on under the remaining frames.
		r.frames[n-1] = Frame{}
		r.frames = r.frames[:n-1]
	}
}

// Depth returns the number of frames currently recorded.
func (r *Recorder) Depth() int {
	if r == nil {
		return 0
	}
	return len(r.frames)
}

// Snapshot returns an independent ordered copy of the current contents,
// oldest first. Nil when empty. The copy never aliases live storage, so
// subsequent Push/Pop activity cannot mutate it.
func (r *Recorder) Snapshot() []Frame {
	if r == nil || len(r.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}
