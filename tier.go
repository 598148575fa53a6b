// tier.go — capture tiers and their strategies for xgx-trace core.
//
// Intent:
//   - Name the three capture tiers and keep their metadata (stable order,
//     text form, membership) in one place.
//   - Keep all three strategy implementations compiled in EVERY build so each
//     stays independently testable; only the binding of activeStrategy /
//     ActiveTier is selected by build tags (tier_*.go).
//
// Conventions:
//   - Tier text forms are lowercase ASCII and stable across serialization
//     boundaries (used by MarshalText/JSON).
//   - The active binding is a constant plus a zero-size strategy value, so
//     tier checks on hot paths fold at compile time.
package xgxtrace

import "fmt"

// Tier identifies a trace-capture fidelity level. Exactly one tier is active
// per build; see ActiveTier.
type Tier uint8

const (
	// TierNative captures a full runtime backtrace at carrier creation,
	// including non-instrumented frames. Highest fidelity, highest cost.
	// The zero Tier is deliberately none of the three: a zero Trace does
	// not pass for a captured one.
	TierNative Tier = iota + 1

	// TierRecorded snapshots the goroutine's Recorder: only functions
	// carrying the Scope annotation appear. The default tier.
	TierRecorded

	// TierLocation keeps just the creation frame. Zero trace allocation,
	// fixed footprint, for constrained targets.
	TierLocation
)

// allTiers is the ordered set the core ships with. Unexported to avoid
// exposing mutable slice identity; order is stable to minimize churn in
// docs/examples.
var allTiers = []Tier{TierNative, TierRecorded, TierLocation}

// tierNames maps tiers to their stable text forms.
var tierNames = map[Tier]string{
	TierNative:   "native",
	TierRecorded: "recorded",
	TierLocation: "location",
}

// AllTiers returns a defensive copy of the tiers in a stable order.
func AllTiers() []Tier {
	out := make([]Tier, len(allTiers))
	copy(out, allTiers)
	return out
}

// Valid reports whether t is one of the three defined tiers.
func (t Tier) Valid() bool {
	_, ok := tierNames[t]
	return ok
}

// String returns the stable lowercase name, or "tier(N)" for unknown values.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tier(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler with the stable name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("xgxtrace: cannot marshal unknown tier %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the stable names.
func (t *Tier) UnmarshalText(text []byte) error {
	for tier, name := range tierNames {
		if name == string(text) {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("xgxtrace: unknown tier %q", text)
}

// -----------------------------------------------------------------------------
// Capture strategies — one contract, three always-compiled implementations
// -----------------------------------------------------------------------------

// strategy produces a carrier's trace at construction time. Implementations
// are stateless zero-size values; rec may be nil (absent recorder) and
// creation is the already-captured creation frame. skip counts frames beyond
// the strategy's caller to hide constructor internals from native captures.
type strategy interface {
	tier() Tier
	capture(rec *Recorder, creation Frame, skip int) Trace
}

// nativeStrategy walks the real call stack via the runtime.
type nativeStrategy struct{}

func (nativeStrategy) tier() Tier { return TierNative }

func (nativeStrategy) capture(_ *Recorder, creation Frame, skip int) Trace {
	return Trace{
		captureTier: TierNative,
		creation:    creation,
		frames:      captureBacktrace(skip+1, defaultMaxDepth),
	}
}

// recordedStrategy snapshots the goroutine's Recorder. A nil or empty
// recorder yields an empty trace; the creation frame still renders on the
// Location line.
type recordedStrategy struct{}

func (recordedStrategy) tier() Tier { return TierRecorded }

func (recordedStrategy) capture(rec *Recorder, creation Frame, _ int) Trace {
	return Trace{
		captureTier: TierRecorded,
		creation:    creation,
		frames:      rec.Snapshot(),
	}
}

// locationStrategy keeps only the creation frame. No slice is allocated:
// constructing a carrier under this strategy performs no dynamic allocation
// for trace data.
type locationStrategy struct{}

func (locationStrategy) tier() Tier { return TierLocation }

func (locationStrategy) capture(_ *Recorder, creation Frame, _ int) Trace {
	return Trace{
		captureTier: TierLocation,
		creation:    creation,
	}
}

// Interface conformance guards.
var (
	_ strategy = nativeStrategy{}
	_ strategy = recordedStrategy{}
	_ strategy = locationStrategy{}
)
