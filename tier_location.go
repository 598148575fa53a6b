//go:build tracemin

// tier_location.go — constrained build: location-tier binding.
//
// With -tags tracemin, carriers keep only their creation frame and the Scope
// annotation degrades to a no-op. tracemin wins over tracenative when both
// are set: a constrained target cannot afford native captures regardless of
// requested diagnostics.
package xgxtrace

// ActiveTier is the build-selected capture tier. It is a constant so tier
// checks on hot paths resolve at compile time; every carrier in this build
// uses this tier.
const ActiveTier = TierLocation

// activeStrategy is the strategy bound to ActiveTier for this build.
var activeStrategy strategy = locationStrategy{}
