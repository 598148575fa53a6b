//go:build !tracenative && !tracemin

// tier_recorded.go — default build: recorded-tier binding.
//
// Without tags, carriers snapshot the goroutine's Recorder and the Scope
// annotation actively records frames.
package xgxtrace

// ActiveTier is the build-selected capture tier. It is a constant so tier
// checks on hot paths resolve at compile time; every carrier in this build
// uses this tier.
const ActiveTier = TierRecorded

// activeStrategy is the strategy bound to ActiveTier for this build.
var activeStrategy strategy = recordedStrategy{}
