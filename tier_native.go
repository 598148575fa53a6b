//go:build tracenative && !tracemin

// tier_native.go — diagnostics build: native-tier binding.
//
// With -tags tracenative, carriers capture a full runtime backtrace at
// creation and the Scope annotation degrades to a no-op.
package xgxtrace

// ActiveTier is the build-selected capture tier. It is a constant so tier
// checks on hot paths resolve at compile time; every carrier in this build
// uses this tier.
const ActiveTier = TierNative

// activeStrategy is the strategy bound to ActiveTier for this build.
var activeStrategy strategy = nativeStrategy{}
