package verbosity

import "sync/atomic"

// global holds the installed level biased by one so that zero means
// "never installed". A single word cannot be observed torn, and the
// compare-and-swap in Install gives exactly one winning writer.
var global atomic.Int32

// Install writes l into the process-wide cell. The first call wins; every
// later call is ignored and the installed level is unchanged. It reports
// whether this call was the one that installed the level.
//
// Install is safe to race, but it is meant to be called once, early in
// start-up, before any reporting happens.
func Install(l Level) bool {
	return global.CompareAndSwap(0, int32(l)+1)
}

// Current returns the installed level. Before any Install call it returns
// Quiet, so an unconfigured tool stays silent.
func Current() Level {
	if v := global.Load(); v != 0 {
		return Level(v - 1)
	}
	return Quiet
}

// IsQuiet reports whether the current level is Quiet.
func IsQuiet() bool {
	return Current() == Quiet
}

// IsTerse reports whether the current level is at least Terse,
// i.e. summary reporting should be emitted.
func IsTerse() bool {
	return Current() != Quiet
}

// IsVerbose reports whether the current level is Verbose.
func IsVerbose() bool {
	return Current() == Verbose
}

// reset clears the cell. Only for tests.
func reset() {
	global.Store(0)
}
