package domain

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze time via SetClock.
// The assembler needs "now" to pick the century for two-digit WRCC years;
// production code uses the real clock, tests inject a fake.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for assembly. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
