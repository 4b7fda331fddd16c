package device

import "time"

// SleepClock delays with time.Sleep.
type SleepClock struct{}

// Delay implements Clock.
func (SleepClock) Delay(ms int) {
	if ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
}
