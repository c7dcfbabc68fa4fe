package peripheral

// ClockNode is anything that derives its own dividers from an upstream
// reference clock. SetClockRate tells it the rate, in Hz, the reference is
// about to run at.
type ClockNode interface {
	SetClockRate(hz uint64)
}
