package processors

import "time"

// stopwatch measures the wall-clock duration of a single Process call.
//
// Each call creates its own value, so no timing state is ever shared
// between processors or between consecutive runs of the same processor.
type stopwatch struct {
	start time.Time
}

func newStopwatch() stopwatch {
	return stopwatch{start: time.Now()}
}

// elapsed returns the time since the stopwatch was created.
func (s stopwatch) elapsed() time.Duration {
	return time.Since(s.start)
}
