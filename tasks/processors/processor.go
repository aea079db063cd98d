package processors

import (
	"time"

	"task-strategies/tasks"
)

// Strategy names are part of the observable contract.
const (
	StrategyUrgent     = "urgent"
	StrategyStandard   = "standard"
	StrategyBackground = "background"
)

// TaskProcessor defines the interface implemented by any processing strategy.
//
// This allows variant-specific logic (urgent, standard, background) to be
// encapsulated in independent processors, decoupled from the manager that
// delegates to them.
type TaskProcessor interface {
	// Name returns the strategy's contract name.
	Name() string

	// Validate applies the strategy's validation rule to the task.
	// Failure is reported as data, never as an error.
	Validate(task *tasks.Task) bool

	// Process validates the task, simulates the strategy's processing
	// cost, marks the task completed, and returns the structured result.
	Process(task *tasks.Task) *tasks.Result
}

// Names returns the recognized strategy names.
func Names() []string {
	return []string{StrategyUrgent, StrategyStandard, StrategyBackground}
}

// IsKnown reports whether name is a recognized strategy name.
func IsKnown(name string) bool {
	switch name {
	case StrategyUrgent, StrategyStandard, StrategyBackground:
		return true
	}
	return false
}

// Sleeper abstracts time.Sleep to allow injection of real vs fake implementations.
// This makes the processors testable without incurring real wait time,
// and ensures strategy behavior can be validated deterministically in unit tests.
type Sleeper interface {
	Sleep(d time.Duration)
}

// realSleeper is the production implementation of Sleeper.
// It delegates directly to time.Sleep.
type realSleeper struct{}

func (s *realSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}
