package processors

import (
	"time"

	"task-strategies/logger"
	"task-strategies/tasks"
)

// DefaultBackgroundDelay is the simulated processing cost of the
// background strategy.
const DefaultBackgroundDelay = 100 * time.Millisecond

var _ TaskProcessor = (*BackgroundProcessor)(nil)

// BackgroundProcessor handles deferrable tasks with a short simulated delay.
// Urgent tasks are never valid for it; everything else is.
type BackgroundProcessor struct {
	sleeper Sleeper
	delay   time.Duration
	logger  *logger.Logger
}

// NewBackgroundProcessor returns a production-ready BackgroundProcessor
// with the given simulated delay.
func NewBackgroundProcessor(lg *logger.Logger, delay time.Duration) *BackgroundProcessor {
	return &BackgroundProcessor{sleeper: &realSleeper{}, delay: delay, logger: lg}
}

func (p *BackgroundProcessor) Name() string {
	return StrategyBackground
}

func (p *BackgroundProcessor) Validate(task *tasks.Task) bool {
	return task.Priority != tasks.PriorityUrgent
}

func (p *BackgroundProcessor) Process(task *tasks.Task) *tasks.Result {
	sw := newStopwatch()

	validationPassed := p.Validate(task)

	p.sleeper.Sleep(p.delay)
	task.MarkCompleted()

	p.logger.Task(task.ID, "processed background task", map[string]any{
		"strategy":          p.Name(),
		"validation_passed": validationPassed,
		"delay":             p.delay.String(),
	})

	return &tasks.Result{
		Status:           task.Status(),
		ProcessingTime:   sw.elapsed(),
		StrategyUsed:     p.Name(),
		ValidationPassed: validationPassed,
	}
}
