package processors

import (
	"time"
	"unicode/utf8"

	"task-strategies/logger"
	"task-strategies/tasks"
)

// DefaultStandardDelay is the simulated processing cost of the
// standard strategy.
const DefaultStandardDelay = 1 * time.Second

var _ TaskProcessor = (*StandardProcessor)(nil)

// StandardProcessor handles ordinary tasks with a fixed simulated delay.
// A task is valid for it when its title is at least three characters long.
type StandardProcessor struct {
	sleeper Sleeper
	delay   time.Duration
	logger  *logger.Logger
}

// NewStandardProcessor returns a production-ready StandardProcessor
// with the given simulated delay.
func NewStandardProcessor(lg *logger.Logger, delay time.Duration) *StandardProcessor {
	return &StandardProcessor{sleeper: &realSleeper{}, delay: delay, logger: lg}
}

func (p *StandardProcessor) Name() string {
	return StrategyStandard
}

func (p *StandardProcessor) Validate(task *tasks.Task) bool {
	// Characters, not bytes: multi-byte titles count by rune.
	return utf8.RuneCountInString(task.Title) >= 3
}

func (p *StandardProcessor) Process(task *tasks.Task) *tasks.Result {
	sw := newStopwatch()

	validationPassed := p.Validate(task)

	// Simulated work happens whether or not validation passed.
	p.sleeper.Sleep(p.delay)
	task.MarkCompleted()

	p.logger.Task(task.ID, "processed standard task", map[string]any{
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
