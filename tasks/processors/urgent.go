package processors

import (
	"task-strategies/logger"
	"task-strategies/tasks"
)

var _ TaskProcessor = (*UrgentProcessor)(nil)

// UrgentProcessor handles urgent tasks with no simulated delay.
// A task is valid for it only when its priority is urgent and it
// carries a description.
type UrgentProcessor struct {
	logger *logger.Logger
}

// NewUrgentProcessor returns a production-ready UrgentProcessor.
func NewUrgentProcessor(lg *logger.Logger) *UrgentProcessor {
	return &UrgentProcessor{logger: lg}
}

func (p *UrgentProcessor) Name() string {
	return StrategyUrgent
}

func (p *UrgentProcessor) Validate(task *tasks.Task) bool {
	return task.Priority == tasks.PriorityUrgent && task.Description != ""
}

func (p *UrgentProcessor) Process(task *tasks.Task) *tasks.Result {
	sw := newStopwatch()

	validationPassed := p.Validate(task)

	// Completion is unconditional: validity is metadata, not a gate.
	task.MarkCompleted()

	p.logger.Task(task.ID, "processed urgent task", map[string]any{
		"strategy":          p.Name(),
		"validation_passed": validationPassed,
	})

	return &tasks.Result{
		Status:           task.Status(),
		ProcessingTime:   sw.elapsed(),
		StrategyUsed:     p.Name(),
		ValidationPassed: validationPassed,
	}
}
