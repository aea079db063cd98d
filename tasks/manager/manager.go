package manager

import (
	"task-strategies/errors"
	"task-strategies/logger"
	"task-strategies/tasks"
	"task-strategies/tasks/processors"
)

// TaskManager is the context of the strategy pattern: it holds a single
// swappable reference to the current processing strategy and delegates
// execution to it.
//
// The manager has two states, no-strategy and has-strategy. SetStrategy
// moves it into has-strategy and there is no way back; there is no clear
// operation. The manager is sequential: a swap takes effect for the next
// ExecuteTask call only.
type TaskManager struct {
	processor processors.TaskProcessor
	logger    *logger.Logger
}

// NewTaskManager constructs a manager with an optional initial strategy.
// Pass nil to start without one.
func NewTaskManager(p processors.TaskProcessor, lg *logger.Logger) *TaskManager {
	return &TaskManager{
		processor: p,
		logger:    lg,
	}
}

// SetStrategy replaces the current processing strategy. It may be called
// at any time between tasks. A nil processor is ignored: clearing is not a
// supported transition, so the current strategy stays in place.
func (m *TaskManager) SetStrategy(p processors.TaskProcessor) {
	if p == nil {
		m.logger.Warn("ignoring nil strategy")
		return
	}
	m.processor = p
	m.logger.Strategy(p.Name(), "strategy set")
}

// ExecuteTask delegates the task to the current strategy and returns its
// result unchanged.
//
// It fails with an invalid-state error when no strategy is set, or when the
// set strategy reports a name that is not a recognized variant. Validation
// failures inside the strategy are never surfaced here as errors.
func (m *TaskManager) ExecuteTask(task *tasks.Task) (*tasks.Result, error) {
	if m.processor == nil {
		return nil, errors.NewInvalidStateError("no strategy set", map[string]any{
			"task_id": task.ID,
		})
	}

	name := m.processor.Name()
	if !processors.IsKnown(name) {
		return nil, errors.NewInvalidStateError("unrecognized strategy: "+name, map[string]any{
			"task_id":    task.ID,
			"recognized": processors.Names(),
		})
	}

	m.logger.Task(task.ID, "executing task", map[string]any{
		"strategy": name,
		"priority": task.Priority.String(),
	})

	return m.processor.Process(task), nil
}
