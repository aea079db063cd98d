package registry

import (
	"sync"

	"task-strategies/tasks/processors"
)

// StrategyRegistry maintains a mapping between strategy names and their processors.
// This registry enables runtime resolution of a processing strategy by name,
// so callers can select behavior from configuration without hard-coding variants.
type StrategyRegistry struct {
	mu         sync.RWMutex
	processors map[string]processors.TaskProcessor
}

// NewRegistry constructs a new strategy registry.
func NewRegistry() *StrategyRegistry {
	return &StrategyRegistry{
		processors: make(map[string]processors.TaskProcessor),
	}
}

// Register binds a TaskProcessor under its own reported name.
// This should be called during application initialization.
func (r *StrategyRegistry) Register(p processors.TaskProcessor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.processors[p.Name()] = p
}

// Get returns the processor registered under the given strategy name.
// If no processor is registered, ok will be false.
func (r *StrategyRegistry) Get(name string) (processors.TaskProcessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.processors[name]
	return p, ok
}

// Names returns a slice of all registered strategy names.
// This is useful for diagnostics and configuration error messages.
func (r *StrategyRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.processors))
	for name := range r.processors {
		names = append(names, name)
	}
	return names
}
