package main

import (
	"encoding/json"
	"fmt"
	"log"

	"task-strategies/config"
	"task-strategies/logger"
	"task-strategies/tasks"
	"task-strategies/tasks/manager"
	"task-strategies/tasks/processors"
	strategyRegistry "task-strategies/tasks/registry"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Create logger
	lg := logger.New(cfg.LogLevel, nil)

	// Log startup using the centralized logger
	lg.Info("Starting task strategies demo", map[string]any{
		"version":   cfg.Version,
		"strategy":  cfg.Strategy,
		"log_level": cfg.LogLevel,
	})

	// Wire up business logic dependencies
	registry := createStrategyRegistry(lg, cfg)
	initial, ok := registry.Get(cfg.Strategy)
	if !ok {
		log.Fatalf("configured strategy %q is not registered", cfg.Strategy)
	}
	mgr := manager.NewTaskManager(initial, lg)

	if err := runScenarios(mgr, registry, lg, cfg.Strategy); err != nil {
		log.Fatalf("scenario failed: %v", err)
	}
}

// createStrategyRegistry sets up all processing strategies
func createStrategyRegistry(lg *logger.Logger, cfg *config.Config) *strategyRegistry.StrategyRegistry {
	registry := strategyRegistry.NewRegistry()
	registry.Register(processors.NewUrgentProcessor(lg))
	registry.Register(processors.NewStandardProcessor(lg, cfg.StandardDelay))
	registry.Register(processors.NewBackgroundProcessor(lg, cfg.BackgroundDelay))

	lg.Info("Registered processing strategies", map[string]any{
		"count": len(registry.Names()),
		"names": registry.Names(),
	})

	return registry
}

// runScenarios walks through the demo workflow: a routine task handled by
// the configured initial strategy, an urgent incident after a swap to the
// urgent strategy, then a swap to the background strategy for a
// low-priority task.
func runScenarios(mgr *manager.TaskManager, registry *strategyRegistry.StrategyRegistry, lg *logger.Logger, initialName string) error {
	urgent, ok := registry.Get(processors.StrategyUrgent)
	if !ok {
		return fmt.Errorf("strategy %q is not registered", processors.StrategyUrgent)
	}
	background, ok := registry.Get(processors.StrategyBackground)
	if !ok {
		return fmt.Errorf("strategy %q is not registered", processors.StrategyBackground)
	}

	lg.Info("Running first scenario with configured strategy", map[string]any{
		"strategy": initialName,
	})

	routine, err := tasks.NewTask("Triage inbox", tasks.PriorityMedium, "Routine follow-up")
	if err != nil {
		return err
	}

	result, err := mgr.ExecuteTask(routine)
	if err != nil {
		return err
	}
	printResult(routine, result)

	incident, err := tasks.NewTask("Security breach", tasks.PriorityUrgent, "Critical fix needed")
	if err != nil {
		return err
	}

	mgr.SetStrategy(urgent)
	result, err = mgr.ExecuteTask(incident)
	if err != nil {
		return err
	}
	printResult(incident, result)

	docs, err := tasks.NewTask("Update docs", tasks.PriorityLow, "Documentation update")
	if err != nil {
		return err
	}

	mgr.SetStrategy(background)
	result, err = mgr.ExecuteTask(docs)
	if err != nil {
		return err
	}
	printResult(docs, result)

	lg.Info("All scenarios completed")
	return nil
}

func printResult(task *tasks.Task, result *tasks.Result) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Printf("failed to encode result for task %s: %v", task.ID, err)
		return
	}
	fmt.Printf("%s: %s\n", task.Title, data)
}
