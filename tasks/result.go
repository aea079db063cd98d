package tasks

import "time"

// Result is the outcome of processing a single task.
//
// The field names in the JSON form and the literal strategy names
// ("urgent", "standard", "background") are part of the observable
// contract and must not change.
type Result struct {
	// Status mirrors Task.Status at the end of processing.
	Status string `json:"status"`
	// ProcessingTime is the wall-clock duration of the Process call.
	ProcessingTime time.Duration `json:"processing_time"`
	// StrategyUsed names the processor variant that produced this result.
	StrategyUsed string `json:"strategy_used"`
	// ValidationPassed reports the variant's validation outcome.
	// A false value is data, not an error: processing still happened.
	ValidationPassed bool `json:"validation_passed"`
}
