package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"

	"task-strategies/tasks"
)

func TestUrgentProcessor_Validate(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		priority    tasks.Priority
		description string
		want        bool
	}{
		{
			name:        "urgent with description passes",
			title:       "Security breach",
			priority:    tasks.PriorityUrgent,
			description: "Critical fix needed",
			want:        true,
		},
		{
			name:        "urgent without description fails",
			title:       "Security breach",
			priority:    tasks.PriorityUrgent,
			description: "",
			want:        false,
		},
		{
			name:        "non-urgent priority fails",
			title:       "Normal task",
			priority:    tasks.PriorityMedium,
			description: "Regular work",
			want:        false,
		},
		{
			name:        "low priority with description fails",
			title:       "Cleanup",
			priority:    tasks.PriorityLow,
			description: "Clean old files",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := NewUrgentProcessor(testLogger())
			task := mustTask(t, tt.title, tt.priority, tt.description)

			assert.Equal(t, tt.want, processor.Validate(task))
		})
	}
}

func TestUrgentProcessor_Process(t *testing.T) {
	processor := NewUrgentProcessor(testLogger())
	task := mustTask(t, "Security breach", tasks.PriorityUrgent, "Critical fix needed")

	result := processor.Process(task)

	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "urgent", result.StrategyUsed)
	assert.Equal(t, true, result.ValidationPassed)
	// No simulated delay: well under one second
	assert.Assert(t, result.ProcessingTime < time.Second)
	assert.Assert(t, result.ProcessingTime >= 0)
	require.NotNil(t, task.CompletedAt)
}

func TestUrgentProcessor_Name(t *testing.T) {
	assert.Equal(t, "urgent", NewUrgentProcessor(testLogger()).Name())
}
