package registry

import (
	"io"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-strategies/logger"
	"task-strategies/tasks/processors"
)

func testLogger() *logger.Logger {
	return logger.New("ERROR", io.Discard)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	lg := testLogger()

	urgent := processors.NewUrgentProcessor(lg)
	registry.Register(urgent)

	got, ok := registry.Get("urgent")
	require.True(t, ok)
	assert.Same(t, urgent, got)
}

func TestRegistry_GetMissing(t *testing.T) {
	registry := NewRegistry()

	got, ok := registry.Get("standard")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	registry := NewRegistry()
	lg := testLogger()

	first := processors.NewStandardProcessor(lg, time.Second)
	second := processors.NewStandardProcessor(lg, 50*time.Millisecond)

	registry.Register(first)
	registry.Register(second)

	got, ok := registry.Get("standard")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestRegistry_Names(t *testing.T) {
	registry := NewRegistry()
	lg := testLogger()

	assert.Empty(t, registry.Names())

	registry.Register(processors.NewUrgentProcessor(lg))
	registry.Register(processors.NewStandardProcessor(lg, time.Second))
	registry.Register(processors.NewBackgroundProcessor(lg, 100*time.Millisecond))

	names := registry.Names()
	sort.Strings(names)
	assert.Equal(t, []string{"background", "standard", "urgent"}, names)
}
