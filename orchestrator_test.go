package edmd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrchestrator_GeneratesWhenNoImports(t *testing.T) {
	cfg := NewConfig(WithN(5), WithDims(4, 4))
	rng := rand.New(rand.NewSource(5))
	orch, err := NewOrchestrator(cfg, NewNopLogger(), rng)
	require.NoError(t, err)

	assert.Len(t, orch.State.Pos, 5)
	assert.Len(t, orch.State.Vel, 5)
	assert.NotNil(t, orch.Maze)
	assert.Equal(t, 5, orch.OrigN)
	assert.Greater(t, orch.State.Radius, 0.0)
}

func TestNewOrchestrator_RejectsInvalidRadius(t *testing.T) {
	cfg := NewConfig(WithN(0), WithDims(4, 4))
	_, err := NewOrchestrator(cfg, NewNopLogger(), rand.New(rand.NewSource(5)))
	require.ErrorIs(t, err, ErrInvalidRadius)
}

func TestNewOrchestrator_Summary(t *testing.T) {
	cfg := NewConfig(WithN(3), WithDims(3, 3))
	orch, err := NewOrchestrator(cfg, NewNopLogger(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	summary := orch.Summary()
	assert.Contains(t, summary, "MazeDiffusion run")
	assert.Contains(t, summary, "Contains 3 particles")
}

func TestOrchestrator_SimulateAdvancesDuration(t *testing.T) {
	cfg := NewConfig(WithN(4), WithDims(3, 3), WithDt(0.02), WithStepsize(5))
	orch, err := NewOrchestrator(cfg, NewNopLogger(), rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	require.NoError(t, orch.Simulate(10, nil))
	assert.Greater(t, orch.Duration, 0.0)
}
