package edmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, 10, c.N)
	assert.Equal(t, 10, c.Height)
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, "simulation.log", c.LogFile)
	assert.False(t, c.Fan())
}

func TestNewConfig_Options(t *testing.T) {
	c := NewConfig(
		WithN(50),
		WithDims(8, 12),
		WithDuration(5000),
		WithStepsize(100),
		WithDt(1e-3),
		WithLogFile("run.log"),
		WithSnapDir("snaps"),
		WithArrows(true),
		WithDebug(true),
	)
	assert.Equal(t, 50, c.N)
	assert.Equal(t, 8, c.Height)
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 5000, c.Duration)
	assert.Equal(t, 100, c.Stepsize)
	assert.Equal(t, 1e-3, c.Dt)
	assert.Equal(t, "run.log", c.LogFile)
	assert.Equal(t, "snaps", c.SnapDir)
	assert.True(t, c.WithArrows)
	assert.True(t, c.Debug)
}

func TestConfig_FanEnablesPressurizedDefaults(t *testing.T) {
	c := NewConfig(WithPressureFactor(2.5))
	assert.True(t, c.Fan())
	assert.Equal(t, 13, c.ProgressDivisor)
}

func TestConfig_RadiusDependsOnMode(t *testing.T) {
	plain := NewConfig(WithN(20))
	fan := NewConfig(WithN(20), WithPressureFactor(1))
	assert.Greater(t, plain.Radius(), fan.Radius())
}
