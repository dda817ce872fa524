package edmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinningDisk_FindsDiskInExitWindow(t *testing.T) {
	frame := LogRecord{
		Pos: []Vec2{{1, 5}, {9.5, 0.2}, {9.6, 0.8}},
	}
	idx, ok := WinningDisk(frame, 10)
	assert.True(t, ok)
	assert.Equal(t, 1, idx) // lower y wins
}

func TestWinningDisk_NoneInWindow(t *testing.T) {
	frame := LogRecord{Pos: []Vec2{{1, 5}, {2, 6}}}
	_, ok := WinningDisk(frame, 10)
	assert.False(t, ok)
}

func TestTracePositions_ExtractsSingleDiskAcrossFrames(t *testing.T) {
	frames := []LogRecord{
		{Pos: []Vec2{{0, 0}, {1, 1}}},
		{Pos: []Vec2{{0.1, 0.1}, {1, 1}}},
	}
	trace := TracePositions(frames, 0)
	assert.Len(t, trace, 2)
	assert.Equal(t, 0.1, trace[1].X())
}
