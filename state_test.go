package edmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_WallPairs(t *testing.T) {
	s := &State{Pos: make([]Vec2, 3), Vel: make([]Vec2, 3)}
	pairs := s.WallPairs()
	assert.Len(t, pairs, 6)
	assert.Equal(t, [2]int{0, int(AxisX)}, pairs[0])
	assert.Equal(t, [2]int{0, int(AxisY)}, pairs[1])
	assert.Equal(t, [2]int{2, int(AxisY)}, pairs[5])
}

func TestState_DiskPairs(t *testing.T) {
	s := &State{Pos: make([]Vec2, 3), Vel: make([]Vec2, 3)}
	pairs := s.DiskPairs()
	assert.ElementsMatch(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, pairs)
}

func TestState_N(t *testing.T) {
	s := &State{Pos: make([]Vec2, 4)}
	assert.Equal(t, 4, s.N())
}
