package doors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTogglable(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, 20)

	known := map[int]bool{}
	for _, c := range codes {
		known[c] = true
		assert.True(t, IsTogglable(c), "code %d", c)
	}
	for c := -5; c < 300; c++ {
		if !known[c] {
			assert.False(t, IsTogglable(c), "code %d", c)
		}
	}
	assert.False(t, IsTogglable(Empty))
}

func TestNextOpenPhaseIsTwoCycle(t *testing.T) {
	for _, c := range Codes() {
		if !IsPhase(c) {
			continue
		}
		next := NextOpenPhase(c)
		assert.NotEqual(t, c, next)
		assert.True(t, IsPhase(next))
		assert.Equal(t, c, NextOpenPhase(next), "code %d", c)
		assert.Equal(t, OrientationOf(c), OrientationOf(next))
	}
}

func TestNextOpenPhasePairs(t *testing.T) {
	pairs := [][2]int{
		{114, 124}, {115, 125}, {116, 126}, {117, 127},
		{135, 136}, {145, 146}, {155, 156}, {165, 166},
	}
	for _, p := range pairs {
		assert.Equal(t, p[1], NextOpenPhase(p[0]))
		assert.Equal(t, p[0], NextOpenPhase(p[1]))
	}
}

func TestCloseTarget(t *testing.T) {
	cases := map[int]int{
		114: ClosedLeft, 124: ClosedLeft,
		115: Empty, 125: Empty,
		116: Empty, 126: Empty,
		117: ClosedRight, 127: ClosedRight,
		135: ClosedTop, 136: ClosedTop,
		145: Empty, 146: Empty,
		155: Empty, 156: Empty,
		165: ClosedBottom, 166: ClosedBottom,
	}
	for code, want := range cases {
		assert.Equal(t, want, CloseTarget(code), "code %d", code)
	}

	terminal := map[int]bool{ClosedLeft: true, ClosedRight: true, ClosedTop: true, ClosedBottom: true, Empty: true}
	for _, c := range Codes() {
		got := CloseTarget(c)
		assert.True(t, terminal[got], "code %d closes to %d", c, got)
		assert.False(t, IsPhase(got))
	}
	assert.Equal(t, ClosedTop, CloseTarget(ClosedTop))
}

func TestUnmappedCodes(t *testing.T) {
	for _, c := range []int{-1, 0, 30, 41, 113, 128, 200} {
		assert.Equal(t, NoTransition, NextOpenPhase(c), "code %d", c)
		assert.Equal(t, NoTransition, CloseTarget(c), "code %d", c)
	}
	assert.Equal(t, NoTransition, NextOpenPhase(ClosedLeft))
}

func TestOrientationOf(t *testing.T) {
	assert.Equal(t, Horizontal, OrientationOf(114))
	assert.Equal(t, Horizontal, OrientationOf(ClosedRight))
	assert.Equal(t, Vertical, OrientationOf(166))
	assert.Equal(t, Vertical, OrientationOf(ClosedTop))
	assert.Equal(t, NotADoor, OrientationOf(Empty))
	assert.Equal(t, "vertical", Vertical.String())
}

func TestToggleThenClose(t *testing.T) {
	code := 117
	var seen []int
	for i := 0; i < 3; i++ {
		code = NextOpenPhase(code)
		seen = append(seen, code)
	}
	assert.Equal(t, []int{127, 117, 127}, seen)
	assert.Equal(t, ClosedRight, CloseTarget(code))
}
