package tiles

import (
	"testing"

	"github.com/automoto/plasmaship/shared/doors"
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	x, y, w, h float64
}

func boxes(cs geometry.Colliders) []box {
	out := make([]box, 0, cs.Len())
	for _, m := range cs.Members() {
		out = append(out, box{m.Anchor().X, m.Anchor().Y, m.Width(), m.Height()})
	}
	return out
}

func TestToColliders(t *testing.T) {
	const x, y = 64.0, 96.0

	cases := []struct {
		name string
		code int
		want []box
	}{
		{"top left", 30, []box{{64, 96, 32, -8}, {64, 96, 8, -32}}},
		{"top", 31, []box{{64, 96, 32, -8}}},
		{"top right", 32, []box{{64, 96, 32, -8}, {88, 96, 8, -32}}},
		{"left", 40, []box{{64, 96, 8, -32}}},
		{"right", 42, []box{{88, 96, 8, -32}}},
		{"bottom left", 50, []box{{64, 72, 32, -8}, {64, 96, 8, -32}}},
		{"bottom", 51, []box{{64, 72, 32, -8}}},
		{"bottom right", 52, []box{{64, 72, 32, -8}, {88, 96, 8, -32}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cs, ok := ToColliders(c.code, x, y)
			require.True(t, ok)
			assert.Equal(t, c.want, boxes(cs))
			assert.True(t, IsWall(c.code))
		})
	}
}

func TestToCollidersUnknownCodes(t *testing.T) {
	walls := map[int]bool{30: true, 31: true, 32: true, 40: true, 42: true, 50: true, 51: true, 52: true}
	for code := -10; code <= 300; code++ {
		if walls[code] {
			continue
		}
		cs, ok := ToColliders(code, 0, 0)
		assert.False(t, ok, "code %d", code)
		assert.Zero(t, cs.Len(), "code %d", code)
	}
}

func TestDoorColliders(t *testing.T) {
	cs, ok := DoorColliders(114, 32, 64)
	require.True(t, ok)
	assert.Equal(t, []box{{32, 52, 32, -8}}, boxes(cs))

	cs, ok = DoorColliders(doors.ClosedTop, 32, 64)
	require.True(t, ok)
	assert.Equal(t, []box{{44, 64, 8, -32}}, boxes(cs))

	for _, code := range doors.Codes() {
		_, ok := DoorColliders(code, 0, 0)
		assert.True(t, ok, "code %d", code)
	}
	_, ok = DoorColliders(doors.Empty, 0, 0)
	assert.False(t, ok)
	_, ok = DoorColliders(31, 0, 0)
	assert.False(t, ok)
}

func TestToCanon(t *testing.T) {
	cases := []struct {
		code int
		want CanonSpec
	}{
		{60, CanonSpec{projectile.Bullet, projectile.Left}},
		{61, CanonSpec{projectile.Bullet, projectile.Right}},
		{72, CanonSpec{projectile.Plasma, projectile.Top}},
		{83, CanonSpec{projectile.Air, projectile.Bottom}},
	}
	for _, c := range cases {
		got, ok := ToCanon(c.code)
		require.True(t, ok, "code %d", c.code)
		assert.Equal(t, c.want, got)
	}

	for _, code := range []int{-60, 0, 31, 59, 64, 69, 74, 84, 90, 600} {
		_, ok := ToCanon(code)
		assert.False(t, ok, "code %d", code)
	}
}

func TestCanonColliders(t *testing.T) {
	cs := CanonColliders(0, 32)
	assert.Equal(t, []box{{0, 32, 32, -32}}, boxes(cs))
}

func TestTableCodesDoNotOverlap(t *testing.T) {
	for code := 0; code < 300; code++ {
		n := 0
		if IsWall(code) {
			n++
		}
		if doors.IsTogglable(code) {
			n++
		}
		if _, ok := ToCanon(code); ok {
			n++
		}
		assert.LessOrEqual(t, n, 1, "code %d is claimed by more than one table", code)
	}
}
