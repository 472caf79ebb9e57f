package systems

import (
	"math"
	"testing"

	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/collision"
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/automoto/plasmaship/shared/tiles"
	"github.com/automoto/plasmaship/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1/64 s moves a plain bullet exactly 3 units.
const tick = 1.0 / 64

func TestBulletExpiresAtEndOfLifespan(t *testing.T) {
	e := newTestECS(t)
	res, sfx := freshResource(), &recorder{}
	b := factory.CreateBullet(e, projectile.Bullet, projectile.Right, 1000, 1000)

	// Lifespan 2.5 s in steps of 0.5 s
	for i := 0; i < 4; i++ {
		StepBullets(e.World, res, 0.5, sfx)
		require.True(t, e.World.Valid(b.Entity()), "step %d", i+1)
	}
	StepBullets(e.World, res, 0.5, sfx)

	assert.False(t, e.World.Valid(b.Entity()))
	assert.Zero(t, res.BulletHits)
	assert.Empty(t, sfx.sounds)
}

func TestLifespanAtSimulationRate(t *testing.T) {
	for _, kind := range projectile.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			e := newTestECS(t)
			res, sfx := freshResource(), &recorder{}
			b := factory.CreateBullet(e, kind, projectile.None, 1000, 1000)

			dt := cfg.Sim.DT()
			want := int(math.Round(cfg.Bullets[kind].Lifespan * float64(cfg.Sim.TPS)))
			for i := 1; i < want; i++ {
				StepBullets(e.World, res, dt, sfx)
				require.True(t, e.World.Valid(b.Entity()), "tick %d", i)
			}
			StepBullets(e.World, res, dt, sfx)
			assert.False(t, e.World.Valid(b.Entity()), "removed on tick %d", want)
		})
	}
}

func TestBulletMovesAlongItsDirection(t *testing.T) {
	e := newTestECS(t)
	b := factory.CreateBullet(e, projectile.Bullet, projectile.Bottom, 100, 100)

	StepBullets(e.World, freshResource(), tick, &recorder{})

	pos := components.Transform.Get(b)
	assert.Equal(t, 100.0, pos.X)
	assert.Equal(t, 97.0, pos.Y)
	assert.Equal(t, 2.5-tick, components.Bullet.Get(b).Life)
}

func TestBulletHitsCraftOnce(t *testing.T) {
	e := newTestECS(t)
	res, sfx := freshResource(), &recorder{}
	factory.CreateShip(e, 0, 0)
	b := factory.CreateBullet(e, projectile.Bullet, projectile.Right, 0, 0)

	StepBullets(e.World, res, tick, sfx)

	assert.False(t, e.World.Valid(b.Entity()))
	assert.Equal(t, 1, res.BulletHits)
	assert.Equal(t, cfg.Ship.StartingLife-cfg.Ship.BulletDamage, res.Life)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit}, sfx.sounds)
	assert.Zero(t, res.XForce)

	StepBullets(e.World, res, tick, sfx)
	assert.Equal(t, 1, res.BulletHits)
	assert.Len(t, sfx.sounds, 1)
}

func TestBulletOverlappingHullAndNoseHitsOnce(t *testing.T) {
	e := newTestECS(t)
	res, sfx := freshResource(), &recorder{}
	factory.CreateShip(e, 0, 0)
	factory.CreateBullet(e, projectile.Plasma, projectile.None, 0, 8)

	hitbox := projectile.Colliders(cfg.Bullets[projectile.Plasma], 0, 8)
	craft := CraftColliders(e.World)
	require.Len(t, craft, 2)
	for _, part := range craft {
		require.True(t, collision.AreColliding(hitbox.Polygons(), []geometry.Polygon{part}))
	}

	StepBullets(e.World, res, tick, sfx)

	assert.Equal(t, 1, res.BulletHits)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit}, sfx.sounds)
	assert.Zero(t, bulletCount(e.World))
}

func TestEveryPhysicalBulletCounts(t *testing.T) {
	e := newTestECS(t)
	res, sfx := freshResource(), &recorder{}
	factory.CreateShip(e, 0, 0)
	factory.CreateBullet(e, projectile.Bullet, projectile.Right, -4, 0)
	factory.CreateBullet(e, projectile.Plasma, projectile.Left, 4, 0)

	StepBullets(e.World, res, tick, sfx)

	assert.Equal(t, 2, res.BulletHits)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit, cfg.SoundHit}, sfx.sounds)
	assert.Zero(t, bulletCount(e.World))
}

func TestLifeDoesNotGoNegative(t *testing.T) {
	e := newTestECS(t)
	res := freshResource()
	res.Life = 5
	factory.CreateShip(e, 0, 0)
	factory.CreateBullet(e, projectile.Bullet, projectile.Top, 0, 0)

	StepBullets(e.World, res, tick, &recorder{})

	assert.Equal(t, 1, res.BulletHits)
	assert.Zero(t, res.Life)
}

func TestExpiredBulletDoesNotHitCraft(t *testing.T) {
	e := newTestECS(t)
	res, sfx := freshResource(), &recorder{}
	factory.CreateShip(e, 0, 0)
	b := factory.CreateBullet(e, projectile.Bullet, projectile.Right, 0, 0)
	components.Bullet.Get(b).Life = 0.25

	StepBullets(e.World, res, 0.25, sfx)

	assert.False(t, e.World.Valid(b.Entity()))
	assert.Zero(t, res.BulletHits)
	assert.Empty(t, sfx.sounds)
}

func TestBulletOnCraftAndWallIsRemovedOnce(t *testing.T) {
	for _, withSpace := range []bool{false, true} {
		name := "scan"
		if withSpace {
			name = "index"
		}
		t.Run(name, func(t *testing.T) {
			e := newTestECS(t)
			if withSpace {
				factory.CreateSpace(e, 704, 576)
			}
			res, sfx := freshResource(), &recorder{}
			factory.CreateShip(e, 0, 0)
			// A top wall band spanning y -4..4 right through the ship
			require.NotNil(t, factory.CreateWall(e, tiles.TopWall, -16, 4))
			b := factory.CreateBullet(e, projectile.Bullet, projectile.Right, 0, 0)

			assert.NotPanics(t, func() { StepBullets(e.World, res, tick, sfx) })

			assert.False(t, e.World.Valid(b.Entity()))
			assert.Equal(t, 1, res.BulletHits)
			assert.Len(t, sfx.sounds, 1)
		})
	}
}

func TestAirBulletPushesCraft(t *testing.T) {
	rate := 3.0
	tests := []struct {
		dir   projectile.Direction
		force float64
	}{
		{projectile.Left, -rate * tick},
		{projectile.Right, rate * tick},
		{projectile.Top, 0},
		{projectile.Bottom, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			e := newTestECS(t)
			res, sfx := freshResource(), &recorder{}
			factory.CreateShip(e, 0, 0)
			b := factory.CreateBullet(e, projectile.Air, tt.dir, 0, 0)

			StepBullets(e.World, res, tick, sfx)

			assert.True(t, e.World.Valid(b.Entity()), "air is not consumed by the craft")
			assert.InDelta(t, tt.force, res.XForce, 1e-12)
			assert.Zero(t, res.BulletHits)
			assert.Equal(t, cfg.Ship.StartingLife, res.Life)
			assert.Equal(t, []cfg.SoundID{cfg.SoundAir}, sfx.sounds)
			assert.Equal(t, cfg.Audio.AirCooldown, res.AirTimer)
		})
	}
}

func TestAirSoundIsThrottled(t *testing.T) {
	e := newTestECS(t)
	res, sfx := freshResource(), &recorder{}
	factory.CreateShip(e, 0, 0)
	factory.CreateBullet(e, projectile.Air, projectile.Right, 0, 0)
	factory.CreateBullet(e, projectile.Air, projectile.Right, 2, 0)

	StepBullets(e.World, res, tick, sfx)
	assert.Len(t, sfx.sounds, 1, "one effect per cooldown even with two streams")
	assert.InDelta(t, 2*3*tick, res.XForce, 1e-12)

	// 0.2 s cooldown is 12.8 ticks
	for i := 0; i < 12; i++ {
		StepBullets(e.World, res, tick, sfx)
	}
	assert.Len(t, sfx.sounds, 1)

	StepBullets(e.World, res, tick, sfx)
	assert.Len(t, sfx.sounds, 2)
}

func TestAirTimerRunsWithoutContact(t *testing.T) {
	e := newTestECS(t)
	res := freshResource()
	res.AirTimer = 0.5

	StepBullets(e.World, res, 0.125, &recorder{})

	assert.Equal(t, 0.375, res.AirTimer)
}

func TestAirBulletOnCraftStillMeetsWalls(t *testing.T) {
	e := newTestECS(t)
	res, sfx := freshResource(), &recorder{}
	factory.CreateShip(e, 0, 0)
	factory.CreateWall(e, tiles.TopWall, -16, 4)
	b := factory.CreateBullet(e, projectile.Air, projectile.Right, 0, 0)

	StepBullets(e.World, res, tick, sfx)

	assert.InDelta(t, 3*tick, res.XForce, 1e-12)
	assert.False(t, e.World.Valid(b.Entity()))
}

func TestAirBulletScalesWithAge(t *testing.T) {
	e := newTestECS(t)
	b := factory.CreateBullet(e, projectile.Air, projectile.Top, 1000, 1000)
	plain := factory.CreateBullet(e, projectile.Plasma, projectile.Top, 2000, 1000)

	StepBullets(e.World, freshResource(), 0.75, &recorder{})

	assert.InDelta(t, 1.5, components.Transform.Get(b).ScaleY, 1e-6)
	assert.Equal(t, 1.0, components.Transform.Get(b).ScaleX)
	assert.Equal(t, 1.0, components.Transform.Get(plain).ScaleY)
}

func TestBulletAbsorbedByWall(t *testing.T) {
	for _, withSpace := range []bool{false, true} {
		name := "scan"
		if withSpace {
			name = "index"
		}
		t.Run(name, func(t *testing.T) {
			e := newTestECS(t)
			if withSpace {
				factory.CreateSpace(e, 704, 576)
			}
			res, sfx := freshResource(), &recorder{}
			// Left wall band: x 64..72, y 0..32
			factory.CreateWall(e, tiles.LeftWall, 64, 32)
			b := factory.CreateBullet(e, projectile.Bullet, projectile.Right, 50, 16)

			// Right edge after each tick: 57, 60, 63
			for i := 0; i < 3; i++ {
				StepBullets(e.World, res, tick, sfx)
				require.True(t, e.World.Valid(b.Entity()), "tick %d", i+1)
			}
			// 66 reaches the wall
			StepBullets(e.World, res, tick, sfx)

			assert.False(t, e.World.Valid(b.Entity()))
			assert.Zero(t, res.BulletHits)
			assert.Zero(t, res.XForce)
			assert.Empty(t, sfx.sounds)
		})
	}
}

func TestBulletAbsorbedByDoorInAnyPhase(t *testing.T) {
	for _, code := range []int{117, 127, 154} {
		e := newTestECS(t)
		factory.CreateSpace(e, 704, 576)
		// Horizontal door band: y 52..44 below the anchor at y 64
		require.NotNil(t, factory.CreateDoor(e, code, 64, 64))
		b := factory.CreateBullet(e, projectile.Bullet, projectile.Top, 80, 40)

		StepBullets(e.World, freshResource(), tick, &recorder{})

		assert.False(t, e.World.Valid(b.Entity()), "door %d", code)
	}
}

func TestCanonsAreNotObstacles(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCanon(e, 61, 0, 32)
	b := factory.CreateBullet(e, projectile.Bullet, projectile.Right, 16, 16)

	StepBullets(e.World, freshResource(), tick, &recorder{})

	assert.True(t, e.World.Valid(b.Entity()))
}

func TestUpdateBulletsUsesSharedState(t *testing.T) {
	e := newTestECS(t)
	factory.CreateShip(e, 0, 0)
	factory.CreateBullet(e, projectile.Bullet, projectile.Right, 0, 0)

	UpdateBullets(e)

	assert.Equal(t, 1, GetOrCreateResource(e).BulletHits)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit}, GetOrCreateAudio(e).PendingSFX)
}

var _ SoundQueue = (*components.AudioData)(nil)
