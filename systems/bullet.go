package systems

import (
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/collision"
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/automoto/plasmaship/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SoundQueue receives effects raised during a tick.
type SoundQueue interface {
	Queue(id cfg.SoundID)
}

// liveBullet is a bullet that survived its lifetime check this tick, with
// the hitbox derived from its tick-end position.
type liveBullet struct {
	entry   *donburi.Entry
	bullet  *components.BulletData
	profile projectile.Profile
	hitbox  geometry.Colliders
}

// UpdateBullets runs one bullet tick against the level and the ship.
func UpdateBullets(ecs *ecs.ECS) {
	StepBullets(ecs.World, GetOrCreateResource(ecs), cfg.Sim.DT(), GetOrCreateAudio(ecs))
}

// StepBullets advances every bullet by dt, then resolves craft and
// environment contact. Expired and consumed bullets are removed after all
// passes have run.
func StepBullets(world donburi.World, res *components.ResourceData, dt float64, sfx SoundQueue) {
	res.AirTimer -= dt

	var alive []liveBullet
	var toRemove []*donburi.Entry

	tags.Bullet.Each(world, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		t := components.Transform.Get(e)
		p := cfg.Bullets[b.Kind]

		b.Life -= dt
		t.X, t.Y = projectile.Advance(t.X, t.Y, b.Direction, p.Speed, dt)
		t.ScaleX = 1
		t.ScaleY = projectile.ScaleAt(b.Scale, p, b.Life)

		if projectile.Expired(b.Life) {
			toRemove = append(toRemove, e)
			return
		}
		alive = append(alive, liveBullet{
			entry:   e,
			bullet:  b,
			profile: p,
			hitbox:  projectile.Colliders(p, t.X, t.Y),
		})
	})

	// Craft pass
	craft := CraftColliders(world)
	remaining := make([]liveBullet, 0, len(alive))
	for i := range alive {
		lb := &alive[i]
		if len(craft) > 0 && collision.AreColliding(lb.hitbox.Polygons(), craft) {
			if !lb.profile.Area {
				res.BulletHit()
				sfx.Queue(cfg.SoundHit)
				toRemove = append(toRemove, lb.entry)
				continue
			}
			blowAir(res, lb.bullet.Direction, dt, sfx)
		}
		remaining = append(remaining, *lb)
	}

	// Environment pass
	walls := environmentCandidates(world, remaining)
	if len(walls) > 0 {
		for i := range remaining {
			if collision.AreColliding(remaining[i].hitbox.Polygons(), walls) {
				toRemove = append(toRemove, remaining[i].entry)
			}
		}
	}

	for _, e := range toRemove {
		if world.Valid(e.Entity()) {
			world.Remove(e.Entity())
		}
	}
}

// blowAir pushes the craft along an air stream. Left streams decrease the
// force and right streams increase it; vertical streams only make noise.
func blowAir(res *components.ResourceData, dir projectile.Direction, dt float64, sfx SoundQueue) {
	switch dir {
	case projectile.Left:
		res.AddXForce(-cfg.Ship.AirForceRate * dt)
	case projectile.Right:
		res.AddXForce(cfg.Ship.AirForceRate * dt)
	}
	if projectile.Expired(res.AirTimer) {
		sfx.Queue(cfg.SoundAir)
		res.AirTimer = cfg.Audio.AirCooldown
	}
}

// environmentCandidates flattens the polygons of every static hitbox that
// passes the broad phase against at least one of the bullets.
func environmentCandidates(world donburi.World, bullets []liveBullet) []geometry.Polygon {
	if len(bullets) == 0 {
		return nil
	}

	var polys []geometry.Polygon
	for _, static := range staticColliders(world, bullets) {
		for i := range bullets {
			if collision.IsEligibleWithin(static, &bullets[i].hitbox, cfg.Collision.BroadPhaseMargin) {
				polys = append(polys, static.Polygons()...)
				break
			}
		}
	}
	return polys
}

// staticColliders returns the wall and door hitboxes that may be near the
// bullets. With a space it asks the index; without one it lists them all.
func staticColliders(world donburi.World, bullets []liveBullet) []*geometry.Colliders {
	if spaceEntry, ok := components.Space.First(world); ok {
		m := cfg.Collision.BroadPhaseMargin
		bb := bullets[0].hitbox.Bounds()
		for i := 1; i < len(bullets); i++ {
			bb = bb.Merge(bullets[i].hitbox.Bounds())
		}
		return components.Space.Get(spaceEntry).Query(cp.BB{L: bb.L - m, B: bb.B - m, R: bb.R + m, T: bb.T + m})
	}

	var out []*geometry.Colliders
	collect := func(e *donburi.Entry) {
		out = append(out, components.Colliders.Get(e))
	}
	tags.Wall.Each(world, collect)
	tags.Door.Each(world, collect)
	return out
}
