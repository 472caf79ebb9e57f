package components

import (
	cfg "github.com/automoto/plasmaship/config"
	"github.com/yohamta/donburi"
)

// ResourceData holds the counters shared with the outer game loop.
// Singleton component.
type ResourceData struct {
	XForce     float64
	BulletHits int
	Life       float64
	Fuel       float64
	Coins      int
	AirTimer   float64 // time left before another air effect may play
}

// NewResource returns the counters a level starts with.
func NewResource() ResourceData {
	return ResourceData{
		Life: cfg.Ship.StartingLife,
		Fuel: cfg.Ship.StartingFuel,
	}
}

// BulletHit records one physical projectile striking the craft.
func (r *ResourceData) BulletHit() {
	r.BulletHits++
	r.Life -= cfg.Ship.BulletDamage
	if r.Life < 0 {
		r.Life = 0
	}
}

// AddXForce accumulates horizontal force applied to the craft.
func (r *ResourceData) AddXForce(delta float64) {
	r.XForce += delta
}

var Resource = donburi.NewComponentType[ResourceData]()
