// Package projectile holds the per-kind projectile table and the pure parts
// of projectile simulation: movement, derived hitbox and the air scale curve.
package projectile

import (
	"fmt"
	"strings"

	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Kind is the closed set of projectile categories.
type Kind int

const (
	Bullet Kind = iota
	Plasma
	Air
)

var kindNames = [...]string{"bullet", "plasma", "air"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind { return []Kind{Bullet, Plasma, Air} }

// ParseKind is the inverse of Kind.String. It is case-insensitive.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown projectile kind %q", s)
}

// Direction is the axis-aligned travel direction. None is used for
// stationary hazards.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Top
	Bottom
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "none"
	}
}

// Unit returns the direction as a unit vector (y up).
func (d Direction) Unit() geometry.Point2D {
	switch d {
	case Left:
		return geometry.Point2D{X: -1}
	case Right:
		return geometry.Point2D{X: 1}
	case Top:
		return geometry.Point2D{Y: 1}
	case Bottom:
		return geometry.Point2D{Y: -1}
	default:
		return geometry.Point2D{}
	}
}

// Profile is the fixed behaviour of one kind.
type Profile struct {
	Speed    float64 `yaml:"speed"`    // world units per second
	Lifespan float64 `yaml:"lifespan"` // seconds
	HalfW    float64 `yaml:"halfW"`
	HalfH    float64 `yaml:"halfH"`
	Area     bool    `yaml:"area"` // pushes the craft instead of hitting it
}

// DefaultProfiles returns a fresh copy of the built-in kind table.
func DefaultProfiles() map[Kind]Profile {
	return map[Kind]Profile{
		Bullet: {Speed: 192, Lifespan: 2.5, HalfW: 4, HalfH: 4},
		Plasma: {Speed: 128, Lifespan: 4, HalfW: 6, HalfH: 6},
		Air:    {Speed: 96, Lifespan: 1.5, HalfW: 16, HalfH: 16, Area: true},
	}
}

// Epsilon is the residue below which a countdown counts as run out.
const Epsilon = 1e-9

// Expired reports whether a countdown timer has reached zero. Repeated
// subtraction of 1/TPS leaves residue, so values within Epsilon count.
func Expired(remaining float64) bool {
	return remaining <= Epsilon
}

// Advance moves (x, y) by speed*dt along dir.
func Advance(x, y float64, dir Direction, speed, dt float64) (float64, float64) {
	u := dir.Unit().Mult(speed * dt)
	return x + u.X, y + u.Y
}

// Colliders is the hitbox of a projectile centred on (x, y). It is derived
// from the position on every call and must not be cached.
func Colliders(p Profile, x, y float64) geometry.Colliders {
	anchor := geometry.Point2D{X: x - p.HalfW, Y: y - p.HalfH}
	return geometry.FromSlice([]geometry.Collider{
		geometry.NewCollider(anchor, 2*p.HalfW, 2*p.HalfH),
	})
}

// scaleRate is how fast an area projectile stretches, in scale units per
// second of flight.
const scaleRate = 1 / 1.5

// ScaleCurve returns the Y-scale tween of an area projectile, keyed by
// elapsed flight time. It returns nil for kinds that do not stretch.
func ScaleCurve(p Profile) *gween.Tween {
	if !p.Area || p.Lifespan <= 0 {
		return nil
	}
	end := 1 + p.Lifespan*scaleRate
	return gween.New(1, float32(end), float32(p.Lifespan), ease.Linear)
}

// ScaleAt evaluates curve for a projectile with the given remaining life.
// A nil curve means a constant scale of 1.
func ScaleAt(curve *gween.Tween, p Profile, remaining float64) float64 {
	if curve == nil {
		return 1
	}
	elapsed := min(max(p.Lifespan-remaining, 0), p.Lifespan)
	v, _ := curve.Set(float32(elapsed))
	return float64(v)
}
