package config

import (
	"image/color"

	"github.com/automoto/plasmaship/shared/projectile"
)

// SimConfig controls the fixed time step
type SimConfig struct {
	TPS int // ticks per second
}

// DT returns the simulated seconds covered by one tick.
func (s SimConfig) DT() float64 {
	if s.TPS <= 0 {
		return 0
	}
	return 1 / float64(s.TPS)
}

// CollisionConfig contains collision engine configuration values
type CollisionConfig struct {
	TileSize         float64
	BroadPhaseMargin float64 // world units added around static bounds before the overlap test
	IndexCellSize    int     // spatial hash cell, one tile by default
}

// ShipConfig describes the craft hitbox and its starting counters
type ShipConfig struct {
	// Hull rectangle, centred on the ship position
	HullWidth  float64
	HullHeight float64
	// Nose triangle on top of the hull
	NoseWidth  float64
	NoseHeight float64

	StartingLife float64
	StartingFuel float64
	BulletDamage float64
	AirForceRate float64 // x force per second of air contact
	MoveSpeed    float64 // viewer only, world units per second
}

// CanonConfig contains spawner timing
type CanonConfig struct {
	FireInterval map[projectile.Kind]float64 // seconds between shots
	FirstShot    float64                     // delay before a freshly loaded canon fires
}

// DoorConfig contains plasma door timing
type DoorConfig struct {
	ToggleInterval float64 // seconds between animation phases
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool
	WallColor     color.RGBA
	DoorColor     color.RGBA
	CanonColor    color.RGBA
	BulletColor   color.RGBA
	AirColor      color.RGBA
	ShipColor     color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Sim SimConfig
var Collision CollisionConfig
var Ship ShipConfig
var Bullets map[projectile.Kind]projectile.Profile
var Canon CanonConfig
var Door DoorConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Background = color.RGBA{R: 8, G: 8, B: 24, A: 255}
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in value. Tests call it to undo
// LoadTuning.
func Reset() {
	// 22 x 18 tiles
	C = &Config{
		Width:  704,
		Height: 576,
	}

	Sim = SimConfig{TPS: 60}

	Collision = CollisionConfig{
		TileSize:         32,
		BroadPhaseMargin: 32,
		IndexCellSize:    32,
	}

	Ship = ShipConfig{
		HullWidth:    24,
		HullHeight:   16,
		NoseWidth:    12,
		NoseHeight:   8,
		StartingLife: 100,
		StartingFuel: 100,
		BulletDamage: 10,
		AirForceRate: 3,
		MoveSpeed:    96,
	}

	Bullets = projectile.DefaultProfiles()

	Canon = CanonConfig{
		FireInterval: map[projectile.Kind]float64{
			projectile.Bullet: 1.5,
			projectile.Plasma: 2.5,
			projectile.Air:    0.5,
		},
		FirstShot: 0.5,
	}

	Door = DoorConfig{ToggleInterval: 0.25}

	Debug = DebugConfig{
		ShowColliders: false,
		WallColor:     Grey,
		DoorColor:     Magenta,
		CanonColor:    Orange,
		BulletColor:   Red,
		AirColor:      LightBlue,
		ShipColor:     Green,
	}

	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		AirCooldown:   0.2,
	}
}
