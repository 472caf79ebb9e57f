package config

import (
	"fmt"
	"os"

	"github.com/automoto/plasmaship/shared/projectile"
	"gopkg.in/yaml.v3"
)

// Tuning is an optional YAML override file. Every field is optional; only
// the values present in the file replace the built-in ones.
type Tuning struct {
	Sim       *SimTuning               `yaml:"sim"`
	Collision *CollisionTuning         `yaml:"collision"`
	Ship      *ShipTuning              `yaml:"ship"`
	Bullets   map[string]ProfileTuning `yaml:"bullets"` // keyed by kind name
	Canon     *CanonTuning             `yaml:"canon"`
	Door      *DoorTuning              `yaml:"door"`
	Audio     *AudioTuning             `yaml:"audio"`
	Debug     *DebugTuning             `yaml:"debug"`
}

type SimTuning struct {
	TPS *int `yaml:"tps"`
}

type CollisionTuning struct {
	BroadPhaseMargin *float64 `yaml:"broadPhaseMargin"`
	IndexCellSize    *int     `yaml:"indexCellSize"`
}

type ShipTuning struct {
	StartingLife *float64 `yaml:"startingLife"`
	BulletDamage *float64 `yaml:"bulletDamage"`
	AirForceRate *float64 `yaml:"airForceRate"`
	MoveSpeed    *float64 `yaml:"moveSpeed"`
}

type ProfileTuning struct {
	Speed    *float64 `yaml:"speed"`
	Lifespan *float64 `yaml:"lifespan"`
	HalfW    *float64 `yaml:"halfW"`
	HalfH    *float64 `yaml:"halfH"`
}

type CanonTuning struct {
	FireInterval map[string]float64 `yaml:"fireInterval"` // keyed by kind name
	FirstShot    *float64           `yaml:"firstShot"`
}

type DoorTuning struct {
	ToggleInterval *float64 `yaml:"toggleInterval"`
}

type AudioTuning struct {
	AirCooldown *float64 `yaml:"airCooldown"`
	SFXVolume   *float64 `yaml:"sfxVolume"`
}

type DebugTuning struct {
	ShowColliders *bool `yaml:"showColliders"`
}

// ParseTuning decodes and validates a tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &t, nil
}

// LoadTuning reads a tuning file and applies it to the global config.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply()
	return nil
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	if t.Sim != nil && t.Sim.TPS != nil && *t.Sim.TPS <= 0 {
		return fmt.Errorf("sim.tps must be positive, got %d", *t.Sim.TPS)
	}
	if t.Collision != nil {
		if m := t.Collision.BroadPhaseMargin; m != nil && *m < 0 {
			return fmt.Errorf("collision.broadPhaseMargin cannot be negative")
		}
		if c := t.Collision.IndexCellSize; c != nil && *c <= 0 {
			return fmt.Errorf("collision.indexCellSize must be positive")
		}
	}
	for name, p := range t.Bullets {
		if _, err := projectile.ParseKind(name); err != nil {
			return fmt.Errorf("bullets: %w", err)
		}
		for field, v := range map[string]*float64{"speed": p.Speed, "lifespan": p.Lifespan, "halfW": p.HalfW, "halfH": p.HalfH} {
			if v != nil && *v <= 0 {
				return fmt.Errorf("bullets.%s.%s must be positive", name, field)
			}
		}
	}
	if t.Canon != nil {
		for name, v := range t.Canon.FireInterval {
			if _, err := projectile.ParseKind(name); err != nil {
				return fmt.Errorf("canon.fireInterval: %w", err)
			}
			if v <= 0 {
				return fmt.Errorf("canon.fireInterval.%s must be positive", name)
			}
		}
	}
	if t.Door != nil && t.Door.ToggleInterval != nil && *t.Door.ToggleInterval <= 0 {
		return fmt.Errorf("door.toggleInterval must be positive")
	}
	if t.Audio != nil {
		if v := t.Audio.AirCooldown; v != nil && *v < 0 {
			return fmt.Errorf("audio.airCooldown cannot be negative")
		}
		if v := t.Audio.SFXVolume; v != nil && (*v < 0 || *v > 1) {
			return fmt.Errorf("audio.sfxVolume must be within [0, 1]")
		}
	}
	return nil
}

// Apply copies the present values onto the global config. Call Validate
// first; ParseTuning does.
func (t *Tuning) Apply() {
	if t.Sim != nil {
		set(&Sim.TPS, t.Sim.TPS)
	}
	if t.Collision != nil {
		set(&Collision.BroadPhaseMargin, t.Collision.BroadPhaseMargin)
		set(&Collision.IndexCellSize, t.Collision.IndexCellSize)
	}
	if t.Ship != nil {
		set(&Ship.StartingLife, t.Ship.StartingLife)
		set(&Ship.BulletDamage, t.Ship.BulletDamage)
		set(&Ship.AirForceRate, t.Ship.AirForceRate)
		set(&Ship.MoveSpeed, t.Ship.MoveSpeed)
	}
	for name, pt := range t.Bullets {
		kind, err := projectile.ParseKind(name)
		if err != nil {
			continue
		}
		p := Bullets[kind]
		set(&p.Speed, pt.Speed)
		set(&p.Lifespan, pt.Lifespan)
		set(&p.HalfW, pt.HalfW)
		set(&p.HalfH, pt.HalfH)
		Bullets[kind] = p
	}
	if t.Canon != nil {
		for name, v := range t.Canon.FireInterval {
			if kind, err := projectile.ParseKind(name); err == nil {
				Canon.FireInterval[kind] = v
			}
		}
		set(&Canon.FirstShot, t.Canon.FirstShot)
	}
	if t.Door != nil {
		set(&Door.ToggleInterval, t.Door.ToggleInterval)
	}
	if t.Audio != nil {
		set(&Audio.AirCooldown, t.Audio.AirCooldown)
		set(&Audio.DefaultSFXVol, t.Audio.SFXVolume)
	}
	if t.Debug != nil {
		set(&Debug.ShowColliders, t.Debug.ShowColliders)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
