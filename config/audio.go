package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit
	SoundAir
	SoundDoor
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	AirCooldown   float64 // minimum seconds between two air effects
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundHit:  "audio/sfx/hit.wav",
			SoundAir:  "audio/sfx/air.wav",
			SoundDoor: "audio/sfx/door.ogg",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.5,
			SoundAir: 0.6,
		},
	}
}
