package systems

import (
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/yohamta/donburi/ecs"
)

// EffectPlayer plays one sound effect, fire-and-forget.
type EffectPlayer interface {
	Play(id cfg.SoundID, volume float64)
}

// Global effect output, shared by every scene. Nil means silent.
var effectPlayer EffectPlayer

// SetEffectPlayer installs the output used by UpdateAudio.
func SetEffectPlayer(p EffectPlayer) {
	effectPlayer = p
}

// UpdateAudio plays and clears the effects queued since the last tick.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	for _, id := range audioData.PendingSFX {
		playSFX(audioData, id)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(a *components.AudioData, id cfg.SoundID) {
	if effectPlayer == nil || a.Muted || a.SFXVolume <= 0 {
		return
	}
	volume := a.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	effectPlayer.Play(id, min(volume, 1))
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	GetOrCreateAudio(e).Queue(sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	GetOrCreateAudio(e).SFXVolume = min(max(volume, 0), 1)
}

// ToggleMute flips the mute flag and returns the new value.
func ToggleMute(e *ecs.ECS) bool {
	a := GetOrCreateAudio(e)
	a.Muted = !a.Muted
	return a.Muted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  cfg.Audio.DefaultSFXVol,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
