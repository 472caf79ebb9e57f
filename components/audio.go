package components

import (
	cfg "github.com/automoto/plasmaship/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
}

// Queue records an effect to be played when the audio system next runs.
func (a *AudioData) Queue(id cfg.SoundID) {
	if id == cfg.SoundNone {
		return
	}
	a.PendingSFX = append(a.PendingSFX, id)
}

var Audio = donburi.NewComponentType[AudioData]()
