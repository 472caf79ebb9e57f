package systems

import (
	"slices"

	cfg "github.com/automoto/plasmaship/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls handles the viewer commands. Level commands are ignored
// while paused; settings commands always work.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if !GetOrCreatePause(ecs).IsPaused {
		if input.JustPressed(cfg.ActionCloseDoors) && CloseDoors(ecs.World) > 0 {
			PlaySFX(ecs, cfg.SoundDoor)
		}
		if input.JustPressed(cfg.ActionReset) {
			ResetLevel(ecs)
		}
		if input.JustPressed(cfg.ActionNextLevel) {
			NextLevel(ecs)
		}
	}

	settings := GetOrCreateSettings(ecs)
	changed := false
	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.ShowColliders = !settings.ShowColliders
		cfg.Debug.ShowColliders = settings.ShowColliders
		changed = true
	}
	if input.JustPressed(cfg.ActionMute) {
		settings.Muted = ToggleMute(ecs)
		changed = true
	}
	if input.JustPressed(cfg.ActionVolume) {
		settings.SFXVolume = nextVolumeStep(settings.SFXVolume)
		SetSFXVolume(ecs, settings.SFXVolume)
		changed = true
	}
	if changed {
		SaveCurrentSettings(ecs)
	}
}

// nextVolumeStep returns the configured volume step after v, wrapping to
// the first one.
func nextVolumeStep(v float64) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return v
	}
	i := slices.IndexFunc(steps, func(s float64) bool { return s > v+1e-9 })
	if i < 0 {
		return steps[0]
	}
	return steps[i]
}
