package systems

import (
	"testing"

	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/doors"
	"github.com/automoto/plasmaship/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestNextVolumeStep(t *testing.T) {
	tests := []struct {
		from, want float64
	}{
		{0, 0.25},
		{0.25, 0.5},
		{0.6, 0.75},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nextVolumeStep(tt.from), "from %v", tt.from)
	}
}

func press(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[action] = true
}

func TestCloseDoorsAction(t *testing.T) {
	e := newTestECS(t)
	door := factory.CreateDoor(e, 114, 0, 0)

	press(e, cfg.ActionCloseDoors)
	UpdateControls(e)

	assert.Equal(t, doors.ClosedLeft, components.Door.Get(door).Sprite)
	assert.Equal(t, []cfg.SoundID{cfg.SoundDoor}, GetOrCreateAudio(e).PendingSFX)

	// Held, not pressed again
	UpdateControls(e)
	assert.Len(t, GetOrCreateAudio(e).PendingSFX, 1)
}

func TestLevelActionsIgnoredWhilePaused(t *testing.T) {
	e := newTestECS(t)
	door := factory.CreateDoor(e, 114, 0, 0)
	GetOrCreatePause(e).IsPaused = true

	press(e, cfg.ActionCloseDoors)
	UpdateControls(e)

	assert.Equal(t, components.DoorCycling, components.Door.Get(door).State)
}

func TestSettingsActions(t *testing.T) {
	store := withStore(t)
	e := newTestECS(t)

	press(e, cfg.ActionToggleDebug)
	UpdateControls(e)
	assert.True(t, GetOrCreateSettings(e).ShowColliders)
	assert.True(t, cfg.Debug.ShowColliders)

	press(e, cfg.ActionMute)
	UpdateControls(e)
	assert.True(t, GetOrCreateAudio(e).Muted)
	assert.True(t, GetOrCreateSettings(e).Muted)

	press(e, cfg.ActionVolume)
	UpdateControls(e)
	assert.Equal(t, 0.0, GetOrCreateAudio(e).SFXVolume, "full volume wraps to silent")

	assert.NotEmpty(t, store.items[cfg.Settings.ItemKey])
}
