package systems

import (
	"testing"

	cfg "github.com/automoto/plasmaship/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestWithPauseCheck(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreatePause(e).IsPaused = true
	system(e)

	assert.Equal(t, 1, calls)
}

func TestUpdatePauseToggles(t *testing.T) {
	e := newTestECS(t)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	// Still held
	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	press(e, cfg.ActionNone)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}
