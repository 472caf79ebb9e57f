package systems

import (
	"fmt"

	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLine      = 14
)

// DrawHUD renders the life bar and the shared counters in the top-left
// corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Resource.First(ecs.World)
	if !ok {
		return
	}
	res := components.Resource.Get(entry)

	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		cfg.Grey, false)

	ratio := 0.0
	if cfg.Ship.StartingLife > 0 {
		ratio = res.Life / cfg.Ship.StartingLife
	}
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth*ratio), float32(hudBarHeight),
		cfg.Green, false)

	face := fonts.HUD.Get()
	y := hudMargin + hudBarHeight + hudLine
	lines := []string{
		fmt.Sprintf("hits %d  life %.0f", res.BulletHits, res.Life),
		fmt.Sprintf("x force %+.2f", res.XForce),
		levelLabel(ecs),
	}
	if GetOrCreateAudio(ecs).Muted {
		lines = append(lines, "muted")
	}
	for _, line := range lines {
		text.Draw(screen, line, face, hudMargin, y, cfg.White)
		y += hudLine
	}
}

func levelLabel(ecs *ecs.ECS) string {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return ""
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return ""
	}
	return fmt.Sprintf("level %d/%d %s", level.LevelIndex+1, len(level.Levels), level.CurrentLevel.Grid.Name)
}
