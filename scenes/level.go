package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/plasmaship/assets"
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/systems"
	"github.com/automoto/plasmaship/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs the collision core over a set of levels, one at a time.
type LevelScene struct {
	ecs        *ecs.ECS
	levels     []assets.Level
	levelIndex int
	settings   *components.SettingsData
	once       sync.Once
}

// NewLevelScene creates a scene starting at levelIndex. saved may be nil.
func NewLevelScene(levels []assets.Level, levelIndex int, saved *components.SettingsData) *LevelScene {
	return &LevelScene{levels: levels, levelIndex: levelIndex, settings: saved}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

// ECS exposes the scene's world, configuring it on first use.
func (ls *LevelScene) ECS() *ecs.ECS {
	ls.once.Do(ls.configure)
	return ls.ecs
}

func (ls *LevelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateControls)

	// One simulation tick, in order
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateShip))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDoors))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCanons))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBullets))

	// Drains the effects raised by the tick
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ls.ecs = ecs

	systems.GetOrCreateSettings(ecs)
	systems.ApplySavedSettings(ecs, ls.settings)

	factory.CreateLevel(ecs, ls.levels, ls.levelIndex)
	systems.LoadLevel(ecs, ls.levelIndex)
}
