package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/plasmaship/assets"
	"github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/fonts"
	"github.com/automoto/plasmaship/scenes"
	"github.com/automoto/plasmaship/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	assetsDir := flag.String("assets", "assets", "directory holding levels/ and audio/")
	levelIndex := flag.Int("level", 0, "index of the first level to show")
	tuningPath := flag.String("tuning", "", "optional YAML file overriding simulation constants")
	fontPath := flag.String("font", "", "optional TTF font for the HUD")
	debug := flag.Bool("debug", false, "outline every hitbox")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatal(err)
		}
	}
	if *fontPath != "" {
		if err := fonts.LoadFile(*fontPath); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	fsys := os.DirFS(*assetsDir)

	levels, err := assets.NewLevelLoader(fsys).LoadLevels("levels")
	if err != nil {
		log.Printf("Warning: Could not load levels, using the built-in room: %v", err)
		levels = []assets.Level{assets.Builtin()}
	}

	loader := assets.NewAudioLoader(audio.NewContext(config.Audio.SampleRate), fsys)
	loader.PreloadAll()
	systems.SetEffectPlayer(loader)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	if *debug {
		if saved == nil {
			saved = systems.DefaultSettings()
		}
		saved.ShowColliders = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("plasmaship")
	ebiten.SetTPS(config.Sim.TPS)

	game := &Game{scene: scenes.NewLevelScene(levels, *levelIndex, saved)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
