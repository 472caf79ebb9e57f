package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/fonts"
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/automoto/plasmaship/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hitbox the collision systems see: static walls
// and doors, canon tiles, the derived bullet boxes and the craft.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowColliders {
		return
	}
	v := currentView(ecs, screen)

	outline := func(cs *geometry.Colliders, c color.Color) {
		for _, p := range cs.Polygons() {
			v.strokePolygon(screen, p, c)
		}
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		outline(components.Colliders.Get(e), cfg.Debug.WallColor)
	})
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		outline(components.Colliders.Get(e), cfg.Debug.DoorColor)
	})
	tags.Canon.Each(ecs.World, func(e *donburi.Entry) {
		outline(components.Colliders.Get(e), cfg.Debug.CanonColor)
	})

	bullets := 0
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		t := components.Transform.Get(e)
		hitbox := projectile.Colliders(cfg.Bullets[b.Kind], t.X, t.Y)
		outline(&hitbox, bulletColor(b.Kind))
		bullets++
	})

	for _, p := range CraftColliders(ecs.World) {
		v.strokePolygon(screen, p, cfg.Debug.ShipColor)
	}

	msg := fmt.Sprintf("TPS %.0f  bullets %d", ebiten.ActualTPS(), bullets)
	text.Draw(screen, msg, fonts.HUD.Get(), 8, screen.Bounds().Dy()-8, cfg.White)
}
