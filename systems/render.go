package systems

import (
	"image/color"

	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/doors"
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/automoto/plasmaship/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// view maps y-up world coordinates onto the y-down screen. The level is
// drawn unscrolled from the top-left corner.
type view struct {
	height float64
}

func currentView(ecs *ecs.ECS, screen *ebiten.Image) view {
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry); level.CurrentLevel != nil {
			_, h := level.CurrentLevel.Grid.PixelSize()
			return view{height: h}
		}
	}
	return view{height: float64(screen.Bounds().Dy())}
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x), float32(v.height - y)
}

func (v view) fillBounds(screen *ebiten.Image, cs *geometry.Colliders, c color.Color) {
	bb := cs.Bounds()
	x, y := v.point(bb.L, bb.T)
	vector.FillRect(screen, x, y, float32(bb.R-bb.L), float32(bb.T-bb.B), c, false)
}

func (v view) strokePolygon(screen *ebiten.Image, p geometry.Polygon, c color.Color) {
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		x0, y0 := v.point(a.X, a.Y)
		x1, y1 := v.point(b.X, b.Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
	}
}

// DrawLevel renders the background, or flat walls when the level has no
// picture, then doors, canons, bullets and the ship.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	v := currentView(ecs, screen)

	drewBackground := false
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		if level.CurrentLevel != nil && level.CurrentLevel.Background != nil {
			drawOp.GeoM.Reset()
			screen.DrawImage(level.CurrentLevel.Background, drawOp)
			drewBackground = true
		}
	}
	if !drewBackground {
		tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
			v.fillBounds(screen, components.Colliders.Get(e), cfg.Grey)
		})
	}

	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		if d.Sprite == doors.Empty {
			return
		}
		c := cfg.Debug.DoorColor
		// Cycling doors flicker between their two phases
		if d.State == components.DoorCycling && d.Sprite != d.InitialSprite {
			c.A = 96
		}
		v.fillBounds(screen, components.Colliders.Get(e), c)
	})

	tags.Canon.Each(ecs.World, func(e *donburi.Entry) {
		v.fillBounds(screen, components.Colliders.Get(e), cfg.Debug.CanonColor)
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		t := components.Transform.Get(e)
		p := cfg.Bullets[b.Kind]
		halfW, halfH := p.HalfW*t.ScaleX, p.HalfH*t.ScaleY
		x, y := v.point(t.X-halfW, t.Y+halfH)
		vector.FillRect(screen, x, y, float32(2*halfW), float32(2*halfH), bulletColor(b.Kind), false)
	})

	for _, p := range CraftColliders(ecs.World) {
		v.strokePolygon(screen, p, cfg.Debug.ShipColor)
	}
}

// bulletColor picks the overlay color of a projectile kind.
func bulletColor(kind projectile.Kind) color.RGBA {
	if cfg.Bullets[kind].Area {
		return cfg.Debug.AirColor
	}
	return cfg.Debug.BulletColor
}
