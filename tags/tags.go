package tags

import "github.com/yohamta/donburi"

var (
	Ship   = donburi.NewTag().SetName("Ship")
	Wall   = donburi.NewTag().SetName("Wall")
	Door   = donburi.NewTag().SetName("Door")
	Canon  = donburi.NewTag().SetName("Canon")
	Bullet = donburi.NewTag().SetName("Bullet")
)
