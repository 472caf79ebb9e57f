package systems

import (
	"testing"

	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns an empty world. Config changes made by the test are
// undone when it ends.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Reset)
	return ecs.NewECS(donburi.NewWorld())
}

type eachable interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

func countTagged(world donburi.World, tag eachable) int {
	n := 0
	tag.Each(world, func(*donburi.Entry) { n++ })
	return n
}

func bulletCount(world donburi.World) int {
	return countTagged(world, tags.Bullet)
}

// recorder is a SoundQueue that keeps everything it is given.
type recorder struct {
	sounds []cfg.SoundID
}

func (r *recorder) Queue(id cfg.SoundID) {
	r.sounds = append(r.sounds, id)
}

func freshResource() *components.ResourceData {
	res := components.NewResource()
	return &res
}
