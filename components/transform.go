package components

import "github.com/yohamta/donburi"

// TransformData is a world position (y up) plus the visual scale.
type TransformData struct {
	X, Y   float64
	ScaleX float64
	ScaleY float64
}

var Transform = donburi.NewComponentType[TransformData]()
