// Package doors holds the plasma door sprite tables. Only the displayed code
// changes; a door's hitbox is fixed at level load.
package doors

// NoTransition is returned for codes outside the door tables.
const NoTransition = 0

// Terminal codes.
const (
	ClosedLeft   = 144
	ClosedRight  = 154
	ClosedTop    = 134
	ClosedBottom = 164
	Empty        = 41
)

// Orientation groups door codes by the axis the band runs along.
type Orientation int

const (
	NotADoor Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

// pair is one two-phase animation. Index 0 and 3 are the outer pairs of a
// group, 1 and 2 the inner ones.
type pair struct {
	a, b  int
	close int
}

var horizontalPairs = [4]pair{
	{a: 114, b: 124, close: ClosedLeft},
	{a: 115, b: 125, close: Empty},
	{a: 116, b: 126, close: Empty},
	{a: 117, b: 127, close: ClosedRight},
}

var verticalPairs = [4]pair{
	{a: 135, b: 136, close: ClosedTop},
	{a: 145, b: 146, close: Empty},
	{a: 155, b: 156, close: Empty},
	{a: 165, b: 166, close: ClosedBottom},
}

type phaseEntry struct {
	next   int
	close  int
	orient Orientation
}

var (
	phases = map[int]phaseEntry{}
	closed = map[int]Orientation{
		ClosedLeft:   Horizontal,
		ClosedRight:  Horizontal,
		ClosedTop:    Vertical,
		ClosedBottom: Vertical,
	}
)

func init() {
	for _, p := range horizontalPairs {
		phases[p.a] = phaseEntry{next: p.b, close: p.close, orient: Horizontal}
		phases[p.b] = phaseEntry{next: p.a, close: p.close, orient: Horizontal}
	}
	for _, p := range verticalPairs {
		phases[p.a] = phaseEntry{next: p.b, close: p.close, orient: Vertical}
		phases[p.b] = phaseEntry{next: p.a, close: p.close, orient: Vertical}
	}
}

// IsTogglable reports whether code is one of the 16 animation phases or one
// of the 4 closed codes.
func IsTogglable(code int) bool {
	if IsPhase(code) {
		return true
	}
	_, ok := closed[code]
	return ok
}

// IsPhase reports whether code is an animation phase.
func IsPhase(code int) bool {
	_, ok := phases[code]
	return ok
}

// NextOpenPhase flips between the two phases of a pair.
func NextOpenPhase(code int) int {
	if e, ok := phases[code]; ok {
		return e.next
	}
	return NoTransition
}

// CloseTarget resolves an animation phase to the code shown once the door
// closes: outer pairs to their edge, inner pairs to Empty. Closed codes map
// to themselves.
func CloseTarget(code int) int {
	if e, ok := phases[code]; ok {
		return e.close
	}
	if _, ok := closed[code]; ok {
		return code
	}
	return NoTransition
}

// OrientationOf returns the group a togglable code belongs to.
func OrientationOf(code int) Orientation {
	if e, ok := phases[code]; ok {
		return e.orient
	}
	if o, ok := closed[code]; ok {
		return o
	}
	return NotADoor
}

// Codes returns every togglable code, phases first, in table order.
func Codes() []int {
	out := make([]int, 0, 20)
	for _, group := range [][4]pair{horizontalPairs, verticalPairs} {
		for _, p := range group {
			out = append(out, p.a, p.b)
		}
	}
	return append(out, ClosedLeft, ClosedRight, ClosedTop, ClosedBottom)
}
