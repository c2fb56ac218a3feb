package simulation

// ActionKind tells what a key press does.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionSelectColor
	ActionAdjustMultiplier
	ActionTogglePause
)

type Action struct {
	Kind       ActionKind
	Color      Color
	Multiplier MultiplierKind
	Delta      int
}

var colorKeys = map[rune]Color{
	'w': ColorWhite,
	'r': ColorRed,
	'y': ColorYellow,
	'g': ColorGreen,
	'c': ColorCyan,
	'b': ColorBlue,
	'm': ColorMagenta,
	'n': ColorNone,
}

var multiplierKeys = map[rune]MultiplierKind{
	'k': Cohesion,
	'a': Alignment,
	's': Separation,
}

// ActionForKey maps a typed character to an action.
// Color keys work in either case. For k, a and s the uppercase letter
// increments the multiplier and the lowercase one decrements it.
func ActionForKey(r rune) Action {
	lower := r
	if r >= 'A' && r <= 'Z' {
		lower = r + ('a' - 'A')
	}
	if c, ok := colorKeys[lower]; ok {
		return Action{Kind: ActionSelectColor, Color: c}
	}
	if m, ok := multiplierKeys[lower]; ok {
		delta := -1
		if lower != r {
			delta = 1
		}
		return Action{Kind: ActionAdjustMultiplier, Multiplier: m, Delta: delta}
	}
	if r == ' ' {
		return Action{Kind: ActionTogglePause}
	}
	return Action{}
}
