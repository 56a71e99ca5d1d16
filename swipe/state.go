package swipe

// Point is a single contact position in page coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Classification records whether the current gesture is a horizontal swipe
// or a vertical scroll. It is decided once per gesture and never reverts.
type Classification int

const (
	Unclassified Classification = iota
	Swiping
	Scrolling
)

func (c Classification) String() string {
	switch c {
	case Swiping:
		return "swiping"
	case Scrolling:
		return "scrolling"
	default:
		return "unclassified"
	}
}

func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// GestureState is the per-surface tracking state. Base is the settled
// horizontal offset of the surface and survives across gestures.
type GestureState struct {
	ActiveFingers int            `json:"activeFingers"`
	StartX        float64        `json:"startX"`
	StartY        float64        `json:"startY"`
	CurrentX      float64        `json:"currentX"`
	CurrentY      float64        `json:"currentY"`
	DeltaX        float64        `json:"deltaX"`
	Base          float64        `json:"base"`
	BaseSet       bool           `json:"baseSet"`
	Class         Classification `json:"class"`
}

// IsScrolling returns the scroll classification and whether it has been decided yet
func (s GestureState) IsScrolling() (scrolling bool, determined bool) {
	return s.Class == Scrolling, s.Class != Unclassified
}
