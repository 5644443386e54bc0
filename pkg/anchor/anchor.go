package anchor

import (
	apperrors "github.com/menta2k/aspect-normalizer/pkg/errors"
)

// Anchor is one of the nine canonical crop focal points
type Anchor int

const (
	TopLeft Anchor = iota
	Left
	BottomLeft
	Bottom
	BottomRight
	Right
	TopRight
	Top
	Center
)

type entry struct {
	name string
	x, y float64
}

var table = [...]entry{
	TopLeft:     {"top_left", 0.0, 0.0},
	Left:        {"left", 0.0, 0.5},
	BottomLeft:  {"bottom_left", 0.0, 1.0},
	Bottom:      {"bottom", 0.5, 1.0},
	BottomRight: {"bottom_right", 1.0, 1.0},
	Right:       {"right", 1.0, 0.5},
	TopRight:    {"top_right", 1.0, 0.0},
	Top:         {"top", 0.5, 0.0},
	Center:      {"center", 0.5, 0.5},
}

// All returns every anchor in table order
func All() []Anchor {
	out := make([]Anchor, len(table))
	for i := range table {
		out[i] = Anchor(i)
	}
	return out
}

// Names returns the names of all anchors in table order
func Names() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}

// Parse looks an anchor up by name. Unknown names yield Center together with
// an InvalidAnchorWarning; callers decide whether to carry on.
func Parse(name string) (Anchor, error) {
	for i, e := range table {
		if e.name == name {
			return Anchor(i), nil
		}
	}
	return Center, apperrors.NewInvalidAnchorWarning(name, Names())
}

// Valid reports whether a is inside the table
func (a Anchor) Valid() bool {
	return a >= 0 && int(a) < len(table)
}

// String returns the canonical name
func (a Anchor) String() string {
	if !a.Valid() {
		return "invalid"
	}
	return table[a].name
}

// Point returns the normalized (x, y) focal point in [0,1]x[0,1]
func (a Anchor) Point() (float64, float64) {
	if !a.Valid() {
		return table[Center].x, table[Center].y
	}
	return table[a].x, table[a].y
}
