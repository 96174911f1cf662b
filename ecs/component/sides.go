package component

import (
	"fmt"

	"github.com/milk9111/koopa/common"
)

type Side uint8

const (
	SideTop Side = 1 << iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return fmt.Sprintf("side(%d)", uint8(s))
}

// SideMask selects which probe regions an entity kind carries.
type SideMask = Side

const (
	SidesNone  SideMask = 0
	SidesWalls          = SideLeft | SideRight
	SidesFloor          = SideBottom
	SidesAll            = SideTop | SideBottom | SideLeft | SideRight
)

// Sides holds the thin probe rectangles around a body. They are rebuilt from
// the body rect before every collision query and are only meaningful for
// the frame they were built in.
type Sides struct {
	Mask   SideMask
	Top    common.Rect
	Bottom common.Rect
	Left   common.Rect
	Right  common.Rect
}

func (s *Sides) Has(side Side) bool {
	return s != nil && s.Mask&side != 0
}

// HasCeilingProbe reports whether a top region is built for this entity.
func (s *Sides) HasCeilingProbe() bool {
	return s.Has(SideTop)
}

// Region returns the probe for side. Asking for a side the entity was not
// built with is a programming error.
func (s *Sides) Region(side Side) common.Rect {
	if !s.Has(side) {
		panic(fmt.Sprintf("sides: %s region requested but not configured", side))
	}
	switch side {
	case SideTop:
		return s.Top
	case SideBottom:
		return s.Bottom
	case SideLeft:
		return s.Left
	case SideRight:
		return s.Right
	}
	panic(fmt.Sprintf("sides: invalid side %d", uint8(side)))
}

var SidesComponent = NewComponent[Sides]()
