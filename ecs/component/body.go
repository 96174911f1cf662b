package component

import "github.com/milk9111/koopa/common"

// Body is the kinematic state shared by every simulated entity: its
// bounding box, per-frame velocity and the symmetric vertical speed cap.
type Body struct {
	Rect common.Rect
	VX   float64
	VY   float64
	MaxV float64
}

var BodyComponent = NewComponent[Body]()
