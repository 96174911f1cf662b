package component

// PointsPopup is the floating score text spawned on kills and pickups.
type PointsPopup struct {
	X, Y   float64
	Amount int
	Rise   float64
}

var PointsPopupComponent = NewComponent[PointsPopup]()
