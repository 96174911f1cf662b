package component

// GravityScale scales the session gravity for one body.
// 1.0 = normal gravity, 0.0 = no gravity. Bodies without it use 1.0.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
