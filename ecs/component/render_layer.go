package component

// RenderLayer orders drawing; lower indices draw first. Ties fall back to
// entity creation order.
type RenderLayer struct {
	Index int
}

const (
	LayerTiles  = 0
	LayerItems  = 10
	LayerActors = 20
	LayerPlayer = 30
	LayerPopups = 40
)

var RenderLayerComponent = NewComponent[RenderLayer]()
