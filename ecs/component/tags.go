package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type TileTag struct{}

var TileTagComponent = NewComponent[TileTag]()
