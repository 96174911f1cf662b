package component

// ReloadRequest is a marker entity created when the HUD's game-over countdown
// finishes. The outer game loop consumes it and rebuilds the level.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
