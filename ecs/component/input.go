package component

// Input stores the intent for the current frame. It is written by the host
// (keyboard, replay, tests) before the simulation ticks.
type Input struct {
	MoveX float64
	Jump  bool
}

var InputComponent = NewComponent[Input]()
