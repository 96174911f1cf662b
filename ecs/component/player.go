package component

type PlayerSize uint8

const (
	PlayerSmall PlayerSize = iota
	PlayerBig
)

func (s PlayerSize) String() string {
	if s == PlayerBig {
		return "big"
	}
	return "small"
}

type Player struct {
	Size PlayerSize
	Fire bool
	// Died is set by fatal hits; respawn is handled outside the simulation.
	Died bool
	// Finished is set on reaching the goal and freezes the player.
	Finished bool

	MoveSpeed   float64
	JumpSpeed   float64
	BounceSpeed float64
	SmallHeight float64
	BigHeight   float64
	HurtFrames  int
	StarFrames  int
}

var PlayerComponent = NewComponent[Player]()
