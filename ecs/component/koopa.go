package component

type KoopaPhase uint8

const (
	KoopaWalking KoopaPhase = iota
	KoopaShelled
	KoopaReviving
	KoopaShellSliding
)

func (p KoopaPhase) String() string {
	switch p {
	case KoopaWalking:
		return "walking"
	case KoopaShelled:
		return "shelled"
	case KoopaReviving:
		return "reviving"
	case KoopaShellSliding:
		return "sliding"
	}
	return "unknown"
}

// InShell reports whether the koopa is hiding in its shell, moving or not.
func (p KoopaPhase) InShell() bool {
	return p != KoopaWalking
}

// Koopa is the walk/shell/revive state machine.
//
// ShellTicks counts frames spent at rest in the shell; RevivalTime is the
// tick that shows the revival cue and SmertTime the tick it walks again.
// SlideTicks counts frames of a sliding shell, which is removed after
// SlideFrames when that is positive.
type Koopa struct {
	Phase       KoopaPhase
	ShellTicks  int
	SlideTicks  int
	RevivalTime int
	SmertTime   int
	SlideFrames int
	WalkSpeed   float64
	LaunchSpeed float64
	Score       int
}

var KoopaComponent = NewComponent[Koopa]()
