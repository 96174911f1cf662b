package component

// HUD is the heads-up display state: score, remaining time, world name,
// coins and lives, plus the game-over and time-to-score countdowns.
type HUD struct {
	Score int
	Time  int
	World string
	Coins int
	Lives int

	PlayerState string

	Frame          int
	Counting       bool
	GameOver       int
	LoadLevel      bool
	StartTime      int
	StartLives     int
	GameOverFrames int
	CountBonus     int
}

var HUDComponent = NewComponent[HUD]()
