package component

// Coin covers both the static collectible and the bonus-block coin. A rising
// coin moves Step units per tick up to ApexY, then back down to StartY where
// it disappears.
type Coin struct {
	Score   int
	Value   int
	Step    float64
	StartY  float64
	ApexY   float64
	Falling bool
}

var CoinComponent = NewComponent[Coin]()
