package component

// ActorKind is the closed set of simulated entity kinds. Per-kind behaviour
// is looked up from a table keyed by this value.
type ActorKind uint8

const (
	KindNone ActorKind = iota
	KindPlayer
	KindKoopa
	KindJumpingKoopa
	KindGoomba
	KindMushroomGrow
	KindMushroomLife
	KindMushroomPoison
	KindFireFlower
	KindStar
	KindCoinStatic
	KindCoinRising
	kindCount
)

var kindNames = [...]string{
	KindNone:           "none",
	KindPlayer:         "player",
	KindKoopa:          "koopa",
	KindJumpingKoopa:   "jumping_koopa",
	KindGoomba:         "goomba",
	KindMushroomGrow:   "mushroom_grow",
	KindMushroomLife:   "mushroom_life",
	KindMushroomPoison: "mushroom_poison",
	KindFireFlower:     "fire_flower",
	KindStar:           "star",
	KindCoinStatic:     "coin_static",
	KindCoinRising:     "coin_rising",
}

func (k ActorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseActorKind maps a prefab name to its kind.
func ParseActorKind(name string) (ActorKind, bool) {
	for i, n := range kindNames {
		if n == name && ActorKind(i) != KindNone {
			return ActorKind(i), true
		}
	}
	return KindNone, false
}

// ResolverMode picks the tile resolution routine a kind uses.
type ResolverMode uint8

const (
	// ResolveAll runs left, right then bottom probes.
	ResolveAll ResolverMode = iota
	// ResolveFloor only stops downward motion.
	ResolveFloor
	// ResolveNone skips tile resolution entirely.
	ResolveNone
	// ResolveCustom means the kind's update runs its own resolver.
	ResolveCustom
)

// Capabilities are the static, data-only traits of a kind.
type Capabilities struct {
	Sides      SideMask
	Resolver   ResolverMode
	FlipOnTurn bool
	Enemy      bool
}

// HasCeilingProbe reports whether the kind carries a top region.
func (c Capabilities) HasCeilingProbe() bool {
	return c.Sides&SideTop != 0
}

var capabilities = [kindCount]Capabilities{
	KindPlayer:         {Sides: SidesAll, Resolver: ResolveCustom},
	KindKoopa:          {Sides: SidesAll, Resolver: ResolveAll, Enemy: true},
	KindJumpingKoopa:   {Sides: SidesAll, Resolver: ResolveAll, Enemy: true},
	KindGoomba:         {Sides: SidesAll, Resolver: ResolveAll, Enemy: true},
	KindMushroomGrow:   {Sides: SidesWalls | SideBottom, Resolver: ResolveAll, FlipOnTurn: true},
	KindMushroomLife:   {Sides: SidesWalls | SideBottom, Resolver: ResolveAll, FlipOnTurn: true},
	KindMushroomPoison: {Sides: SidesWalls | SideBottom, Resolver: ResolveAll, FlipOnTurn: true},
	KindFireFlower:     {Sides: SidesFloor, Resolver: ResolveFloor},
	KindStar:           {Sides: SidesAll, Resolver: ResolveAll, FlipOnTurn: true},
	KindCoinStatic:     {Sides: SidesNone, Resolver: ResolveNone},
	KindCoinRising:     {Sides: SidesNone, Resolver: ResolveNone},
}

func (k ActorKind) Capabilities() Capabilities {
	if k >= kindCount {
		return Capabilities{}
	}
	return capabilities[k]
}

// Actor tags an entity with its kind.
type Actor struct {
	Kind ActorKind
}

var ActorComponent = NewComponent[Actor]()
