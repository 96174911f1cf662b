package component

// Invulnerable marks an entity as temporarily immune to damage. Frames counts
// down each tick and the component is removed at zero. Star marks the
// star-power variant that also defeats enemies on contact.
type Invulnerable struct {
	Frames int
	Star   bool
}

var InvulnerableComponent = NewComponent[Invulnerable]()
