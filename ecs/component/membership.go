package component

// GroupMask is a bit set of collision groups.
type GroupMask uint8

const (
	GroupTiles GroupMask = 1 << iota
	GroupEnemies
	GroupItems
	GroupPlayers
	GroupGoals
)

var groupNames = map[string]GroupMask{
	"tiles":   GroupTiles,
	"enemies": GroupEnemies,
	"items":   GroupItems,
	"players": GroupPlayers,
	"goals":   GroupGoals,
}

// ParseGroup maps a prefab group name to its bit.
func ParseGroup(name string) (GroupMask, bool) {
	g, ok := groupNames[name]
	return g, ok
}

type Membership struct {
	Groups GroupMask
}

func (m *Membership) In(g GroupMask) bool {
	return m != nil && m.Groups&g != 0
}

var MembershipComponent = NewComponent[Membership]()
