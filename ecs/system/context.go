package system

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// SpawnFunc builds a prefab by name with its top-left corner at (x, y).
type SpawnFunc func(name string, x, y float64) (ecs.Entity, error)

// Context is the state shared by every core operation for one session: the
// world, the collision groups, the score sink and the playfield constants.
type Context struct {
	World   *ecs.World
	Tiles   Group
	Enemies Group
	Items   Group
	Players Group
	Goals   Group

	Sink   Sink
	Logger *log.Logger
	Spawn  SpawnFunc

	Gravity float64
	Width   float64
	Height  float64
}

// NewContext wires the default groups over w. The tile group owns a physics
// space and must be released with Close.
func NewContext(w *ecs.World, sink Sink, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if sink == nil {
		sink = discardSink{}
	}
	return &Context{
		World:   w,
		Tiles:   NewTileGroup(w),
		Enemies: NewMemberGroup(w, GroupEnemiesMask),
		Items:   NewMemberGroup(w, GroupItemsMask),
		Players: NewMemberGroup(w, GroupPlayersMask),
		Goals:   NewMemberGroup(w, GroupGoalsMask),
		Sink:    sink,
		Logger:  logger,
		Gravity: common.Gravity,
		Width:   common.BaseWidth,
		Height:  common.BaseHeight,
	}
}

// Groups returns every group in a fixed order.
func (c *Context) Groups() []Group {
	return []Group{c.Tiles, c.Enemies, c.Items, c.Players, c.Goals}
}

var groupBits = [...]component.GroupMask{GroupTilesMask, GroupEnemiesMask, GroupItemsMask, GroupPlayersMask, GroupGoalsMask}

// Index adds e to every group its membership names.
func (c *Context) Index(e ecs.Entity) {
	m, ok := ecs.Get(c.World, e, component.MembershipComponent.Kind())
	if !ok {
		return
	}
	for i, g := range c.Groups() {
		if g != nil && m.In(groupBits[i]) {
			g.Add(e)
		}
	}
}

// Kill removes e from every group and destroys it. Removal is immediate.
func (c *Context) Kill(e ecs.Entity) {
	if c == nil || !ecs.IsAlive(c.World, e) {
		return
	}
	for _, g := range c.Groups() {
		if g != nil {
			g.Remove(e)
		}
	}
	ecs.DestroyEntity(c.World, e)
}

// Close releases resources held by the groups.
func (c *Context) Close() {
	if c == nil {
		return
	}
	for _, g := range c.Groups() {
		if closer, ok := g.(io.Closer); ok {
			_ = closer.Close()
		}
	}
}
