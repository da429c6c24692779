package round

import (
	"github.com/vovakirdan/lanejump/internal/core"
	"github.com/vovakirdan/lanejump/internal/road"
)

// Actor is the part of the player the machine is allowed to drive directly.
type Actor interface {
	Reset()
	SetInputActive(active bool)
}

// Block is a spawned road block.
type Block interface {
	Place(pos core.Vec3)
}

// BlockFactory instantiates blocks for road tiles. Spawn returns false for
// kinds it does not render (gaps).
type BlockFactory interface {
	Spawn(kind road.TileKind) (Block, bool)
	Clear()
}

// Menu is the pre-round menu.
type Menu interface {
	SetVisible(visible bool)
}

// Label shows the step counter.
type Label interface {
	SetText(text string)
}
