package aliens

import (
	"fmt"

	"github.com/arcadelab/aliens/internal/core"
)

// Kind classifies a board occupant and selects its movement policy.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlayerProjectile
	KindEnemy
	KindEnemyProjectile
	KindObstacle // reserved, never spawned
	KindBorder
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlayerProjectile:
		return "player-projectile"
	case KindEnemy:
		return "enemy"
	case KindEnemyProjectile:
		return "enemy-projectile"
	case KindObstacle:
		return "obstacle"
	case KindBorder:
		return "border"
	default:
		return "unknown"
	}
}

// IsProjectile reports whether entities of this kind move in a straight
// line every step and are silently destroyed at the playable edge.
func (k Kind) IsProjectile() bool {
	return k == KindPlayerProjectile || k == KindEnemyProjectile
}

// Descriptor is the template an entity is built from. Entities are
// always fresh values constructed from a descriptor, never copies of a
// live entity, so no two occupants can alias state.
type Descriptor struct {
	Kind  Kind
	Glyph rune
	Color core.Color
}

// Entity is a single occupant of the board grid. The board is the sole
// owner of position truth; an entity is a value object plus the cadence
// counters its movement policy needs.
//
// Border entities never enter rosters and never have their movement
// bookkeeping exercised.
type Entity struct {
	id    uint64
	kind  Kind
	glyph rune
	color core.Color

	// Committed position in playable coordinates. Valid only once
	// placed is true (border entities never are).
	row, col int
	placed   bool

	// Pending placement in the next buffer, cleared at commit.
	nextRow, nextCol int
	inNext           bool

	moveTicks int // ticks since the entity last moved
	shotTicks int // ticks since the entity last fired
}

// ID returns the session-scoped identifier. IDs are issued by the board
// from a monotonic counter and are never reused while the entity lives.
func (e *Entity) ID() uint64 { return e.id }

// Kind returns the entity's kind.
func (e *Entity) Kind() Kind { return e.kind }

// Glyph returns the display rune, opaque to the simulation.
func (e *Entity) Glyph() rune { return e.glyph }

// Color returns the display color class, opaque to the simulation.
func (e *Entity) Color() core.Color { return e.color }

// Pos returns the committed position in playable coordinates.
// Fails with ErrNoPosition if the entity has never been placed.
func (e *Entity) Pos() (row, col int, err error) {
	if !e.placed {
		return 0, 0, fmt.Errorf("%w: %s", ErrNoPosition, e)
	}
	return e.row, e.col, nil
}

// String identifies the entity for error messages and logs.
func (e *Entity) String() string {
	if !e.placed {
		return fmt.Sprintf("%s-%c-nopos", e.kind, e.glyph)
	}
	return fmt.Sprintf("%s-%c-(%d,%d)", e.kind, e.glyph, e.row, e.col)
}

// Bounds is the playable area movement is checked against. The origin
// is the first cell inside the border frame.
type Bounds struct {
	Height, Width int
}

// Contains reports whether a playable coordinate lies inside the bounds.
func (b Bounds) Contains(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// NextOffset returns the (dRow, dCol) movement delta for an entity of
// the given kind at (row, col). It is a pure function of its arguments.
//
// Projectiles travel straight: player projectiles toward row 0, enemy
// projectiles toward the bottom row. Players and enemies use the snake
// policy: prefer left on odd rows and right on even rows, drop one row
// when the preferred horizontal move would leave the bounds, and fail
// with ErrMovementBlocked when dropping down is impossible too.
//
// depth > 1 composes that many consecutive offsets and returns the
// cumulative delta; it is used only to space out the initial enemy
// line, never during live play.
func NextOffset(kind Kind, row, col, depth int, b Bounds) (int, int, error) {
	switch kind {
	case KindPlayerProjectile:
		return -1, 0, nil
	case KindEnemyProjectile:
		return +1, 0, nil
	case KindPlayer, KindEnemy:
		return snakeOffset(row, col, depth, b)
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrImmovableEntity, kind)
	}
}

func snakeOffset(row, col, depth int, b Bounds) (int, int, error) {
	dc := +1 // right on even rows
	if row%2 == 1 {
		dc = -1 // left on odd rows
	}

	var dr int
	if !b.Contains(row, col+dc) {
		if !b.Contains(row+1, col) {
			return 0, 0, fmt.Errorf("%w: at (%d,%d)", ErrMovementBlocked, row, col)
		}
		dr, dc = +1, 0
	}

	if depth > 1 {
		nr, nc, err := snakeOffset(row+dr, col+dc, depth-1, b)
		if err != nil {
			return 0, 0, err
		}
		dr, dc = dr+nr, dc+nc
	}

	return dr, dc, nil
}
