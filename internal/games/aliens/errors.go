package aliens

import "errors"

// Protocol errors. Each of these indicates the board or the tick loop
// was driven outside its documented contract; none of them is a
// recoverable gameplay outcome. They surface through StepResult.Err and
// end the session.
var (
	// ErrNoPosition is returned when reading the position of an entity
	// that has never been placed on the board.
	ErrNoPosition = errors.New("aliens: entity has no position")

	// ErrImmovableEntity is returned when a movement offset is requested
	// for a kind with no movement policy (obstacles, borders).
	ErrImmovableEntity = errors.New("aliens: entity kind does not move")

	// ErrOutOfBounds is returned when a non-projectile is placed outside
	// the playable area. Projectiles leaving bounds are destroyed
	// silently instead.
	ErrOutOfBounds = errors.New("aliens: placement outside playable bounds")

	// ErrDuplicateOccupant is returned when the same entity is placed
	// into one next-buffer cell twice within a tick.
	ErrDuplicateOccupant = errors.New("aliens: entity already placed in cell")

	// ErrOverCrowdedCell is returned on a third placement into one
	// next-buffer cell. Two occupants are a pending collision; three
	// mean an upstream placement bug.
	ErrOverCrowdedCell = errors.New("aliens: more than two occupants in cell")

	// ErrUnresolvedCollision is returned when a next-buffer cell holding
	// two occupants is read before collision resolution ran.
	ErrUnresolvedCollision = errors.New("aliens: cell read before collision resolution")

	// ErrIllegalCollision is returned when two non-projectiles end up in
	// the same cell. Movement policy and occupancy checks must prevent
	// this; seeing it means board state can no longer be trusted.
	ErrIllegalCollision = errors.New("aliens: collision between non-projectiles")
)

// ErrMovementBlocked reports that the snake policy found both the
// horizontal and the forced-down move impossible. Unlike the protocol
// errors above it is an expected terminal condition: the swarm has
// nowhere left to go and the game transitions to the Loss state.
var ErrMovementBlocked = errors.New("aliens: snake movement blocked in both directions")
