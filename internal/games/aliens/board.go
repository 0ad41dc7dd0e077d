package aliens

import (
	"fmt"
	"math/rand"

	"github.com/arcadelab/aliens/internal/config"
	"github.com/arcadelab/aliens/internal/core"
)

// Scorekeeper receives scoring events from collision resolution.
// The game controller implements it; the board never owns the score.
type Scorekeeper interface {
	IncrementScore()
}

// Buffer selects which occupancy grid a read goes against.
type Buffer int

const (
	// BufferCurrent is the authoritative state readers and the renderer see.
	BufferCurrent Buffer = iota
	// BufferNext holds the provisional placements accumulated during a tick.
	BufferNext
)

// frame describes the raw grid wrapped around the playable area: a
// 1-cell border, a title bar above and a stats bar below, each closed
// off by its own horizontal rule.
type frame struct {
	playH, playW int
}

const (
	borderWidth    = 1 // fixed; the frame pattern assumes single-cell rules
	titleBarHeight = 1 + borderWidth
	statsBarHeight = 1 + borderWidth
)

func (f frame) rawWidth() int  { return f.playW + 2*borderWidth }
func (f frame) rawHeight() int { return titleBarHeight + f.playH + statsBarHeight + 2*borderWidth }

// ruleRows returns the raw rows carrying a horizontal rule, ascending:
// top edge, title separator, stats separator, bottom edge.
func (f frame) ruleRows() [4]int {
	top := 0
	title := titleBarHeight
	stats := titleBarHeight + borderWidth + f.playH
	bottom := f.rawHeight() - 1
	return [4]int{top, title, stats, bottom}
}

func (f frame) toRawY(row int) int { return titleBarHeight + borderWidth + row }
func (f frame) toRawX(col int) int { return borderWidth + col }

// titleRow and statsRow are the raw rows HUD text is drawn on.
func (f frame) titleRow() int { return borderWidth }
func (f frame) statsRow() int { return f.rawHeight() - 1 - borderWidth }

// Static border entities. They are immutable, shared across cells, and
// never appear in a roster.
var (
	borderVertical       = &Entity{kind: KindBorder, glyph: '║', color: core.ColorWhite}
	borderHorizontal     = &Entity{kind: KindBorder, glyph: '═', color: core.ColorWhite}
	borderTopLeft        = &Entity{kind: KindBorder, glyph: '╔', color: core.ColorWhite}
	borderTopRight       = &Entity{kind: KindBorder, glyph: '╗', color: core.ColorWhite}
	borderBottomLeft     = &Entity{kind: KindBorder, glyph: '╚', color: core.ColorWhite}
	borderBottomRight    = &Entity{kind: KindBorder, glyph: '╝', color: core.ColorWhite}
	borderIntersectLeft  = &Entity{kind: KindBorder, glyph: '╠', color: core.ColorWhite}
	borderIntersectRight = &Entity{kind: KindBorder, glyph: '╣', color: core.ColorWhite}
)

// Entity appearance templates. Live entities are built fresh from these
// descriptors by the board's factory; the templates are never placed.
var (
	playerDescriptor = Descriptor{Kind: KindPlayer, Glyph: '^', Color: core.ColorRed}

	playerProjectileDescriptor = Descriptor{Kind: KindPlayerProjectile, Glyph: '|', Color: core.ColorRed}
	enemyProjectileDescriptor  = Descriptor{Kind: KindEnemyProjectile, Glyph: '!', Color: core.ColorWhite}

	enemyDescriptors = []Descriptor{
		{Kind: KindEnemy, Glyph: '◦', Color: core.ColorGreen},
		{Kind: KindEnemy, Glyph: '◦', Color: core.ColorYellow},
		{Kind: KindEnemy, Glyph: '◦', Color: core.ColorCyan},
		{Kind: KindEnemy, Glyph: '◦', Color: core.ColorMagenta},
	}
)

// nextCell accumulates up to two provisional occupants between the
// placement phase and collision resolution.
type nextCell struct {
	occ [2]*Entity
	n   int
}

func (c *nextCell) remove(e *Entity) {
	for i := range c.n {
		if c.occ[i] == e {
			c.occ[i] = c.occ[c.n-1]
			c.occ[c.n-1] = nil
			c.n--
			return
		}
	}
}

// Board owns the cell space and every live entity on it. All coordinates
// on the public surface are playable coordinates; conversion to the raw
// grid (which includes the frame) happens internally.
//
// Writes during a tick go to the next buffer only; the current buffer
// changes solely inside Commit. That double buffering is what prevents
// read-during-write hazards within a tick — no locking is needed because
// the simulation is strictly single-threaded.
type Board struct {
	frame  frame
	bounds Bounds

	current [][]*Entity  // raw-sized, at most one occupant per cell
	next    [][]nextCell // raw-sized, at most two occupants pending resolution

	rosters map[Kind][]*Entity
	nextID  uint64

	rng    *rand.Rand
	scores Scorekeeper

	enemyTicksPerMove  int
	enemyTicksPerShot  int
	playerTicksPerShot int
	projectileStep     int
}

// NewBoard builds the bordered grid, places the player at the bottom
// center of the playable area, and lays cfg.Enemies.Count enemies along
// the snake path from the top-left playable cell with
// cfg.Enemies.Spacing composed-offset gaps. Enemy appearance is chosen
// per slot from the descriptor templates using rng.
func NewBoard(cfg config.AliensConfig, rng *rand.Rand, scores Scorekeeper) (*Board, error) {
	f := frame{playH: cfg.Board.Height, playW: cfg.Board.Width}
	b := &Board{
		frame:              f,
		bounds:             Bounds{Height: cfg.Board.Height, Width: cfg.Board.Width},
		rosters:            make(map[Kind][]*Entity),
		rng:                rng,
		scores:             scores,
		enemyTicksPerMove:  cfg.Enemies.TicksPerMove,
		enemyTicksPerShot:  cfg.Enemies.TicksPerShot,
		playerTicksPerShot: cfg.Player.TicksPerShot,
		projectileStep:     cfg.Timing.ProjectileStep,
	}

	b.current = make([][]*Entity, f.rawHeight())
	for y := range b.current {
		b.current[y] = make([]*Entity, f.rawWidth())
	}
	b.resetNext()
	b.seedBorder(b.current)

	if err := b.populate(cfg); err != nil {
		return nil, err
	}
	return b, nil
}

// Bounds returns the playable area dimensions.
func (b *Board) Bounds() Bounds { return b.bounds }

// RawSize returns the full grid dimensions including the frame.
func (b *Board) RawSize() (height, width int) {
	return b.frame.rawHeight(), b.frame.rawWidth()
}

// MinScreenSize returns the smallest terminal (width, height) the
// configured grid plus its frame and HUD bars can be drawn on. Startup
// code checks it before constructing a board.
func MinScreenSize(cfg config.AliensConfig) (width, height int) {
	f := frame{playH: cfg.Board.Height, playW: cfg.Board.Width}
	return f.rawWidth(), f.rawHeight()
}

// resetNext replaces the next buffer with a fresh one containing only
// the static border entities.
func (b *Board) resetNext() {
	f := b.frame
	b.next = make([][]nextCell, f.rawHeight())
	for y := range b.next {
		b.next[y] = make([]nextCell, f.rawWidth())
	}
	border := make([][]*Entity, f.rawHeight())
	for y := range border {
		border[y] = make([]*Entity, f.rawWidth())
	}
	b.seedBorder(border)
	for y := range border {
		for x, e := range border[y] {
			if e != nil {
				b.next[y][x] = nextCell{occ: [2]*Entity{e}, n: 1}
			}
		}
	}
}

// seedBorder writes the frame decoration into a raw grid: corner glyphs,
// vertical edges, the four horizontal rules, and T-intersections where
// the title and stats rules meet the verticals. The layout is a pure
// function of the configuration.
func (b *Board) seedBorder(grid [][]*Entity) {
	f := b.frame
	maxY := f.rawHeight() - 1
	maxX := f.rawWidth() - 1
	rules := f.ruleRows()

	interior := map[int]bool{rules[1]: true, rules[2]: true}
	for y := 1; y < maxY; y++ {
		if interior[y] {
			grid[y][0] = borderIntersectLeft
			grid[y][maxX] = borderIntersectRight
		} else {
			grid[y][0] = borderVertical
			grid[y][maxX] = borderVertical
		}
	}

	for _, y := range rules {
		for x := 1; x < maxX; x++ {
			grid[y][x] = borderHorizontal
		}
	}

	grid[0][0] = borderTopLeft
	grid[0][maxX] = borderTopRight
	grid[maxY][0] = borderBottomLeft
	grid[maxY][maxX] = borderBottomRight
}

// newEntity constructs a fresh entity from a descriptor and issues its
// identity. Shooters start with a full cooldown so they can fire on
// their first eligible tick.
func (b *Board) newEntity(d Descriptor) *Entity {
	b.nextID++
	e := &Entity{
		id:    b.nextID,
		kind:  d.Kind,
		glyph: d.Glyph,
		color: d.Color,
	}
	switch d.Kind {
	case KindPlayer:
		e.shotTicks = b.playerTicksPerShot
	case KindEnemy:
		e.shotTicks = b.enemyTicksPerShot
	}
	return e
}

// populate performs the initial placement and commits it so the current
// buffer holds the opening state.
func (b *Board) populate(cfg config.AliensConfig) error {
	player := b.newEntity(playerDescriptor)
	b.rosters[KindPlayer] = append(b.rosters[KindPlayer], player)
	if err := b.PlaceNext(b.bounds.Height-1, b.bounds.Width/2, player); err != nil {
		return err
	}

	row, col := 0, 0
	for range cfg.Enemies.Count {
		desc := enemyDescriptors[b.rng.Intn(len(enemyDescriptors))]
		enemy := b.newEntity(desc)
		b.rosters[KindEnemy] = append(b.rosters[KindEnemy], enemy)
		if err := b.PlaceNext(row, col, enemy); err != nil {
			return fmt.Errorf("placing enemy %d: %w", enemy.id, err)
		}

		dr, dc, err := NextOffset(KindEnemy, row, col, cfg.Enemies.Spacing, b.bounds)
		if err != nil {
			return fmt.Errorf("enemy count %d does not fit the board: %w", cfg.Enemies.Count, err)
		}
		row, col = row+dr, col+dc
	}

	return b.Commit()
}

// Alive returns the live roster for a kind. The returned slice is the
// board's own; callers that mutate the board while iterating must walk
// a copy.
func (b *Board) Alive(kind Kind) []*Entity {
	return b.rosters[kind]
}

// Player returns the player entity, or nil once it has been destroyed.
func (b *Board) Player() *Entity {
	players := b.rosters[KindPlayer]
	if len(players) == 0 {
		return nil
	}
	return players[0]
}

// PlaceNext writes the entity into the next buffer at a playable
// coordinate. Out-of-bounds placement destroys projectiles silently
// (they left the screen) and is ErrOutOfBounds for anything else.
// A cell accepts at most two distinct occupants pending resolution;
// an entity holds at most one pending placement per tick
// (ErrDuplicateOccupant) and a third occupant is ErrOverCrowdedCell.
func (b *Board) PlaceNext(row, col int, e *Entity) error {
	if !b.bounds.Contains(row, col) {
		if e.kind.IsProjectile() {
			b.Remove(e)
			return nil
		}
		return fmt.Errorf("%w: %s to (%d,%d)", ErrOutOfBounds, e, row, col)
	}

	// The single nextRow/nextCol bookkeeping cannot track two cells; a
	// second placement would strand a pointer Remove could not clear.
	if e.inNext {
		return fmt.Errorf("%w: %s already pending at (%d,%d)", ErrDuplicateOccupant, e, e.nextRow, e.nextCol)
	}

	cell := &b.next[b.frame.toRawY(row)][b.frame.toRawX(col)]
	if cell.n == len(cell.occ) {
		return fmt.Errorf("%w: (%d,%d) already holds %s and %s, placing %s",
			ErrOverCrowdedCell, row, col, cell.occ[0], cell.occ[1], e)
	}

	cell.occ[cell.n] = e
	cell.n++
	e.nextRow, e.nextCol, e.inNext = row, col, true
	return nil
}

// OccupantAt reads a cell from either buffer at a playable coordinate.
// Reading a next-buffer cell that still holds two occupants is
// ErrUnresolvedCollision: the caller must commit (which resolves) first.
func (b *Board) OccupantAt(row, col int, buf Buffer) (*Entity, error) {
	if !b.bounds.Contains(row, col) {
		return nil, fmt.Errorf("%w: read at (%d,%d)", ErrOutOfBounds, row, col)
	}
	rawY, rawX := b.frame.toRawY(row), b.frame.toRawX(col)

	if buf == BufferCurrent {
		return b.current[rawY][rawX], nil
	}

	cell := &b.next[rawY][rawX]
	if cell.n > 1 {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrUnresolvedCollision, row, col)
	}
	if cell.n == 0 {
		return nil, nil
	}
	return cell.occ[0], nil
}

// At reads the current buffer in raw coordinates, border cells included.
// The renderer uses it to draw the full frame.
func (b *Board) At(rawY, rawX int) *Entity {
	if rawY < 0 || rawY >= b.frame.rawHeight() || rawX < 0 || rawX >= b.frame.rawWidth() {
		return nil
	}
	return b.current[rawY][rawX]
}

// Remove deletes the entity from its kind roster and clears every cell
// referencing it in either buffer, atomically with respect to the rest
// of the tick. After Remove returns, no index holds the entity.
func (b *Board) Remove(e *Entity) {
	roster := b.rosters[e.kind]
	for i, other := range roster {
		if other == e {
			b.rosters[e.kind] = append(roster[:i], roster[i+1:]...)
			break
		}
	}

	if e.placed {
		rawY, rawX := b.frame.toRawY(e.row), b.frame.toRawX(e.col)
		if b.current[rawY][rawX] == e {
			b.current[rawY][rawX] = nil
		}
	}
	if e.inNext {
		b.next[b.frame.toRawY(e.nextRow)][b.frame.toRawX(e.nextCol)].remove(e)
		e.inNext = false
	}
}

// Commit resolves collisions over the next buffer, promotes it to
// current, and resets next to a border-seeded empty buffer. This is the
// only point at which the current buffer changes; it defines the tick
// boundary for every reader including the renderer.
func (b *Board) Commit() error {
	if err := b.resolveCollisions(); err != nil {
		return err
	}

	for y := range b.next {
		for x := range b.next[y] {
			cell := &b.next[y][x]
			var occ *Entity
			if cell.n > 0 {
				occ = cell.occ[0]
			}
			b.current[y][x] = occ
			if occ != nil && occ.kind != KindBorder {
				occ.row, occ.col = occ.nextRow, occ.nextCol
				occ.placed = true
				occ.inNext = false
			}
		}
	}

	b.resetNext()
	return nil
}

// SpawnProjectile materializes a fresh projectile one cell ahead of the
// shooter (up for the player, down for enemies), gated by the shooter's
// shot cooldown. The shot leaves from the shooter's staged cell when a
// move is pending this tick, so moving and firing in one tick agree on
// where the shooter is. A spawn cell outside the playable area means the
// shot leaves the screen immediately and is dropped without error.
func (b *Board) SpawnProjectile(from *Entity) error {
	row, col := from.nextRow, from.nextCol
	if !from.inNext {
		var err error
		row, col, err = from.Pos()
		if err != nil {
			return err
		}
	}

	var dir, cooldown int
	var desc Descriptor
	switch from.kind {
	case KindPlayer:
		dir, cooldown, desc = -1, b.playerTicksPerShot, playerProjectileDescriptor
	case KindEnemy:
		dir, cooldown, desc = +1, b.enemyTicksPerShot, enemyProjectileDescriptor
	default:
		return fmt.Errorf("%w: %s cannot fire", ErrImmovableEntity, from)
	}

	if from.shotTicks < cooldown {
		return nil
	}

	if b.bounds.Contains(row+dir, col) {
		cell := &b.next[b.frame.toRawY(row+dir)][b.frame.toRawX(col)]
		// A spawn cell already holding a pending collision absorbs the shot.
		if cell.n == len(cell.occ) {
			from.shotTicks = 0
			return nil
		}
		// An enemy holds its fire (cooldown kept) rather than shoot a
		// fellow enemy moving into the spawn cell.
		if from.kind == KindEnemy {
			for i := range cell.n {
				if cell.occ[i].kind == KindEnemy {
					return nil
				}
			}
		}
	}
	from.shotTicks = 0

	p := b.newEntity(desc)
	b.rosters[p.kind] = append(b.rosters[p.kind], p)
	return b.PlaceNext(row+dir, col, p)
}

// Advance applies one tick of movement policy to a live entity, writing
// the outcome into the next buffer. Throttled kinds re-assert their
// current cell (a hold) until their cadence counter matures; entities
// spawned earlier in the same tick already carry a pending placement
// and are left alone.
func (b *Board) Advance(e *Entity) error {
	if !e.placed {
		return nil
	}

	var every int
	switch {
	case e.kind.IsProjectile():
		every = b.projectileStep
	case e.kind == KindEnemy || e.kind == KindPlayer:
		every = b.enemyTicksPerMove
	default:
		return fmt.Errorf("%w: %s", ErrImmovableEntity, e)
	}

	if e.moveTicks+1 >= every {
		dr, dc, err := NextOffset(e.kind, e.row, e.col, 1, b.bounds)
		if err != nil {
			return err
		}
		e.moveTicks = 0
		return b.PlaceNext(e.row+dr, e.col+dc, e)
	}

	e.moveTicks++
	return b.PlaceNext(e.row, e.col, e)
}

// TickCooldowns advances the shot cooldown of every shooter by one tick.
func (b *Board) TickCooldowns() {
	if p := b.Player(); p != nil {
		p.shotTicks++
	}
	for _, e := range b.rosters[KindEnemy] {
		e.shotTicks++
	}
}
