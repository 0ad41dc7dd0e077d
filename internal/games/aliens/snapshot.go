package aliens

// Snapshot captures the observable simulation state for determinism
// checks and replay. Primitive types only for stable hashing.
type Snapshot struct {
	Tick  uint64
	Score int

	Won    bool
	Lost   bool
	Paused bool

	PlayerAlive bool
	PlayerRow   int
	PlayerCol   int

	EnemiesRemaining int

	// Live entities flattened in roster order, 5 ints each:
	// kind, row, col, moveTicks, shotTicks.
	EntityCount int
	EntityData  []int
}

// snapshotKinds fixes the flattening order across runs.
var snapshotKinds = []Kind{KindPlayer, KindEnemy, KindPlayerProjectile, KindEnemyProjectile}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Score:  g.score,
		Won:    g.won,
		Lost:   g.lost,
		Paused: g.paused,
	}
	if g.board == nil {
		return snap
	}

	if p := g.board.Player(); p != nil && p.placed {
		snap.PlayerAlive = true
		snap.PlayerRow = p.row
		snap.PlayerCol = p.col
	}
	snap.EnemiesRemaining = len(g.board.Alive(KindEnemy))

	for _, kind := range snapshotKinds {
		for _, e := range g.board.Alive(kind) {
			if !e.placed {
				continue
			}
			snap.EntityData = append(snap.EntityData,
				int(e.kind), e.row, e.col, e.moveTicks, e.shotTicks)
			snap.EntityCount++
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Won)             //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Lost)            //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)          //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.PlayerAlive)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerRow)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerCol)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemiesRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount)      //#nosec G115 -- hash computation

	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
