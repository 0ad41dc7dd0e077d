package aliens

import "fmt"

// resolveCollisions walks the next buffer in row-then-column order and
// settles every cell holding two pending occupants before promotion.
// Any legal two-occupant cell involves at least one projectile and both
// occupants are destroyed; an enemy among them scores a kill. Two
// non-projectiles in one cell mean the movement policies were violated
// upstream and the board is no longer trustworthy.
func (b *Board) resolveCollisions() error {
	for y := range b.next {
		for x := range b.next[y] {
			cell := &b.next[y][x]
			if cell.n < 2 {
				continue
			}

			first, second := cell.occ[0], cell.occ[1]
			if !first.kind.IsProjectile() && !second.kind.IsProjectile() {
				return fmt.Errorf("%w: %s and %s", ErrIllegalCollision, first, second)
			}

			scored := first.kind == KindEnemy || second.kind == KindEnemy
			b.Remove(first)
			b.Remove(second)
			if scored && b.scores != nil {
				b.scores.IncrementScore()
			}
		}
	}
	return nil
}
