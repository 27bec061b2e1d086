package engine

import "cnchess/cnboard"

// Evaluate scores the position as the sum of material value and positional
// bonus over every occupied playing-area cell. Positive favors the down
// side, negative the up side. It panics when called without tables; that is
// a contract violation, not a runtime condition.
func Evaluate(b *cnboard.Board, t *Tables) int32 {
	if t == nil {
		panic("engine: evaluation tables not initialized")
	}

	var score int32
	for r := cnboard.RowBegin; r <= cnboard.RowEnd; r++ {
		for c := cnboard.ColBegin; c <= cnboard.ColEnd; c++ {
			p := b.Get(r, c)
			if p == cnboard.Empty {
				continue
			}
			score += t.material[p]
			score += t.position[p][r-cnboard.RowBegin][c-cnboard.ColBegin]
		}
	}
	return score
}
