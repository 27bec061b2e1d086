package cnboard

// Pseudo-legal move generation. Only piece geometry and occupancy are
// enforced: a move that exposes the mover's own general is still generated.
// The facing-generals capture is the one general-safety rule modeled here.

// GenerateMoves returns every pseudo-legal move for side, in a fixed
// deterministic order: the playing area is scanned row-major, and each piece
// emits its moves in a fixed per-type direction order.
func GenerateMoves(b *Board, side Side) []Move {
	moves := make([]Move, 0, 128)

	for r := RowBegin; r <= RowEnd; r++ {
		for c := ColBegin; c <= ColEnd; c++ {
			p := b.Get(r, c)
			if p.Side() != side {
				continue
			}
			switch p.Type() {
			case TypePawn:
				moves = genPawnMoves(b, moves, r, c, side)
			case TypeCannon:
				moves = genCannonMoves(b, moves, r, c, side)
			case TypeRook:
				moves = genRookMoves(b, moves, r, c, side)
			case TypeKnight:
				moves = genKnightMoves(b, moves, r, c)
			case TypeBishop:
				moves = genBishopMoves(b, moves, r, c, side)
			case TypeAdvisor:
				moves = genAdvisorMoves(b, moves, r, c, side)
			case TypeGeneral:
				moves = genGeneralMoves(b, moves, r, c, side)
			}
		}
	}

	return moves
}

// tryMove appends (fr,fc)->(tr,tc) if the destination is on the board and
// not occupied by a piece of the mover's own side.
func tryMove(b *Board, moves []Move, fr, fc, tr, tc int) []Move {
	from := b.Get(fr, fc)
	to := b.Get(tr, tc)
	if to != Offboard && from.Side() != to.Side() {
		moves = append(moves, Move{From: Pos{Row: fr, Col: fc}, To: Pos{Row: tr, Col: tc}})
	}
	return moves
}

// Pawns step one cell toward the opponent; once across the river they may
// also step sideways.
func genPawnMoves(b *Board, moves []Move, r, c int, side Side) []Move {
	if side == SideUp {
		moves = tryMove(b, moves, r, c, r+1, c)
		if r > RiverUp {
			moves = tryMove(b, moves, r, c, r, c-1)
			moves = tryMove(b, moves, r, c, r, c+1)
		}
	} else {
		moves = tryMove(b, moves, r, c, r-1, c)
		if r < RiverDown {
			moves = tryMove(b, moves, r, c, r, c-1)
			moves = tryMove(b, moves, r, c, r, c+1)
		}
	}
	return moves
}

// genRookRay walks one orthogonal ray: every empty cell is a quiet move and
// the first blocker is a capture when it belongs to the enemy.
func genRookRay(b *Board, moves []Move, r, c, dr, dc int, side Side) []Move {
	row, col := r+dr, c+dc
	for ; b.Get(row, col) == Empty; row, col = row+dr, col+dc {
		moves = append(moves, Move{From: Pos{Row: r, Col: c}, To: Pos{Row: row, Col: col}})
	}
	if b.Get(row, col).Side() == side.Flip() {
		moves = append(moves, Move{From: Pos{Row: r, Col: c}, To: Pos{Row: row, Col: col}})
	}
	return moves
}

func genRookMoves(b *Board, moves []Move, r, c int, side Side) []Move {
	moves = genRookRay(b, moves, r, c, -1, 0, side)
	moves = genRookRay(b, moves, r, c, +1, 0, side)
	moves = genRookRay(b, moves, r, c, 0, -1, side)
	moves = genRookRay(b, moves, r, c, 0, +1, side)
	return moves
}

// genCannonRay walks one orthogonal ray for a cannon. Quiet moves are the
// leading run of empty cells with no capture on the first blocker. A capture
// needs exactly one screen: past the first blocker, the next non-empty cell
// along the ray is taken iff it is an enemy piece.
func genCannonRay(b *Board, moves []Move, r, c, dr, dc int, side Side) []Move {
	row, col := r+dr, c+dc
	for ; b.Get(row, col) == Empty; row, col = row+dr, col+dc {
		moves = append(moves, Move{From: Pos{Row: r, Col: c}, To: Pos{Row: row, Col: col}})
	}
	if b.Get(row, col) == Offboard {
		return moves
	}
	for row, col = row+dr, col+dc; ; row, col = row+dr, col+dc {
		p := b.Get(row, col)
		if p == Empty {
			continue
		}
		if p.Side() == side.Flip() {
			moves = append(moves, Move{From: Pos{Row: r, Col: c}, To: Pos{Row: row, Col: col}})
		}
		return moves
	}
}

func genCannonMoves(b *Board, moves []Move, r, c int, side Side) []Move {
	moves = genCannonRay(b, moves, r, c, -1, 0, side)
	moves = genCannonRay(b, moves, r, c, +1, 0, side)
	moves = genCannonRay(b, moves, r, c, 0, -1, side)
	moves = genCannonRay(b, moves, r, c, 0, +1, side)
	return moves
}

// Knights move in an L shape. Each orthogonally adjacent leg cell gates a
// pair of destinations: if the leg is occupied, both are blocked.
func genKnightMoves(b *Board, moves []Move, r, c int) []Move {
	if b.Get(r+1, c) == Empty {
		moves = tryMove(b, moves, r, c, r+2, c+1)
		moves = tryMove(b, moves, r, c, r+2, c-1)
	}
	if b.Get(r-1, c) == Empty {
		moves = tryMove(b, moves, r, c, r-2, c+1)
		moves = tryMove(b, moves, r, c, r-2, c-1)
	}
	if b.Get(r, c+1) == Empty {
		moves = tryMove(b, moves, r, c, r+1, c+2)
		moves = tryMove(b, moves, r, c, r-1, c+2)
	}
	if b.Get(r, c-1) == Empty {
		moves = tryMove(b, moves, r, c, r+1, c-2)
		moves = tryMove(b, moves, r, c, r-1, c-2)
	}
	return moves
}

// Bishops move exactly two cells diagonally, cannot jump an occupied eye
// cell and never cross the river.
func genBishopMoves(b *Board, moves []Move, r, c int, side Side) []Move {
	if side == SideUp {
		if r+2 <= RiverUp {
			if b.Get(r+1, c+1) == Empty {
				moves = tryMove(b, moves, r, c, r+2, c+2)
			}
			if b.Get(r+1, c-1) == Empty {
				moves = tryMove(b, moves, r, c, r+2, c-2)
			}
		}
		if b.Get(r-1, c+1) == Empty {
			moves = tryMove(b, moves, r, c, r-2, c+2)
		}
		if b.Get(r-1, c-1) == Empty {
			moves = tryMove(b, moves, r, c, r-2, c-2)
		}
	} else {
		if r-2 >= RiverDown {
			if b.Get(r-1, c+1) == Empty {
				moves = tryMove(b, moves, r, c, r-2, c+2)
			}
			if b.Get(r-1, c-1) == Empty {
				moves = tryMove(b, moves, r, c, r-2, c-2)
			}
		}
		if b.Get(r+1, c+1) == Empty {
			moves = tryMove(b, moves, r, c, r+2, c+2)
		}
		if b.Get(r+1, c-1) == Empty {
			moves = tryMove(b, moves, r, c, r+2, c-2)
		}
	}
	return moves
}

// Advisors move one cell diagonally and never leave the palace.
func genAdvisorMoves(b *Board, moves []Move, r, c int, side Side) []Move {
	top, bottom := PalaceUpTop, PalaceUpBottom
	if side == SideDown {
		top, bottom = PalaceDownTop, PalaceDownBottom
	}
	if r+1 <= bottom && c+1 <= PalaceRight {
		moves = tryMove(b, moves, r, c, r+1, c+1)
	}
	if r+1 <= bottom && c-1 >= PalaceLeft {
		moves = tryMove(b, moves, r, c, r+1, c-1)
	}
	if r-1 >= top && c+1 <= PalaceRight {
		moves = tryMove(b, moves, r, c, r-1, c+1)
	}
	if r-1 >= top && c-1 >= PalaceLeft {
		moves = tryMove(b, moves, r, c, r-1, c-1)
	}
	return moves
}

// Generals move one cell orthogonally inside the palace. Additionally, if
// the opposing general is the first piece along the general's own file, its
// direct capture is generated (facing generals).
func genGeneralMoves(b *Board, moves []Move, r, c int, side Side) []Move {
	top, bottom := PalaceUpTop, PalaceUpBottom
	enemyGeneral, dr := DownGeneral, +1
	if side == SideDown {
		top, bottom = PalaceDownTop, PalaceDownBottom
		enemyGeneral, dr = UpGeneral, -1
	}

	if r+1 <= bottom {
		moves = tryMove(b, moves, r, c, r+1, c)
	}
	if r-1 >= top {
		moves = tryMove(b, moves, r, c, r-1, c)
	}
	if c+1 <= PalaceRight {
		moves = tryMove(b, moves, r, c, r, c+1)
	}
	if c-1 >= PalaceLeft {
		moves = tryMove(b, moves, r, c, r, c-1)
	}

	for row := r + dr; ; row += dr {
		p := b.Get(row, c)
		if p == Empty {
			continue
		}
		if p == enemyGeneral {
			moves = append(moves, Move{From: Pos{Row: r, Col: c}, To: Pos{Row: row, Col: c}})
		}
		return moves
	}
}
