package engine

import "cnchess/cnboard"

// Built-in evaluation values. These are the baseline the shipped YAML config
// is generated from (cmd/export_eval); LoadTables replaces them entirely.
//
// All base values are written from the down side's point of view, with grid
// row 0 being the up side's back rank. DefaultTables mirrors them for the up
// side, so the two sides are exactly symmetric and the starting position
// evaluates to 0.

var basePieceValue = [8]int32{
	cnboard.TypePawn:    30,
	cnboard.TypeCannon:  90,
	cnboard.TypeRook:    200,
	cnboard.TypeKnight:  90,
	cnboard.TypeBishop:  20,
	cnboard.TypeAdvisor: 20,
	cnboard.TypeGeneral: 9999,
}

type grid = [cnboard.RealRows][cnboard.RealCols]int32

var basePawnPST = grid{
	{0, 3, 6, 9, 12, 9, 6, 3, 0},
	{18, 36, 56, 80, 120, 80, 56, 36, 18},
	{14, 26, 42, 60, 80, 60, 42, 26, 14},
	{10, 20, 30, 34, 40, 34, 30, 20, 10},
	{6, 12, 18, 18, 20, 18, 18, 12, 6},
	{2, 0, 8, 0, 8, 0, 8, 0, 2},
	{0, 0, -2, 0, 4, 0, -2, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var baseCannonPST = grid{
	{6, 4, 0, -10, -12, -10, 0, 4, 6},
	{2, 2, 0, -4, -14, -4, 0, 2, 2},
	{2, 2, 0, -10, -8, -10, 0, 2, 2},
	{0, 0, -2, 4, 10, 4, -2, 0, 0},
	{0, 0, 0, 2, 8, 2, 0, 0, 0},
	{-2, 0, 4, 2, 6, 2, 4, 0, -2},
	{0, 0, 0, 2, 4, 2, 0, 0, 0},
	{4, 0, 8, 6, 10, 6, 8, 0, 4},
	{0, 2, 4, 6, 6, 6, 4, 2, 0},
	{0, 0, 2, 6, 6, 6, 2, 0, 0},
}

var baseRookPST = grid{
	{14, 14, 12, 18, 16, 18, 12, 14, 14},
	{16, 20, 18, 24, 26, 24, 18, 20, 16},
	{12, 12, 12, 18, 18, 18, 12, 12, 12},
	{12, 18, 16, 22, 22, 22, 16, 18, 12},
	{12, 14, 12, 18, 18, 18, 12, 14, 12},
	{12, 16, 14, 20, 20, 20, 14, 16, 12},
	{6, 10, 8, 14, 14, 14, 8, 10, 6},
	{4, 8, 6, 14, 12, 14, 6, 8, 4},
	{8, 4, 8, 16, 8, 16, 8, 4, 8},
	{-2, 10, 6, 14, 12, 14, 6, 10, -2},
}

var baseKnightPST = grid{
	{4, 8, 16, 12, 4, 12, 16, 8, 4},
	{4, 10, 28, 16, 8, 16, 28, 10, 4},
	{12, 14, 16, 20, 18, 20, 16, 14, 12},
	{8, 24, 18, 24, 20, 24, 18, 24, 8},
	{6, 16, 14, 18, 16, 18, 14, 16, 6},
	{4, 12, 16, 14, 12, 14, 16, 12, 4},
	{2, 6, 8, 6, 10, 6, 8, 6, 2},
	{4, 2, 8, 8, 4, 8, 8, 2, 4},
	{0, 2, 4, 4, -2, 4, 4, 2, 0},
	{0, -4, 0, 0, 0, 0, 0, -4, 0},
}

var baseBishopPST = grid{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 2, 0, 0, 0, 2, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, 3, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 2, 0, 0, 0, 2, 0, 0},
}

var baseAdvisorPST = grid{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 3, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 1, 0, 0, 0},
}

var baseGeneralPST = grid{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, -2, -2, -2, 0, 0, 0},
	{0, 0, 0, -1, -1, -1, 0, 0, 0},
	{0, 0, 0, 1, 6, 1, 0, 0, 0},
}

var basePST = [8]grid{
	cnboard.TypePawn:    basePawnPST,
	cnboard.TypeCannon:  baseCannonPST,
	cnboard.TypeRook:    baseRookPST,
	cnboard.TypeKnight:  baseKnightPST,
	cnboard.TypeBishop:  baseBishopPST,
	cnboard.TypeAdvisor: baseAdvisorPST,
	cnboard.TypeGeneral: baseGeneralPST,
}

// DefaultTables builds the built-in tables: down pieces get the base values
// as-is, up pieces get them negated and flipped vertically.
func DefaultTables() *Tables {
	t := &Tables{}
	for _, p := range pieceList {
		value := basePieceValue[p.Type()]
		pst := basePST[p.Type()]
		if p.Side() == cnboard.SideDown {
			t.material[p] = value
			t.position[p] = pst
			continue
		}
		t.material[p] = -value
		for r := 0; r < cnboard.RealRows; r++ {
			for c := 0; c < cnboard.RealCols; c++ {
				t.position[p][r][c] = -pst[cnboard.RealRows-1-r][c]
			}
		}
	}
	return t
}
