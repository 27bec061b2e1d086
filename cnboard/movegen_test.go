package cnboard

import "testing"

func hasMove(moves []Move, m Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}

func mustHave(t *testing.T, moves []Move, from, to Pos) {
	t.Helper()
	if !hasMove(moves, Move{From: from, To: to}) {
		t.Fatalf("move %v -> %v not generated", from, to)
	}
}

func mustNotHave(t *testing.T, moves []Move, from, to Pos) {
	t.Helper()
	if hasMove(moves, Move{From: from, To: to}) {
		t.Fatalf("move %v -> %v generated, want excluded", from, to)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	b := New()
	first := GenerateMoves(b, SideDown)
	second := GenerateMoves(b, SideDown)

	if len(first) != len(second) {
		t.Fatalf("move counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("move %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestStartPositionMoveCount(t *testing.T) {
	b := New()
	for _, side := range []Side{SideUp, SideDown} {
		if got := len(GenerateMoves(b, side)); got != 44 {
			t.Fatalf("side %v: %d moves from start, want 44", side, got)
		}
	}
}

func TestNoMoveTargetsOwnPiece(t *testing.T) {
	b := New()
	for _, side := range []Side{SideUp, SideDown} {
		for _, mv := range GenerateMoves(b, side) {
			if b.At(mv.To).Side() == side {
				t.Fatalf("side %v move %v lands on own piece", side, mv)
			}
			if b.At(mv.To) == Offboard {
				t.Fatalf("side %v move %v lands off board", side, mv)
			}
		}
	}
}

func TestPawnCrossesRiverBeforeSidestepping(t *testing.T) {
	b := NewEmpty()
	put(b, 6, 4, DownPawn)
	moves := GenerateMoves(b, SideDown)
	mustHave(t, moves, at(6, 4), at(5, 4))
	mustNotHave(t, moves, at(6, 4), at(6, 3))
	mustNotHave(t, moves, at(6, 4), at(6, 5))

	b = NewEmpty()
	put(b, 4, 4, DownPawn)
	moves = GenerateMoves(b, SideDown)
	mustHave(t, moves, at(4, 4), at(3, 4))
	mustHave(t, moves, at(4, 4), at(4, 3))
	mustHave(t, moves, at(4, 4), at(4, 5))

	b = NewEmpty()
	put(b, 5, 4, UpPawn)
	moves = GenerateMoves(b, SideUp)
	mustHave(t, moves, at(5, 4), at(6, 4))
	mustHave(t, moves, at(5, 4), at(5, 3))
	mustHave(t, moves, at(5, 4), at(5, 5))
}

func TestRookRayStopsAtBlocker(t *testing.T) {
	b := NewEmpty()
	put(b, 5, 4, DownRook)
	put(b, 2, 4, UpKnight)
	put(b, 7, 4, DownPawn)

	moves := GenerateMoves(b, SideDown)
	mustHave(t, moves, at(5, 4), at(4, 4))
	mustHave(t, moves, at(5, 4), at(3, 4))
	mustHave(t, moves, at(5, 4), at(2, 4)) // enemy blocker is a capture
	mustNotHave(t, moves, at(5, 4), at(1, 4))
	mustHave(t, moves, at(5, 4), at(6, 4))
	mustNotHave(t, moves, at(5, 4), at(7, 4)) // friendly blocker
}

func TestCannonNeedsExactlyOneScreen(t *testing.T) {
	b := NewEmpty()
	put(b, 5, 4, DownCannon)
	put(b, 3, 4, DownPawn) // the screen, side does not matter
	put(b, 1, 4, UpRook)

	moves := GenerateMoves(b, SideDown)
	mustHave(t, moves, at(5, 4), at(4, 4))    // quiet run before the screen
	mustNotHave(t, moves, at(5, 4), at(3, 4)) // no capture of the first blocker
	mustHave(t, moves, at(5, 4), at(1, 4))    // screen capture

	// A second screen kills the capture.
	put(b, 2, 4, UpPawn)
	moves = GenerateMoves(b, SideDown)
	mustNotHave(t, moves, at(5, 4), at(1, 4))
	b.ClearCell(RowBegin+2, ColBegin+4)

	// A friendly target past the screen is no capture either.
	put(b, 1, 4, DownRook)
	moves = GenerateMoves(b, SideDown)
	mustNotHave(t, moves, at(5, 4), at(1, 4))

	// Without any screen the first blocker stays untouchable.
	b.ClearCell(RowBegin+3, ColBegin+4)
	put(b, 1, 4, UpRook)
	moves = GenerateMoves(b, SideDown)
	mustHave(t, moves, at(5, 4), at(2, 4))
	mustNotHave(t, moves, at(5, 4), at(1, 4))
}

func TestKnightLegBlocksDestinationPair(t *testing.T) {
	b := NewEmpty()
	put(b, 5, 4, DownKnight)

	moves := GenerateMoves(b, SideDown)
	if got := len(moves); got != 8 {
		t.Fatalf("free knight has %d moves, want 8", got)
	}

	// Occupying the leg toward the up side blocks exactly that pair.
	put(b, 4, 4, UpPawn)
	moves = GenerateMoves(b, SideDown)
	mustNotHave(t, moves, at(5, 4), at(3, 3))
	mustNotHave(t, moves, at(5, 4), at(3, 5))
	mustHave(t, moves, at(5, 4), at(7, 3))
	mustHave(t, moves, at(5, 4), at(4, 6))
	mustHave(t, moves, at(5, 4), at(4, 2))
}

func TestBishopEyeAndRiver(t *testing.T) {
	b := NewEmpty()
	put(b, 7, 2, DownBishop)

	moves := GenerateMoves(b, SideDown)
	mustHave(t, moves, at(7, 2), at(5, 0))
	mustHave(t, moves, at(7, 2), at(5, 4))
	mustHave(t, moves, at(7, 2), at(9, 0))
	mustHave(t, moves, at(7, 2), at(9, 4))

	// Occupied eye blocks that diagonal only.
	put(b, 6, 1, DownPawn)
	moves = GenerateMoves(b, SideDown)
	mustNotHave(t, moves, at(7, 2), at(5, 0))
	mustHave(t, moves, at(7, 2), at(5, 4))

	// A bishop on the river bank may not cross it.
	b = NewEmpty()
	put(b, 5, 2, DownBishop)
	moves = GenerateMoves(b, SideDown)
	mustNotHave(t, moves, at(5, 2), at(3, 0))
	mustNotHave(t, moves, at(5, 2), at(3, 4))
	mustHave(t, moves, at(5, 2), at(7, 0))
	mustHave(t, moves, at(5, 2), at(7, 4))
}

func TestAdvisorConfinedToPalace(t *testing.T) {
	b := NewEmpty()
	put(b, 8, 4, DownAdvisor)
	moves := GenerateMoves(b, SideDown)
	for _, to := range []Pos{at(7, 3), at(7, 5), at(9, 3), at(9, 5)} {
		mustHave(t, moves, at(8, 4), to)
	}
	if got := len(moves); got != 4 {
		t.Fatalf("centered advisor has %d moves, want 4", got)
	}

	b = NewEmpty()
	put(b, 9, 3, DownAdvisor)
	moves = GenerateMoves(b, SideDown)
	mustHave(t, moves, at(9, 3), at(8, 4))
	if got := len(moves); got != 1 {
		t.Fatalf("corner advisor has %d moves, want 1", got)
	}
}

func TestGeneralConfinedToPalace(t *testing.T) {
	b := NewEmpty()
	put(b, 9, 4, DownGeneral)
	moves := GenerateMoves(b, SideDown)
	mustHave(t, moves, at(9, 4), at(8, 4))
	mustHave(t, moves, at(9, 4), at(9, 3))
	mustHave(t, moves, at(9, 4), at(9, 5))
	mustNotHave(t, moves, at(9, 4), at(9, 2))
}

func TestFacingGenerals(t *testing.T) {
	b := NewEmpty()
	put(b, 0, 4, UpGeneral)
	put(b, 9, 4, DownGeneral)

	upMoves := GenerateMoves(b, SideUp)
	mustHave(t, upMoves, at(0, 4), at(9, 4))
	downMoves := GenerateMoves(b, SideDown)
	mustHave(t, downMoves, at(9, 4), at(0, 4))

	// Any piece on the file breaks the line.
	put(b, 5, 4, DownPawn)
	upMoves = GenerateMoves(b, SideUp)
	mustNotHave(t, upMoves, at(0, 4), at(9, 4))
	downMoves = GenerateMoves(b, SideDown)
	mustNotHave(t, downMoves, at(9, 4), at(0, 4))
}

func TestApplyUndoOverGeneratedMoves(t *testing.T) {
	// The round-trip property on a busier midgame-like position.
	b := New()
	b.Apply(Move{From: at(7, 1), To: at(7, 4)})
	b.Apply(Move{From: at(2, 1), To: at(2, 4)})
	want := b.Clone()

	for _, side := range []Side{SideUp, SideDown} {
		for _, mv := range GenerateMoves(b, side) {
			b.Apply(mv)
			b.Undo()
			if !sameBoards(b, want) {
				t.Fatalf("board differs after apply+undo of %v", mv)
			}
		}
	}
}
