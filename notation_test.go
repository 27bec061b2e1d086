package main

import (
	"testing"

	"cnchess/cnboard"
)

func TestParseMoveMapsFilesAndRanks(t *testing.T) {
	// Rank 9 is the up side's back rank, file a the leftmost column.
	mv := parseMove("a9i0")
	want := cnboard.Move{
		From: cnboard.Pos{Row: cnboard.RowBegin, Col: cnboard.ColBegin},
		To:   cnboard.Pos{Row: cnboard.RowEnd, Col: cnboard.ColEnd},
	}
	if mv != want {
		t.Fatalf("parseMove(a9i0) = %v, want %v", mv, want)
	}

	mv = parseMove("b2e2")
	if mv.From.Row != cnboard.RowBegin+7 || mv.From.Col != cnboard.ColBegin+1 {
		t.Fatalf("parseMove(b2e2) from = %v", mv.From)
	}
	if mv.To.Row != cnboard.RowBegin+7 || mv.To.Col != cnboard.ColBegin+4 {
		t.Fatalf("parseMove(b2e2) to = %v", mv.To)
	}
}

func TestFormatMoveRoundTrip(t *testing.T) {
	for _, s := range []string{"a0a9", "b2e2", "i9a0", "e3e4", "h7h4"} {
		if got := formatMove(parseMove(s)); got != s {
			t.Fatalf("round trip of %q gave %q", s, got)
		}
	}
}

func TestRoundTripOverGeneratedMoves(t *testing.T) {
	b := cnboard.New()
	for _, mv := range cnboard.GenerateMoves(b, cnboard.SideDown) {
		s := formatMove(mv)
		if !isMoveInput(s) {
			t.Fatalf("formatted move %q does not look like move input", s)
		}
		if got := parseMove(s); got != mv {
			t.Fatalf("round trip of %v gave %v", mv, got)
		}
	}
}

func TestIsMoveInputRejectsJunk(t *testing.T) {
	for _, s := range []string{"", "b2", "undo", "j0a0", "a:b2", "b2eX", "22e2"} {
		if isMoveInput(s) {
			t.Fatalf("isMoveInput(%q) = true", s)
		}
	}
	for _, s := range []string{"b2e2", "a0a1", "i9i8", "b2e2x"} {
		if !isMoveInput(s) {
			t.Fatalf("isMoveInput(%q) = false", s)
		}
	}
}
