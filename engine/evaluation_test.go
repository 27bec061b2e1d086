package engine

import (
	"testing"

	"cnchess/cnboard"
)

func TestStartPositionIsBalanced(t *testing.T) {
	// The default tables are side-mirrored, so the symmetric starting
	// position must evaluate to exactly 0.
	b := cnboard.New()
	if got := Evaluate(b, DefaultTables()); got != 0 {
		t.Fatalf("start position evaluates to %d, want 0", got)
	}
}

func TestCaptureShiftsScore(t *testing.T) {
	tables := DefaultTables()
	b := cnboard.NewEmpty()
	b.SetPiece(cnboard.RowBegin+5, cnboard.ColBegin+4, cnboard.DownRook)
	b.SetPiece(cnboard.RowBegin+2, cnboard.ColBegin+4, cnboard.UpKnight)

	before := Evaluate(b, tables)
	b.Apply(cnboard.Move{
		From: cnboard.Pos{Row: cnboard.RowBegin + 5, Col: cnboard.ColBegin + 4},
		To:   cnboard.Pos{Row: cnboard.RowBegin + 2, Col: cnboard.ColBegin + 4},
	})
	after := Evaluate(b, tables)

	// Capturing an up piece must move the score toward the down side.
	if after <= before {
		t.Fatalf("score did not improve for down after capture: before %d, after %d", before, after)
	}

	b.Undo()
	if got := Evaluate(b, tables); got != before {
		t.Fatalf("score after undo %d, want %d", got, before)
	}
}

func TestEvaluateWithoutTablesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Evaluate with nil tables did not panic")
		}
	}()
	Evaluate(cnboard.New(), nil)
}
