package main

import "cnchess/cnboard"

// Move text notation: four characters <file><rank><file><rank>, with files
// a..i left to right and ranks 0..9, rank 9 being the up side's back rank.
// The conversion to grid coordinates lives here in the presentation layer;
// the core packages only see rows and columns.

func isMoveInput(s string) bool {
	if len(s) < 4 {
		return false
	}
	return s[0] >= 'a' && s[0] <= 'i' &&
		s[1] >= '0' && s[1] <= '9' &&
		s[2] >= 'a' && s[2] <= 'i' &&
		s[3] >= '0' && s[3] <= '9'
}

// parseMove converts text like "b2e2" to grid coordinates. The input must
// already satisfy isMoveInput.
func parseMove(s string) cnboard.Move {
	return cnboard.Move{
		From: cnboard.Pos{
			Row: cnboard.RowBegin + 9 - int(s[1]-'0'),
			Col: cnboard.ColBegin + int(s[0]-'a'),
		},
		To: cnboard.Pos{
			Row: cnboard.RowBegin + 9 - int(s[3]-'0'),
			Col: cnboard.ColBegin + int(s[2]-'a'),
		},
	}
}

// formatMove renders a move back into the text notation.
func formatMove(m cnboard.Move) string {
	return string([]byte{
		byte(m.From.Col-cnboard.ColBegin) + 'a',
		byte(9-(m.From.Row-cnboard.RowBegin)) + '0',
		byte(m.To.Col-cnboard.ColBegin) + 'a',
		byte(9-(m.To.Row-cnboard.RowBegin)) + '0',
	})
}
