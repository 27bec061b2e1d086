package main

import (
	"fmt"

	"github.com/fatih/color"

	"cnchess/cnboard"
)

var (
	upPiece   = color.New(color.FgRed, color.Bold)
	downPiece = color.New(color.FgBlue, color.Bold)
	rankLabel = color.New(color.FgYellow, color.Bold)
	fileLabel = color.New(color.FgGreen, color.Bold)
	notice    = color.New(color.FgMagenta, color.Bold)
	highlight = color.New(color.FgYellow, color.Bold)
)

// renderBoard draws the playing area with coordinates: ranks 9..0 down the
// left edge, files a..i underneath, and the river marked between the two
// halves. Up pieces are red, down pieces blue.
func renderBoard(b *cnboard.Board) {
	rank := cnboard.RealRows - 1

	fmt.Print("\n    +----------------------------+\n")
	for r := cnboard.RowBegin; r <= cnboard.RowEnd; r++ {
		if r == cnboard.RiverDown {
			fmt.Print("    |-~-~-~-~-~-~-~-~-~-~-~-~-~-~|\n")
			fmt.Print("    |-~-~-~-~-~-~-~-~-~-~-~-~-~-~|\n")
		}

		fmt.Print(" ")
		rankLabel.Printf("%d", rank)
		rank--
		fmt.Print("  | ")

		for c := cnboard.ColBegin; c <= cnboard.ColEnd; c++ {
			p := b.Get(r, c)
			switch p.Side() {
			case cnboard.SideUp:
				upPiece.Printf(" %c ", byte(p))
			case cnboard.SideDown:
				downPiece.Printf(" %c ", byte(p))
			default:
				fmt.Printf(" %c ", byte(p))
			}
		}

		fmt.Print("|\n")
	}
	fmt.Print("    +----------------------------+\n")
	fileLabel.Print("\n       a  b  c  d  e  f  g  h  i\n\n")
}
