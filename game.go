package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"cnchess/cnboard"
	"cnchess/engine"
)

// game drives the interactive terminal session. The user plays the down
// side; the engine replies for the up side.
type game struct {
	board      *cnboard.Board
	searcher   *engine.Searcher
	opts       engine.Options
	userSide   cnboard.Side
	engineSide cnboard.Side
	running    bool
}

func newGame(s *engine.Searcher, opts engine.Options) *game {
	return &game{
		board:      cnboard.New(),
		searcher:   s,
		opts:       opts,
		userSide:   cnboard.SideDown,
		engineSide: cnboard.SideUp,
		running:    true,
	}
}

func (g *game) run() {
	renderBoard(g.board)
	fmt.Println("Welcome to cnchess, you play the blue (down) side.")
	fmt.Println("type 'help' to see the help page.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for g.running {
		fmt.Print("Your Turn: ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "":
			continue
		case "help":
			g.showHelp()
			renderBoard(g.board)
		case "undo":
			// Take back a full move pair: the engine's reply and the
			// user's own move.
			g.board.Undo()
			g.board.Undo()
			renderBoard(g.board)
		case "quit", "exit":
			fmt.Println("Bye.")
			return
		case "remake":
			g.board = cnboard.New()
			renderBoard(g.board)
		case "prompt":
			g.showPrompt()
		default:
			g.handleMove(input)
		}
	}
}

func (g *game) handleMove(input string) {
	if !isMoveInput(input) {
		fmt.Println("unknown command")
		fmt.Println()
		return
	}

	mv := parseMove(input)
	if g.board.At(mv.From).Side() != g.userSide {
		fmt.Println("this is not your piece, you cannot move it")
		fmt.Println()
		return
	}
	if !g.isLegal(mv) {
		fmt.Println("this move does not fit the rule")
		fmt.Println()
		return
	}

	g.board.Apply(mv)
	renderBoard(g.board)
	if g.isWin(g.userSide) {
		g.running = false
		highlight.Println("Congratulations! You win!")
		return
	}

	notice.Print("engine")
	fmt.Println(" thinking...")

	start := time.Now()
	reply, _ := g.searcher.FindBestMove(g.board, g.engineSide, g.opts)
	elapsed := time.Since(start)

	piece := g.board.At(reply.From)
	g.board.Apply(reply)
	renderBoard(g.board)

	notice.Print("engine")
	fmt.Printf(" thought %.1f seconds, moves: %s, piece is '%c'\n\n", elapsed.Seconds(), formatMove(reply), byte(piece))

	if g.isWin(g.engineSide) {
		g.running = false
		notice.Println("Sorry, the engine wins!")
	}
}

// isLegal checks the move against the generator's output, the single source
// of truth for legality.
func (g *game) isLegal(mv cnboard.Move) bool {
	for _, m := range cnboard.GenerateMoves(g.board, g.userSide) {
		if m == mv {
			return true
		}
	}
	return false
}

// isWin reports whether s has won: the game ends when either general has
// been captured.
func (g *game) isWin(s cnboard.Side) bool {
	_, upAlive := g.board.FindGeneral(cnboard.SideUp)
	_, downAlive := g.board.FindGeneral(cnboard.SideDown)
	if upAlive && downAlive {
		return false
	}
	if s == cnboard.SideUp {
		return upAlive
	}
	return downAlive
}

func (g *game) showPrompt() {
	start := time.Now()
	mv, _ := g.searcher.FindBestMove(g.board, g.userSide, g.opts)
	elapsed := time.Since(start)

	fmt.Print("maybe you can try: ")
	highlight.Print(formatMove(mv))
	fmt.Printf(", piece is %c, time cost %.1f seconds\n\n", byte(g.board.At(mv.From)), elapsed.Seconds())
}

func (g *game) showHelp() {
	fmt.Println()
	fmt.Println("=======================================")
	fmt.Println("Help Page")
	fmt.Println()
	fmt.Println("    1. help         - this page.")
	fmt.Println("    2. b2e2         - input like this will be parsed as a move.")
	fmt.Println("    3. undo         - undo the previous move.")
	fmt.Println("    4. exit or quit - exit the game.")
	fmt.Println("    5. remake       - remake the game.")
	fmt.Println("    6. prompt       - suggest a move for you.")
	fmt.Println()
	fmt.Println("  The characters on the board have the following meaning:")
	fmt.Println()
	fmt.Println("    P/p -> pawn       C/c -> cannon     R/r -> rook")
	fmt.Println("    N/n -> knight     B/b -> bishop     A/a -> advisor")
	fmt.Println("    G/g -> general    .   -> no piece here")
	fmt.Println()
	fmt.Println("  Upper-case pieces are the engine's, lower-case are yours.")
	fmt.Println("=======================================")
}
