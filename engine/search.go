package engine

import (
	"math"
	"time"

	"go.uber.org/zap"

	"cnchess/cnboard"
)

// DefaultChunkCount is how many root-move chunks the parallel search uses
// when the caller does not choose a count.
const DefaultChunkCount = 32

// Options configures a single FindBestMove call.
type Options struct {
	// Depth is the alpha-beta depth searched below each root move. Depth 0
	// evaluates the position right after every root move.
	Depth int
	// Parallel switches on the root-level fork-join search.
	Parallel bool
	// ChunkCount is the number of root chunks for the parallel search.
	// Zero or negative means DefaultChunkCount.
	ChunkCount int
}

// Searcher finds best moves over a fixed set of evaluation tables. The
// tables are read-only, so one Searcher may serve any number of sequential
// calls; each call owns its board for the duration.
type Searcher struct {
	tables *Tables
	log    *zap.SugaredLogger
}

// NewSearcher returns a Searcher over the given tables. A nil logger
// disables logging.
func NewSearcher(t *Tables, log *zap.SugaredLogger) *Searcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Searcher{tables: t, log: log}
}

// FindBestMove returns the best move for side at the configured depth,
// together with its score. The move is chosen among the side's pseudo-legal
// moves with a last-wins tie-break: when two moves score equally, the one
// generated later is kept. If the side has no moves at all, the zero Move is
// returned.
//
// Calling FindBestMove on a Searcher without tables panics.
func (s *Searcher) FindBestMove(b *cnboard.Board, side cnboard.Side, opts Options) (cnboard.Move, int32) {
	if s.tables == nil {
		panic("engine: search without evaluation tables")
	}

	moves := cnboard.GenerateMoves(b, side)
	start := time.Now()

	var res chunkResult
	if opts.Parallel {
		res = s.searchParallel(b, side, moves, opts)
	} else {
		w := &worker{tables: s.tables, board: b}
		res = w.searchChunk(side, moves, opts.Depth)
	}

	s.log.Debugw("search finished",
		"side", side.String(),
		"depth", opts.Depth,
		"parallel", opts.Parallel,
		"rootMoves", len(moves),
		"nodes", res.nodes,
		"score", res.score,
		"elapsed", time.Since(start),
	)
	return res.move, res.score
}

// chunkResult is the outcome of searching one contiguous run of root moves.
type chunkResult struct {
	move  cnboard.Move
	score int32
	nodes int64
}

// worker runs the recursive search on a board it exclusively owns. The
// sequential search uses one worker on the caller's board; the parallel
// search gives each chunk its own worker on a private clone.
type worker struct {
	tables *Tables
	board  *cnboard.Board
	nodes  int64
}

// searchChunk scans the given root moves to full depth and keeps the
// extremal one. Every root move is searched with the full alpha-beta window.
// The comparison is non-strict, so ties go to the most recently scanned
// move.
func (w *worker) searchChunk(side cnboard.Side, moves []cnboard.Move, depth int) chunkResult {
	maximizing := side == cnboard.SideDown
	// After the root side's move the opponent is on turn, and the opponent
	// maximizes exactly when the root side is the up side.
	childMax := side == cnboard.SideUp

	res := chunkResult{score: math.MaxInt32}
	if maximizing {
		res.score = math.MinInt32
	}

	for _, mv := range moves {
		w.board.Apply(mv)
		v := w.alphabeta(depth, math.MinInt32, math.MaxInt32, childMax)
		w.board.Undo()

		if maximizing {
			if v >= res.score {
				res.score = v
				res.move = mv
			}
		} else {
			if v <= res.score {
				res.score = v
				res.move = mv
			}
		}
	}

	res.nodes = w.nodes
	return res
}

// alphabeta is a depth-limited minimax with alpha-beta pruning. The board is
// mutated in place: every Apply is matched by exactly one Undo before the
// value is folded in, including when the scan stops on a cutoff.
func (w *worker) alphabeta(depth int, alpha, beta int32, maximizing bool) int32 {
	w.nodes++

	if depth == 0 {
		return Evaluate(w.board, w.tables)
	}

	if maximizing {
		best := int32(math.MinInt32)
		for _, mv := range cnboard.GenerateMoves(w.board, cnboard.SideDown) {
			w.board.Apply(mv)
			v := w.alphabeta(depth-1, alpha, beta, false)
			w.board.Undo()

			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := int32(math.MaxInt32)
	for _, mv := range cnboard.GenerateMoves(w.board, cnboard.SideUp) {
		w.board.Apply(mv)
		v := w.alphabeta(depth-1, alpha, beta, true)
		w.board.Undo()

		if v < best {
			best = v
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
