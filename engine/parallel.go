package engine

import (
	"math"

	"golang.org/x/sync/errgroup"

	"cnchess/cnboard"
)

// Root-level fork-join search. The root move list is partitioned into
// contiguous chunks and each chunk is searched to full depth by its own
// worker on a private board clone. Below the root every worker is plain
// sequential alpha-beta; the only synchronization point is the join before
// the merge.

func (s *Searcher) searchParallel(b *cnboard.Board, side cnboard.Side, moves []cnboard.Move, opts Options) chunkResult {
	chunkCount := opts.ChunkCount
	if chunkCount <= 0 {
		chunkCount = DefaultChunkCount
	}

	chunks := splitMoves(moves, chunkCount)
	if len(chunks) == 0 {
		empty := chunkResult{score: math.MaxInt32}
		if side == cnboard.SideDown {
			empty.score = math.MinInt32
		}
		return empty
	}

	results := make([]chunkResult, len(chunks))

	var g errgroup.Group
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			w := &worker{tables: s.tables, board: b.Clone()}
			results[i] = w.searchChunk(side, chunk, opts.Depth)
			return nil
		})
	}
	// Workers never fail; Wait is only the join barrier.
	_ = g.Wait()

	return mergeResults(results, side)
}

// splitMoves partitions moves into at most chunkCount contiguous chunks.
// When there are fewer moves than chunks, every move becomes its own chunk.
// The last chunk absorbs the division remainder.
func splitMoves(moves []cnboard.Move, chunkCount int) [][]cnboard.Move {
	if len(moves) == 0 {
		return nil
	}

	chunkLen := len(moves) / chunkCount
	if chunkLen == 0 {
		chunkLen = 1
		chunkCount = len(moves)
	}

	chunks := make([][]cnboard.Move, 0, chunkCount)
	for i := 0; i < chunkCount-1; i++ {
		chunks = append(chunks, moves[i*chunkLen:(i+1)*chunkLen])
	}
	chunks = append(chunks, moves[(chunkCount-1)*chunkLen:])
	return chunks
}

// mergeResults selects the global best across chunk results in chunk-index
// order, with the same non-strict comparison the root scan uses, so ties go
// to the later chunk.
func mergeResults(results []chunkResult, side cnboard.Side) chunkResult {
	maximizing := side == cnboard.SideDown

	merged := chunkResult{score: math.MaxInt32}
	if maximizing {
		merged.score = math.MinInt32
	}
	for _, r := range results {
		merged.nodes += r.nodes
		if maximizing {
			if r.score >= merged.score {
				merged.score = r.score
				merged.move = r.move
			}
		} else {
			if r.score <= merged.score {
				merged.score = r.score
				merged.move = r.move
			}
		}
	}
	return merged
}
