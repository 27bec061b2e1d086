package main

import (
	"flag"

	"go.uber.org/zap"

	"cnchess/engine"
)

func main() {
	evalPath := flag.String("eval", "configs/evaluation.yaml", "evaluation tables config file")
	depth := flag.Int("depth", 3, "search depth below each root move")
	seq := flag.Bool("seq", false, "use the sequential search instead of the parallel one")
	chunks := flag.Int("chunks", engine.DefaultChunkCount, "root chunk count for the parallel search")
	verbose := flag.Bool("v", false, "log search diagnostics")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	tables, err := engine.LoadTables(*evalPath)
	if err != nil {
		logger.Fatalw("load evaluation tables", "err", err)
	}

	searcher := engine.NewSearcher(tables, logger)
	opts := engine.Options{
		Depth:      *depth,
		Parallel:   !*seq,
		ChunkCount: *chunks,
	}

	newGame(searcher, opts).run()
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
