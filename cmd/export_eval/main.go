// Command export_eval writes the built-in default evaluation tables to a
// config file in the format the game loads at startup. Use it to get a
// starting point for hand-tuning piece and position values.
package main

import (
	"flag"
	"fmt"
	"os"

	"cnchess/engine"
)

func main() {
	out := flag.String("out", "configs/evaluation.yaml", "output path")
	flag.Parse()

	if err := engine.ExportConfig(engine.DefaultTables(), *out); err != nil {
		fmt.Fprintln(os.Stderr, "export evaluation config:", err)
		os.Exit(1)
	}
	fmt.Println("wrote", *out)
}
