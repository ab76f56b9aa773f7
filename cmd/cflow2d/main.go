// Command cflow2d is the command-line interface for the cflow2d solver.
package main

import (
	"fmt"
	"os"

	"github.com/flowsolve/cflow2d/internal/cliutil"
)

func main() {
	cfg := cliutil.InitializeConfig()
	if err := cfg.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
