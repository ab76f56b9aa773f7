// Package cliutil builds the cflow2d command tree. It is kept separate
// from package main so the cobra wiring can be exercised by tests without
// linking a binary (mirroring the teacher's inmaputil split between
// cmd/inmap/main.go and inmaputil/cmd.go).
package cliutil

import (
	"fmt"

	"github.com/flowsolve/cflow2d"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Cfg wraps a *viper.Viper together with the cobra command tree built
// around it, the same shape the teacher's Cfg type takes.
type Cfg struct {
	*viper.Viper

	Root    *cobra.Command
	runCmd  *cobra.Command
	gridCmd *cobra.Command
}

// InitializeConfig builds the Root command and its subcommands.
func InitializeConfig() *Cfg {
	cfg := &Cfg{Viper: viper.New()}

	cfg.Root = &cobra.Command{
		Use:   "cflow2d",
		Short: "A 2-D structured-grid compressible flow solver.",
		Long: `cflow2d integrates the 2-D compressible Euler/Navier-Stokes equations on a
structured curvilinear mesh using flux-vector-splitting schemes.

Configuration is read from the fixed-order directive file named by
--config; command-line flags override a handful of convenience settings
on top of it.`,
		DisableAutoGenTag: true,
	}

	var configPath string
	var checkpointPath string
	var maxItersOverride int

	cfg.runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a simulation to convergence or max_iters.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := cflow2d.ReadConfigFile(configPath)
			if err != nil {
				return err
			}
			if maxItersOverride > 0 {
				config.MaxIters = maxItersOverride
			}
			solver, err := cflow2d.SetupSolver(config)
			if err != nil {
				return err
			}
			defer solver.Destroy()
			if checkpointPath != "" {
				solver.CheckpointPath = checkpointPath
			}
			return solver.Run()
		},
	}
	cfg.runCmd.Flags().StringVar(&configPath, "config", "cflow2d.cfg", "path to the fixed-order configuration file")
	cfg.runCmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "override the configuration file's state_load_file as the checkpoint base path (empty keeps the file value)")
	cfg.runCmd.Flags().IntVar(&maxItersOverride, "max-iters", 0, "override the configuration file's max_iters (0 keeps the file value)")

	var gridImx, gridJmx int
	var gridOut string
	cfg.gridCmd = &cobra.Command{
		Use:   "grid",
		Short: "Emit a uniform rectangular grid file for quick smoke tests.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeUniformGrid(gridOut, gridImx, gridJmx)
		},
	}
	cfg.gridCmd.Flags().IntVar(&gridImx, "imx", 11, "number of vertices in the i direction")
	cfg.gridCmd.Flags().IntVar(&gridJmx, "jmx", 11, "number of vertices in the j direction")
	cfg.gridCmd.Flags().StringVar(&gridOut, "out", "grid.dat", "output grid file path")

	cfg.Root.AddCommand(cfg.runCmd, cfg.gridCmd)
	return cfg
}

func writeUniformGrid(path string, imx, jmx int) error {
	if imx < 2 || jmx < 2 {
		return fmt.Errorf("imx and jmx must each be at least 2")
	}
	m := cflow2d.NewMesh(imx, jmx)
	for i := 0; i < imx; i++ {
		for j := 0; j < jmx; j++ {
			m.GridX[i][j] = float64(i)
			m.GridY[i][j] = float64(j)
		}
	}
	return cflow2d.WriteGridFile(path, m)
}
