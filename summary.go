package cflow2d

import (
	"os"

	"github.com/BurntSushi/toml"
)

// RunSummary is a small, human-readable record of how a run ended, written
// alongside the final checkpoint. Using a structured format here (rather
// than another fixed-order line format) follows the teacher's own split:
// the primary simulation config is a custom line-oriented format, but
// secondary/auxiliary metadata is round-tripped through TOML.
type RunSummary struct {
	Iterations    int
	SimClock      float64
	Converged     bool
	ResNorm       [4]float64
	ResNormInlet0 [4]float64
}

// WriteRunSummary encodes the solver's terminal state as TOML.
func WriteRunSummary(path string, solver *Solver) error {
	f, err := os.Create(path)
	if err != nil {
		return newErr(IOError, "summary", "WriteRunSummary", "could not create run summary file", err)
	}
	defer f.Close()

	summary := RunSummary{
		Iterations:    solver.Iter,
		SimClock:      solver.SimClock,
		Converged:     solver.converged(),
		ResNorm:       solver.ResNorm,
		ResNormInlet0: solver.ResNorm0,
	}
	if err := toml.NewEncoder(f).Encode(summary); err != nil {
		return newErr(IOError, "summary", "WriteRunSummary", "could not encode run summary", err)
	}
	return nil
}

// ReadRunSummary decodes a previously-written run summary.
func ReadRunSummary(path string) (RunSummary, error) {
	var summary RunSummary
	if _, err := toml.DecodeFile(path, &summary); err != nil {
		return summary, newErr(IOError, "summary", "ReadRunSummary", "could not decode run summary", err)
	}
	return summary, nil
}
