package cflow2d

import (
	"strings"
	"testing"
)

const sampleConfig = `
van_leer
muscl
0.8
l
RK4
1e-6
grid.dat
~
~
5000
500
1
1.4
287
1.2
50
0
101325
1.8e-5
288
110.4
0.72
`

func TestParseConfigReadsFixedOrderDirectives(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.SchemeName != "van_leer" || cfg.Interpolant != "muscl" {
		t.Errorf("scheme/interpolant = %q/%q", cfg.SchemeName, cfg.Interpolant)
	}
	if cfg.CFL != 0.8 {
		t.Errorf("CFL = %v, want 0.8", cfg.CFL)
	}
	if cfg.TimeSteppingMethod != "l" {
		t.Errorf("TimeSteppingMethod = %q, want l", cfg.TimeSteppingMethod)
	}
	if cfg.TimeStepAccuracy != "RK4" {
		t.Errorf("TimeStepAccuracy = %q, want RK4", cfg.TimeStepAccuracy)
	}
	if cfg.IBFile != "" || cfg.StateLoadFile != "" {
		t.Errorf("IBFile/StateLoadFile should be empty for '~', got %q/%q", cfg.IBFile, cfg.StateLoadFile)
	}
	if cfg.MaxIters != 5000 || cfg.CheckpointIter != 500 || cfg.DebugLevel != 1 {
		t.Errorf("MaxIters/CheckpointIter/DebugLevel = %d/%d/%d", cfg.MaxIters, cfg.CheckpointIter, cfg.DebugLevel)
	}
	if cfg.Gamma != 1.4 || cfg.RhoInf != 1.2 || cfg.UInf != 50 {
		t.Errorf("Gamma/RhoInf/UInf = %v/%v/%v", cfg.Gamma, cfg.RhoInf, cfg.UInf)
	}
}

func TestParseConfigGlobalTimeStepOnSameLine(t *testing.T) {
	withGlobal := strings.Replace(sampleConfig, "\nl\n", "\ng 0.001\n", 1)
	cfg, err := ParseConfig(strings.NewReader(withGlobal))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.TimeSteppingMethod != "g" || cfg.GlobalTimeStep != 0.001 {
		t.Errorf("method/global = %q/%v, want g/0.001", cfg.TimeSteppingMethod, cfg.GlobalTimeStep)
	}
}

func TestParseConfigTruncatedFileIsAnError(t *testing.T) {
	if _, err := ParseConfig(strings.NewReader("van_leer\nmuscl\n0.8\n")); err == nil {
		t.Fatal("expected an error on a truncated configuration file")
	}
}

func TestParseConfigMalformedNumberIsAnError(t *testing.T) {
	bad := strings.Replace(sampleConfig, "\n0.8\n", "\nnot-a-number\n", 1)
	if _, err := ParseConfig(strings.NewReader(bad)); err == nil {
		t.Fatal("expected an error on a malformed CFL value")
	}
}
