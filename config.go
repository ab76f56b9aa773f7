package cflow2d

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Config holds every directive from the fixed-order configuration file
// (spec §6). Parsing is strict about order: the implementation reads one
// non-blank, non-comment line per directive in the sequence the spec
// fixes, rather than using a key=value format, mirroring the kind of
// line-oriented custom config readers common in small Go numerical tools.
type Config struct {
	SchemeName         string
	Interpolant        string
	CFL                float64
	TimeSteppingMethod string
	GlobalTimeStep     float64 // 0 if absent
	TimeStepAccuracy   string
	Tolerance          float64
	GridFile           string
	IBFile             string // "" if absent ("~")
	StateLoadFile      string // "" if absent ("~")
	MaxIters           int
	CheckpointIter     int
	DebugLevel         int

	Gamma          float64
	RGas           float64
	RhoInf         float64
	UInf           float64
	VInf           float64
	PInf           float64
	MuRef          float64
	TRef           float64
	SutherlandTemp float64
	Pr             float64
}

// absent is the sentinel token meaning "value not supplied" (spec §6).
const absent = "~"

// ReadConfigFile parses the fixed-order directive file at path.
func ReadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newErr(IOError, "config", "ReadConfigFile", "could not open config file", err)
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig parses the fixed-order directive stream from r.
func ParseConfig(r io.Reader) (*Config, error) {
	lines, err := nonBlankLines(r)
	if err != nil {
		return nil, err
	}
	cur := 0
	next := func() (string, error) {
		if cur >= len(lines) {
			return "", newErr(ConfigError, "config", "ParseConfig", "unexpected end of configuration file", nil)
		}
		line := lines[cur]
		cur++
		return line, nil
	}
	nextFloat := func() (float64, error) {
		line, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return 0, newErr(ConfigError, "config", "ParseConfig", "expected a number, got \""+line+"\"", err)
		}
		return v, nil
	}
	nextInt := func() (int, error) {
		line, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return 0, newErr(ConfigError, "config", "ParseConfig", "expected an integer, got \""+line+"\"", err)
		}
		return v, nil
	}
	nextFile := func() (string, error) {
		line, err := next()
		if err != nil {
			return "", err
		}
		if line == absent {
			return "", nil
		}
		return line, nil
	}

	cfg := &Config{}
	var err2 error
	if cfg.SchemeName, err2 = next(); err2 != nil {
		return nil, err2
	}
	if cfg.Interpolant, err2 = next(); err2 != nil {
		return nil, err2
	}
	if cfg.CFL, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}

	// time_stepping_method [global_time_step] share one line.
	line, err2 := next()
	if err2 != nil {
		return nil, err2
	}
	fields := strings.Fields(line)
	cfg.TimeSteppingMethod = fields[0]
	if len(fields) > 1 {
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, newErr(ConfigError, "config", "ParseConfig", "malformed global_time_step", err)
		}
		cfg.GlobalTimeStep = v
	}

	if cfg.TimeStepAccuracy, err2 = next(); err2 != nil {
		return nil, err2
	}
	if cfg.Tolerance, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.GridFile, err2 = next(); err2 != nil {
		return nil, err2
	}
	if cfg.IBFile, err2 = nextFile(); err2 != nil {
		return nil, err2
	}
	if cfg.StateLoadFile, err2 = nextFile(); err2 != nil {
		return nil, err2
	}
	if cfg.MaxIters, err2 = nextInt(); err2 != nil {
		return nil, err2
	}
	if cfg.CheckpointIter, err2 = nextInt(); err2 != nil {
		return nil, err2
	}
	if cfg.DebugLevel, err2 = nextInt(); err2 != nil {
		return nil, err2
	}
	if cfg.Gamma, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.RGas, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.RhoInf, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.UInf, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.VInf, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.PInf, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.MuRef, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.TRef, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.SutherlandTemp, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}
	if cfg.Pr, err2 = nextFloat(); err2 != nil {
		return nil, err2
	}

	return cfg, nil
}

// nonBlankLines returns every line of r with leading/trailing whitespace
// trimmed, skipping blank lines and lines starting with '#'.
func nonBlankLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, newErr(IOError, "config", "nonBlankLines", "error scanning configuration file", err)
	}
	return lines, nil
}

// FreeStream builds the FreeStream reference quadruple from the config.
func (c *Config) FreeStream() FreeStream {
	return FreeStream{Rho: c.RhoInf, U: c.UInf, V: c.VInf, P: c.PInf}
}

// Params builds the thermodynamic Params from the config.
func (c *Config) Params() Params {
	return Params{
		Gamma: c.Gamma, RGas: c.RGas, MuRef: c.MuRef,
		TRef: c.TRef, SutherlandTemp: c.SutherlandTemp, Pr: c.Pr,
	}
}
