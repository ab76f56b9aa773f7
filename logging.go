package cflow2d

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logFields is a short alias so call sites don't need to import logrus
// just to build a field set.
type logFields = logrus.Fields

// NewLogger builds a logrus logger leveled from the config's debug_level
// directive (spec §6, §7): 0 disables everything but warnings and errors,
// higher values progressively unlock info, debug and trace-level detail,
// mirroring the verbosity knob the teacher's CLI layer exposes.
func NewLogger(debugLevel int) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}

	switch {
	case debugLevel <= 0:
		log.Level = logrus.WarnLevel
	case debugLevel == 1:
		log.Level = logrus.InfoLevel
	case debugLevel <= 4:
		log.Level = logrus.DebugLevel
	default:
		log.Level = logrus.TraceLevel
	}
	return log
}
