package log

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var levelNames = map[string]unilogger.Level{
	"debug3":   LDEBUG3,
	"debug2":   LDEBUG2,
	"debug":    LDEBUG,
	"info":     LINFO,
	"warning":  LWARNING,
	"warn":     LWARNING,
	"error":    LERROR,
	"critical": LCRITICAL,
}

// ParseLevel parses the level 'name' case insensitively. Unknown names result in LUNKNOWN level.
func ParseLevel(name string) unilogger.Level {
	if level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return level
	}
	return unilogger.ParseLevel(name)
}

// LevelGetter is the logger that exposes its current level.
type LevelGetter interface {
	GetLevel() unilogger.Level
}

var (
	logger         unilogger.LeveledLogger
	currentLevel   = LINFO
	debugLeveled   unilogger.DebugLeveledLogger
	isDebugLeveled bool
)

// Default creates and sets new unilogger.BasicLogger with writer to 'os.Stderr'.
func Default() {
	New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// New creates new unilogger.BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags'.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// Logger returns default logger.
func Logger() unilogger.LeveledLogger {
	return logger
}

// SetLogger sets the 'log' as the current logger.
func SetLogger(log unilogger.LeveledLogger) {
	logger = log

	if depth, ok := log.(unilogger.OutputDepthGetter); ok {
		if setter, ok := log.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}
	if lvlSetter, ok := log.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}
	debugLeveled, isDebugLeveled = log.(unilogger.DebugLeveledLogger)

	Debugf("New logger set with level: %s", currentLevel)
	for _, m := range modules {
		if m.logger == nil {
			m.SetLevel(currentLevel)
		}
	}
}

// SetLevel sets the level if possible for the logger file.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.New(class.CommonLoggerUnknownLevel, "can't set unknown logger level. provided level is not valid")
	}
	if level == currentLevel {
		Debug3f("Current level the same as the provided: '%s' level.", level)
		return nil
	}

	currentLevel = level
	if logger == nil {
		return nil
	}
	lvl, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return errors.New(class.CommonLoggerNotImplement, "logger doesn't implement LevelSetter interface")
	}
	lvl.SetLevel(currentLevel)
	return nil
}

// SetModulesLevel sets the 'level' for all modules.
func SetModulesLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.New(class.CommonLoggerUnknownLevel, "can't set unknown logger level. provided level is not valid")
	}
	for _, module := range modules {
		module.SetLevel(level)
	}
	return nil
}

// Debug3f writes the formated LDEBUG3 level log.
func Debug3f(format string, args ...interface{}) {
	writef(LDEBUG3, format, args...)
}

// Debug2f writes the formated LDEBUG2 level log.
func Debug2f(format string, args ...interface{}) {
	writef(LDEBUG2, format, args...)
}

// Debugf writes the formated LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	writef(LDEBUG, format, args...)
}

// Infof writes the formated LINFO level log.
func Infof(format string, args ...interface{}) {
	writef(LINFO, format, args...)
}

// Warningf writes the formated LWARNING level log.
func Warningf(format string, args ...interface{}) {
	writef(LWARNING, format, args...)
}

// Errorf writes the formated LERROR level log.
func Errorf(format string, args ...interface{}) {
	writef(LERROR, format, args...)
}

// writef writes the log at given 'level' using the default logger.
func writef(level unilogger.Level, format string, args ...interface{}) {
	if logger == nil || level < currentLevel {
		return
	}
	dispatch(logger, debugLeveled, isDebugLeveled, level, format, args...)
}

// dispatch writes the formatted log to 'l' at the 'level'. Loggers without debug levels write
// LDEBUG3 and LDEBUG2 logs at LDEBUG.
func dispatch(l unilogger.LeveledLogger, dl unilogger.DebugLeveledLogger, isDebugLeveled bool, level unilogger.Level, format string, args ...interface{}) {
	switch level {
	case LDEBUG3:
		if isDebugLeveled {
			dl.Debug3f(format, args...)
			return
		}
		l.Debugf(format, args...)
	case LDEBUG2:
		if isDebugLeveled {
			dl.Debug2f(format, args...)
			return
		}
		l.Debugf(format, args...)
	case LDEBUG:
		l.Debugf(format, args...)
	case LINFO:
		l.Infof(format, args...)
	case LWARNING:
		l.Warningf(format, args...)
	default:
		l.Errorf(format, args...)
	}
}
