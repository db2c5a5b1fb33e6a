package log

import (
	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/trackable/registry"
)

// Trackable is the definition that could be written as a trackable log line.
type Trackable interface {
	Code() registry.Code
	Format(args ...interface{}) (string, error)
}

// SeverityLevel gets the logger level for the tracking code severity. The fatal severity is
// written at the LERROR level - tracking a message never exits the process.
// Codes without known severity are written at the LINFO level.
func SeverityLevel(s registry.Severity) unilogger.Level {
	switch s {
	case registry.SeverityDebug:
		return LDEBUG
	case registry.SeverityWarning:
		return LWARNING
	case registry.SeverityError, registry.SeverityFatal:
		return LERROR
	default:
		return LINFO
	}
}

// Track writes the trackable definition line 'CODE rendered message' using the default logger.
// If the message could not be rendered with the 'args' the render error is written
// at the LERROR level instead.
func Track(def Trackable, args ...interface{}) {
	line, level := trackLine(def, args)
	writef(level, "%s", line)
}

func trackLine(def Trackable, args []interface{}) (string, unilogger.Level) {
	line, err := def.Format(args...)
	if err != nil {
		return string(def.Code()) + " " + err.Error(), LERROR
	}
	return line, SeverityLevel(def.Code().Severity())
}
