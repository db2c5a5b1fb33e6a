package log

import (
	"github.com/neuronlabs/uni-logger"
)

var modules = []*ModuleLogger{}

// ModuleLogger is the logger used for getting the specific modules.
type ModuleLogger struct {
	Name           string
	logger         unilogger.LeveledLogger
	isDebugLeveled bool
	isLevelSetter  bool

	levelSetter  unilogger.LevelSetter
	debugLeveled unilogger.DebugLeveledLogger

	currentLevel unilogger.Level
}

// NewModuleLogger creates new module logger for given 'name' of the module and an optional 'logger'.
func NewModuleLogger(name string, moduleLogger ...unilogger.LeveledLogger) *ModuleLogger {
	mLogger := &ModuleLogger{Name: name}
	modules = append(modules, mLogger)

	switch {
	case len(moduleLogger) > 0:
		Debug2f("Module Logger: '%s' set from the argument", name)
		mLogger.logger = moduleLogger[0]
		mLogger.initializeLogger()
		if depthGetter, ok := mLogger.logger.(unilogger.OutputDepthGetter); ok {
			if depthSetter, ok := mLogger.logger.(unilogger.OutputDepthSetter); ok {
				depthSetter.SetOutputDepth(depthGetter.GetOutputDepth() + 1)
			}
		}
	default:
		Debug2f("Module Logger: '%s' as a wrapper over default logger", name)
		mLogger.currentLevel = currentLevel
	}
	return mLogger
}

func (m *ModuleLogger) initializeLogger() {
	if m.logger == nil {
		return
	}

	m.debugLeveled, m.isDebugLeveled = m.logger.(unilogger.DebugLeveledLogger)
	if lGetter, ok := m.logger.(LevelGetter); ok {
		m.currentLevel = lGetter.GetLevel()
	} else {
		m.currentLevel = currentLevel
	}
	m.levelSetter, m.isLevelSetter = m.logger.(unilogger.LevelSetter)
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	return m.currentLevel
}

// SetLevel sets the moduleLogger level.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	Debugf("Setting Module: '%s' Logger level to: '%s'", m.Name, level)
	m.currentLevel = level
	if m.isLevelSetter {
		m.levelSetter.SetLevel(level)
	}
}

// Debug3f writes the formated debug3 log.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	m.logf(LDEBUG3, format, args...)
}

// Debug2f writes the formated debug2 log.
func (m *ModuleLogger) Debug2f(format string, args ...interface{}) {
	m.logf(LDEBUG2, format, args...)
}

// Debugf writes the formated debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	m.logf(LDEBUG, format, args...)
}

// Infof writes the formated info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	m.logf(LINFO, format, args...)
}

// Warningf writes the formated warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	m.logf(LWARNING, format, args...)
}

// Errorf writes the formated error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	m.logf(LERROR, format, args...)
}

// Track writes the trackable definition line at the level derived from its code severity.
func (m *ModuleLogger) Track(def Trackable, args ...interface{}) {
	line, level := trackLine(def, args)
	m.logf(level, "%s", line)
}

// enabled checks if the 'level' passes the module level. Loggers that set the level on their own
// filter the messages themselves.
func (m *ModuleLogger) enabled(level unilogger.Level) bool {
	if m.isLevelSetter {
		return true
	}
	return m.currentLevel == unilogger.UNKNOWN || m.currentLevel <= level
}

func (m *ModuleLogger) logf(level unilogger.Level, format string, args ...interface{}) {
	if !m.enabled(level) {
		return
	}
	format = m.name() + " " + format
	if m.logger == nil {
		writef(level, format, args...)
		return
	}
	dispatch(m.logger, m.debugLeveled, m.isDebugLeveled, level, format, args...)
}

func (m *ModuleLogger) name() string {
	return "[" + m.Name + "]"
}
