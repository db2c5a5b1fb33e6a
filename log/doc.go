// Package log contains the leveled logger used by the trackable packages. It wraps the
// unilogger.LeveledLogger set as the package default and allows to create module loggers.
// The Track functions write the trackable message definitions at the level derived from
// their tracking code severity.
package log
