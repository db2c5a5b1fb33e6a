package registry

import (
	"strings"
)

// Code is the stable, unique tracking code of a definition - i.e. 'CONJ00003D'.
// By convention its last letter denotes the Severity.
type Code string

// Severity gets the severity denoted by the code's trailing letter.
func (c Code) Severity() Severity {
	if c == "" {
		return SeverityUnknown
	}
	return severityLetters[c[len(c)-1]]
}

// String implements fmt.Stringer interface.
func (c Code) String() string {
	return string(c)
}

// Severity is the conventional category of a tracking code.
type Severity int

// Enumerate known severities.
const (
	SeverityUnknown Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityFatal
)

var severityLetters = map[byte]Severity{
	'D': SeverityDebug,
	'I': SeverityInfo,
	'W': SeverityWarning,
	'E': SeverityError,
	'F': SeverityFatal,
}

var severityNames = map[Severity]string{
	SeverityUnknown: "unknown",
	SeverityDebug:   "debug",
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
	SeverityFatal:   "fatal",
}

// Letter gets the code suffix letter of the severity. Returns 0 for the SeverityUnknown.
func (s Severity) Letter() byte {
	for letter, severity := range severityLetters {
		if severity == s {
			return letter
		}
	}
	return 0
}

// String implements fmt.Stringer interface.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return severityNames[SeverityUnknown]
}

// ParseSeverity parses the severity name or its code letter. Unrecognized names are
// SeverityUnknown.
func ParseSeverity(name string) Severity {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 1 {
		return severityLetters[strings.ToUpper(name)[0]]
	}
	for severity, severityName := range severityNames {
		if severityName == name {
			return severity
		}
	}
	return SeverityUnknown
}
