package cli

import (
	"github.com/fatih/color"

	"github.com/neuronlabs/trackable/registry"
)

var severityColors = map[registry.Severity]*color.Color{
	registry.SeverityDebug:   color.New(color.FgCyan),
	registry.SeverityInfo:    color.New(color.FgGreen),
	registry.SeverityWarning: color.New(color.FgYellow),
	registry.SeverityError:   color.New(color.FgRed),
	registry.SeverityFatal:   color.New(color.FgRed, color.Bold),
}

func colorSeverity(s registry.Severity) string {
	c, ok := severityColors[s]
	if !ok {
		return s.String()
	}
	return c.Sprint(s.String())
}
