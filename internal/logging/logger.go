package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"
)

var levelSwitch = mtlog.NewLoggingLevelSwitch(core.InformationLevel)

// Logger is the console logger shared by all components. It writes to stderr so that commands can use stdout
// for their output. Its level can be changed at runtime with SetLevel.
var Logger = newLogger(sinks.NewConsoleSinkWithWriter(os.Stderr))

func newLogger(sink core.LogEventSink) core.Logger {
	return mtlog.New(
		mtlog.WithSink(sink),
		mtlog.WithLevelSwitch(levelSwitch),
	)
}

// ForComponent returns a logger enriched with a static component name.
func ForComponent(name string) core.Logger {
	return Logger.With("component", name)
}

// ParseLevel accepts debug, info, warn and error.
func ParseLevel(name string) (core.LogEventLevel, error) {
	switch strings.ToLower(name) {
	case "debug":
		return core.DebugLevel, nil
	case "info", "information":
		return core.InformationLevel, nil
	case "warn", "warning":
		return core.WarningLevel, nil
	case "error":
		return core.ErrorLevel, nil
	}
	return core.InformationLevel, fmt.Errorf("unknown log level %q", name)
}

func SetLevel(level core.LogEventLevel) {
	levelSwitch.SetLevel(level)
}

// Fatal logs a message template and terminates the process.
func Fatal(logger core.Logger, template string, args ...any) {
	logger.Error(template, args...)
	os.Exit(1)
}
