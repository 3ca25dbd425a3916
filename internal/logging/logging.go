package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger is the component-tagged logger passed through the render and export steps.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ConsoleLogger writes human-readable, timestamped records through zerolog.
type ConsoleLogger struct{ log zerolog.Logger }

func NewConsoleLogger(w io.Writer) ConsoleLogger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return ConsoleLogger{log: zerolog.New(consoleWriter).With().Timestamp().Logger()}
}

func (l ConsoleLogger) Infof(component string, format string, args ...interface{}) {
	l.log.Info().Str("component", component).Msg(fmt.Sprintf(format, args...))
}

func (l ConsoleLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.Error().Str("component", component).Msg(fmt.Sprintf(format, args...))
}

// OrNoop returns l, or a NoopLogger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}
