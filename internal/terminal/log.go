package terminal

import (
	"fmt"
)

// LogLevel is the level of a terminal log
type LogLevel string

// set of supported log levels
const (
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
	LogLevelWarn  LogLevel = "warn"
	LogLevelDebug LogLevel = "debug"
)

// LogData produces the log data
type LogData interface {
	Message() (string, error)
}

// formattedData is log data whose output depends on the ui config
type formattedData interface {
	LogData
	Render(config UIConfig) (string, error)
}

// Log is a terminal log
type Log struct {
	Level LogLevel
	Data  LogData
}

// NewDebugLog creates a new debug log with a text message
func NewDebugLog(format string, args ...interface{}) Log {
	return newLog(LogLevelDebug, newTextMessage(format, args...))
}

// NewTextLog creates a new log with a text message
func NewTextLog(format string, args ...interface{}) Log {
	return newLog(LogLevelInfo, newTextMessage(format, args...))
}

// NewListLog creates a new log with a list
func NewListLog(message string, data ...interface{}) Log {
	return newLog(LogLevelInfo, newList(message, data))
}

// NewResponseLog creates a new log with an API response
func NewResponseLog(env Envelope) Log {
	return newLog(LogLevelInfo, responseDocument{env})
}

// NewErrorLog creates a new error log
func NewErrorLog(err error) Log {
	return newLog(LogLevelError, errorMessage{err})
}

// NewWarningLog creates a new warning log
func NewWarningLog(format string, args ...interface{}) Log {
	return newLog(LogLevelWarn, newTextMessage(format, args...))
}

func newLog(level LogLevel, data LogData) Log {
	return Log{level, data}
}

// Print produces the log output based on the provided ui config
func (l Log) Print(config UIConfig) (string, error) {
	if l.Data == nil {
		return "", fmt.Errorf("cannot print a %s log without data", l.Level)
	}
	if data, ok := l.Data.(formattedData); ok {
		return data.Render(config)
	}
	return l.Data.Message()
}
