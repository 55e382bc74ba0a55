package util

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

// Logger is a leveled wrapper over the standard logger.
type Logger struct {
	level       LogLevel
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

func NewLogger(level string) *Logger {
	return newLogger(parseLogLevel(level), os.Stdout, os.Stderr)
}

func NewDiscardLogger() *Logger {
	return newLogger(LevelInfo, ioutil.Discard, ioutil.Discard)
}

func newLogger(level LogLevel, out, errOut io.Writer) *Logger {
	flags := log.Lshortfile | log.LstdFlags
	return &Logger{
		level:       level,
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.errorLogger.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Output(2, fmt.Sprintf(format, v...))
}
