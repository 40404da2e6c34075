// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

var traceEnabled bool

// InitLogger sets up Apex with a LineHandler on stderr and a log level from
// the LINECMP_LOG env variable. stdout is reserved for the report.
func InitLogger() {
	InitLoggerTo(os.Stderr, os.Getenv("LINECMP_LOG"))
}

// InitLoggerTo is InitLogger with an explicit writer and level name.
func InitLoggerTo(w io.Writer, level string) {
	level = strings.ToLower(level)
	traceEnabled = level == "trace"

	var apexLevel log.Level
	switch level {
	case "trace", "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "fatal":
		apexLevel = log.FatalLevel
	default:
		apexLevel = log.ErrorLevel
	}
	log.SetHandler(&LineHandler{Writer: w})
	log.SetLevel(apexLevel)
}

// LineHandler writes one "<timestamp> <level> <message> <fields>" line per
// entry.
type LineHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *LineHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := e.Message
	level := "?"
	if strings.HasPrefix(message, "TRACE: ") {
		level = "T"
		message = message[7:]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "F"
		}
	}

	for _, name := range e.Fields.Names() {
		message += fmt.Sprintf(" %s=%v", name, e.Fields.Get(name))
	}

	_, err := fmt.Fprintf(h.Writer, "%s %s %s\n", timestamp, level, message)
	return err
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug("TRACE: " + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
