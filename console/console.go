package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Level is a diagnostic severity. Levels are ordered from least verbose
// (LevelError) to most verbose (LevelDebug).
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

var levelNames = map[string]Level{
	"error":   LevelError,
	"warning": LevelWarning,
	"info":    LevelInfo,
	"debug":   LevelDebug,
}

// LevelNames lists the accepted verbosity names, least verbose first.
var LevelNames = []string{"error", "warning", "info", "debug"}

// ParseLevel converts a verbosity name (case-insensitive) into a Level.
func ParseLevel(name string) (Level, error) {
	level, known := levelNames[strings.ToLower(name)]
	if !known {
		return LevelError, fmt.Errorf("unknown verbosity level %q (expected one of: %s)",
			name, strings.Join(LevelNames, ", "))
	}
	return level, nil
}

// Console is a leveled diagnostics handle. Unlike a process-wide log
// singleton, a Console is constructed once and passed into each component,
// so the core stays free of ambient state.
type Console struct {
	mx     sync.Mutex // shared across out and errOut to ensure ordering
	p      *message.Printer
	level  Level
	out    io.Writer
	errOut io.Writer
}

// New creates a Console that prints messages of severity <= level.
// out receives warning/info/debug messages, errOut receives errors.
func New(level Level, out, errOut io.Writer) *Console {
	return &Console{
		p:      message.NewPrinter(language.English),
		level:  level,
		out:    out,
		errOut: errOut,
	}
}

// Default returns a Console writing to stdout/stderr at the given level.
func Default(level Level) *Console {
	return New(level, os.Stdout, os.Stderr)
}

// Errorf prints regardless of verbosity, to the error stream.
func (c *Console) Errorf(format string, a ...any) {
	c.mx.Lock()
	_, _ = c.p.Fprintf(c.errOut, "error: "+format, a...)
	c.mx.Unlock()
}

// Warningf prints when verbosity is warning or higher.
func (c *Console) Warningf(format string, a ...any) {
	c.printf(LevelWarning, format, a...)
}

// Infof prints when verbosity is info or higher.
func (c *Console) Infof(format string, a ...any) {
	c.printf(LevelInfo, format, a...)
}

// Debugf prints when verbosity is debug.
func (c *Console) Debugf(format string, a ...any) {
	c.printf(LevelDebug, format, a...)
}

func (c *Console) printf(level Level, format string, a ...any) {
	if level > c.level {
		return
	}
	c.mx.Lock()
	_, _ = c.p.Fprintf(c.out, format, a...)
	c.mx.Unlock()
}
