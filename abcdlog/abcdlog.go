// Package abcdlog provides a small leveled logger used to report the
// non-fatal anomalies of spec.md §7 (global collisions, unresolved
// cluster/global collisions) without aborting generation.
//
// Grounded on the teacher pack's apoc/log package: a per-Logger
// level threshold guarding calls into a single wrapped stdlib
// *log.Logger, simplified to this domain's four severities and two
// call shapes (free-text and collision reports).
package abcdlog

import (
	"fmt"
	"io"
	"log"
)

// Level orders logger severities; a message below the logger's
// configured Level is dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger wraps a standard library *log.Logger with a severity
// threshold. The zero value is not usable; construct with New.
type Logger struct {
	out   *log.Logger
	level Level
}

// New returns a Logger writing to w, dropping messages below level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }

// CollisionReport logs one of spec.md §7's non-fatal anomaly classes:
// kind names the class ("unresolved cluster collisions", "unresolved
// global collisions"), unresolved is the count left unplaced, and total
// is the degree sum Σw; the logged fraction is 2·unresolved/total.
func (l *Logger) CollisionReport(kind string, unresolved, total int) {
	if unresolved == 0 {
		return
	}
	frac := 0.0
	if total > 0 {
		frac = 2 * float64(unresolved) / float64(total)
	}
	l.Warn("%s: count=%d fraction=%.4f", kind, unresolved, frac)
}
