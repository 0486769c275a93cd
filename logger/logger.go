// Package logger wraps log/slog with the handlers used by the ciscoreport CLI:
// a colored tint handler on terminals and a plain key=value handler otherwise.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

type Logger struct {
	sl *slog.Logger
}

// New writes to stderr, colored when stderr is a terminal.
func New() *Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return &Logger{sl: slog.New(newTerminalHandler(os.Stderr))}
	}
	return NewText(os.Stderr)
}

func NewText(w io.Writer) *Logger {
	return &Logger{sl: slog.New(newTextHandler(w))}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{sl: l.sl.With(args...)}
}

func (l *Logger) Warning(msg string, args ...any) { l.sl.Warn(msg, args...) }
func (l *Logger) Debug(msg string, args ...any)   { l.sl.Debug(msg, args...) }

func (l *Logger) Infof(format string, a ...any)  { l.sl.Info(fmt.Sprintf(format, a...)) }
func (l *Logger) Debugf(format string, a ...any) { l.sl.Debug(fmt.Sprintf(format, a...)) }
