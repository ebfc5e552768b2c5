package loosequad

import (
	"io"
	"os"

	"github.com/tidwall/redlog"
)

// LooseFactor is how much larger a node's loose rectangle is than its cell.
const LooseFactor = 2

// Logger receives the tree's advisory diagnostics. *redlog.Logger can be
// adapted with RedLogger.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

// Options tune a Tree. A nil *Options means DefaultOptions.
type Options struct {
	// Logger receives oversized-item errors and depth-clamp warnings.
	// Nil discards them.
	Logger Logger
}

// DefaultOptions logs to stderr.
func DefaultOptions() *Options {
	return &Options{
		Logger: RedLogger(redlog.New(os.Stderr).Sub('Q')),
	}
}

type redLogger struct {
	l *redlog.Logger
}

// RedLogger adapts a redlog logger. redlog tops out at the warning level, so
// errors are written as warnings with an "error:" prefix.
func RedLogger(l *redlog.Logger) Logger {
	return redLogger{l}
}

func (r redLogger) Errorf(format string, args ...interface{}) {
	r.l.Warningf("error: "+format, args...)
}

func (r redLogger) Warningf(format string, args ...interface{}) {
	r.l.Warningf(format, args...)
}

// NopLogger discards everything.
var NopLogger Logger = RedLogger(redlog.New(io.Discard))
