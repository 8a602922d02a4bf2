package hooks

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook records the call site of every log entry under Field.
type Hook struct {
	Field  string
	Depth  int // path segments kept, zero keeps the full path
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	entry.Data[hook.Field] = hook.caller()
	return nil
}

func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  "source",
		Depth:  2,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

func (hook *Hook) caller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !internal(f.Function) {
			return fmt.Sprintf("%s:%d", trim(f.File, hook.Depth), f.Line)
		}
		if !more {
			return ""
		}
	}
}

func internal(fn string) bool {
	return strings.Contains(fn, "sirupsen/logrus") || strings.Contains(fn, "/internal/hooks.(*Hook)")
}

func trim(file string, depth int) string {
	if depth <= 0 {
		return file
	}
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= depth {
				return file[i+1:]
			}
		}
	}
	return file
}
