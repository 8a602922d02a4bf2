package db

import (
	"github.com/go-xorm/core"
	log "github.com/sirupsen/logrus"
)

// Logger adapts a logrus entry to the xorm logger.
type Logger struct {
	*log.Entry
	level   core.LogLevel
	showSQL bool
}

func NewLogger(entry *log.Entry) *Logger {
	return &Logger{Entry: entry, level: core.LOG_INFO}
}

var levels = map[core.LogLevel]log.Level{
	core.LOG_DEBUG:   log.DebugLevel,
	core.LOG_INFO:    log.InfoLevel,
	core.LOG_WARNING: log.WarnLevel,
	core.LOG_ERR:     log.ErrorLevel,
}

func (l *Logger) SetLevel(level core.LogLevel) {
	l.level = level
}

func (l *Logger) Level() core.LogLevel {
	return l.level
}

// enabled reports whether lvl passes both the xorm and the logrus level.
func (l *Logger) enabled(lvl core.LogLevel) bool {
	if l.level == core.LOG_OFF || lvl < l.level {
		return false
	}
	return l.Entry.Logger.Level >= levels[lvl]
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(core.LOG_DEBUG) {
		l.Entry.Debugf(format, v...)
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(core.LOG_INFO) {
		l.Entry.Infof(format, v...)
	}
}

func (l *Logger) ShowSQL(show ...bool) {
	if len(show) == 0 {
		l.showSQL = true
		return
	}
	l.showSQL = show[0]
}

func (l *Logger) IsShowSQL() bool { return l.showSQL }
