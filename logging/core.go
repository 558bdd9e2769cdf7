package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// multiAppenderCore is a zapcore.Core that fans every entry out to a fixed
// set of Appenders, at a fixed minimum level. It carries structured context
// (With) by storing added fields as they are and merging them ahead of each
// entry's own fields at Write time.
type multiAppenderCore struct {
	appenders []Appender
	level     zapcore.LevelEnabler
	context   []zapcore.Field
}

// NewCore builds a zapcore.Core that writes every entry to all of appenders,
// filtering by minLevel.
func NewCore(minLevel zapcore.Level, appenders ...Appender) zapcore.Core {
	return &multiAppenderCore{appenders: appenders, level: minLevel}
}

func (c *multiAppenderCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *multiAppenderCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.context)+len(fields))
	merged = append(merged, c.context...)
	merged = append(merged, fields...)
	return &multiAppenderCore{appenders: c.appenders, level: c.level, context: merged}
}

func (c *multiAppenderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *multiAppenderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	all := make([]zapcore.Field, 0, len(c.context)+len(fields))
	all = append(all, c.context...)
	all = append(all, fields...)
	var firstErr error
	for _, a := range c.appenders {
		if err := a.Write(entry, all); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *multiAppenderCore) Sync() error {
	var firstErr error
	for _, a := range c.appenders {
		if err := a.Sync(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NewSugaredLogger builds a *zap.SugaredLogger that writes through the given
// appenders at minLevel, named name (surfaced as zapcore.Entry.LoggerName).
func NewSugaredLogger(name string, minLevel zapcore.Level, appenders ...Appender) *zap.SugaredLogger {
	core := NewCore(minLevel, appenders...)
	return zap.New(core).Named(name).Sugar()
}
