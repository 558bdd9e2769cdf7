package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultTimeFormat is the timestamp layout used by ConsoleAppender.
const DefaultTimeFormat = "2006-01-02T15:04:05.000Z0700"

// Appender is an output for log entries: a narrow subset of zapcore.Core
// that only has to know how to write and flush, not how to filter levels
// or attach structured context (that remains zap's job).
type Appender interface {
	// Write submits one structured log entry to the appender.
	Write(entry zapcore.Entry, fields []zapcore.Field) error
	// Sync flushes any buffered output. Called at shutdown.
	Sync() error
}

// ConsoleAppender renders entries as tab-separated, human-readable lines.
type ConsoleAppender struct {
	io.Writer
}

// NewStdoutAppender writes to stdout.
func NewStdoutAppender() ConsoleAppender {
	return ConsoleAppender{os.Stdout}
}

// NewWriterAppender writes to an arbitrary io.Writer.
func NewWriterAppender(w io.Writer) ConsoleAppender {
	return ConsoleAppender{w}
}

// NewFileAppender opens filename for rotating, size-bounded logging via
// lumberjack — useful for a traverse long enough to span many macro-steps.
// The returned io.Closer flushes and releases the underlying file.
func NewFileAppender(filename string) (Appender, io.Closer) {
	logger := &lumberjack.Logger{
		Filename: filename,
		MaxSize:  100, // megabytes
		MaxAge:   28,  // days
		Compress: true,
	}
	return NewWriterAppender(logger), logger
}

// Write renders entry and its fields as one tab-separated line.
func (a ConsoleAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	parts := make([]string, 0, 4+len(fields))
	parts = append(parts,
		entry.Time.UTC().Format(DefaultTimeFormat),
		strings.ToUpper(entry.Level.String()),
		entry.LoggerName,
		entry.Message,
	)
	if len(fields) > 0 {
		encoded, err := encodeFields(fields)
		if err != nil {
			parts = append(parts, fmt.Sprintf("logging_err=%v", err))
		} else {
			parts = append(parts, encoded)
		}
	}
	_, err := fmt.Fprintln(a.Writer, strings.Join(parts, "\t"))
	return err
}

// Sync is a no-op for a plain io.Writer.
func (a ConsoleAppender) Sync() error { return nil }

// encodeFields renders fields as a single JSON object, in field order.
func encodeFields(fields []zapcore.Field) (string, error) {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := enc.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return "", err
	}
	return string(buf.Bytes()), nil
}
