package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mempa-rover/pathplanner/logging"
)

func TestSugaredLoggerWritesThroughAppender(t *testing.T) {
	var buf bytes.Buffer
	appender := logging.NewWriterAppender(&buf)

	logger := logging.NewSugaredLogger("roverplan", zapcore.InfoLevel, appender)
	logger.Infow("iteration complete", "pixel", "3,4")
	require.NoError(t, logger.Sync())

	out := buf.String()
	require.Contains(t, out, "roverplan")
	require.Contains(t, out, "iteration complete")
	require.Contains(t, out, "pixel")
}

func TestSugaredLoggerRespectsMinLevel(t *testing.T) {
	var buf bytes.Buffer
	appender := logging.NewWriterAppender(&buf)

	logger := logging.NewSugaredLogger("roverplan", zapcore.WarnLevel, appender)
	logger.Debug("should not appear")
	logger.Info("also should not appear")

	require.True(t, strings.TrimSpace(buf.String()) == "")
}

func TestMultiAppenderCoreFansOutToAll(t *testing.T) {
	var a, b bytes.Buffer
	logger := logging.NewSugaredLogger("x", zapcore.InfoLevel,
		logging.NewWriterAppender(&a), logging.NewWriterAppender(&b))

	logger.Info("fan out")

	require.Contains(t, a.String(), "fan out")
	require.Contains(t, b.String(), "fan out")
}
