package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Siddhartha1011/AI-Astrologer/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	l, err := logging.New(zapcore.WarnLevel, "console")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = logging.New(zapcore.InfoLevel, "xml")
	assert.Error(t, err)
}
