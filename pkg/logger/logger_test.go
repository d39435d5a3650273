package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Log = zap.NewNop() })

	assert.NoError(t, Init("warn"))
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("loud"))
}
