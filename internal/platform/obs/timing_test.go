package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsRequestIDAndError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	ctx := WithRequestID(context.Background(), "req-42")

	func() (err error) {
		defer Time(ctx, log, "missions.list")(&err)
		return errors.New("boom")
	}()

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["req_id"])
	assert.Equal(t, "missions.list", fields["op"])
	assert.Equal(t, "boom", fields["error"])
}

func TestTimeSuccessIsDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	func() (err error) {
		defer Time(context.Background(), zap.New(core), "noop")(&err)
		return nil
	}()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
}

func TestTimeNilLogger(t *testing.T) {
	var err error
	assert.NotPanics(t, func() { Time(context.Background(), nil, "x")(&err) })
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
