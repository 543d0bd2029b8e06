package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogEmailSenderOnlyLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sender := NewLogEmailSender(zap.New(core))

	err := sender.Send("runner@example.com", "Welcome", "hello")

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "sending email", entry.Message)
	assert.Equal(t, "runner@example.com", entry.ContextMap()["to"])
	assert.Equal(t, "Welcome", entry.ContextMap()["subject"])
}
