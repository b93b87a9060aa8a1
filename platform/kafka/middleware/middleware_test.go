package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/btg-configurator/platform/kafka"
	"github.com/you-humble/btg-configurator/platform/logger"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	h := Recovery(logger.NoopLogger{})(func(context.Context, kafka.Message) error {
		panic("boom")
	})

	err := h(context.Background(), kafka.Message{Topic: "configuration.ordered"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestLoggingPassesThrough(t *testing.T) {
	t.Parallel()

	want := errors.New("handler failed")
	h := Logging(logger.NoopLogger{})(func(context.Context, kafka.Message) error {
		return want
	})

	assert.ErrorIs(t, h(context.Background(), kafka.Message{}), want)
}
