package logging_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarly/authormatch/pkg/logging"
)

func TestTestLoggerCapture(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Info().Str("strategy", "orderedTokens").Msg("Gathering candidates")
	tl.Debug().Msg("second line")

	assert.True(t, tl.Contains("Gathering candidates"))
	assert.True(t, tl.Contains("orderedTokens"))
	assert.Len(t, tl.Lines(), 2)
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("level parsing", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "warn", Output: "discard"})
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "shouty", Output: "discard"})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("disabled", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "off", Output: "discard"})
		assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	})
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	logging.Ctx(ctx).Info().Msg("from context")
	require.True(t, tl.Contains("from context"))

	// Missing or nil context falls back to the default logger.
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, logging.Default(), logging.FromContext(nil)) //nolint:staticcheck // nil context is the case under test
}

func TestContextFields(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithStrategy(ctx, "fullName")
	ctx = logging.WithOperation(ctx, "match")

	logging.Ctx(ctx).Info().Msg("annotated")

	out := tl.Output()
	assert.Contains(t, out, `"strategy":"fullName"`)
	assert.Contains(t, out, `"operation":"match"`)
}
