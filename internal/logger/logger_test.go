package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_SetsRole(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	// role is baked into the logger context; a smoke write must not panic
	log.Debug().Msg("smoke")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	log.Error().Msg("must not appear anywhere")
}

func TestGetChildLogger_IndependentContext(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "field")
	})

	assert.NotSame(t, parent, child)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	log := Nop()
	ctx := log.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	log := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(log.WithContext(req.Context()))

	got := FromRequest(req)
	require.NotNil(t, got)
}
