package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetDefaults(t *testing.T) {
	env := newTestEnv(t)

	s, err := env.settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.BufferHours)
	assert.Equal(t, "week", s.Granularity)
}

func TestSettingsService_SetBufferHours(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	s, err := env.settings.SetBufferHours(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 8.0, s.BufferHours)

	s, err = env.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.0, s.BufferHours)
}

func TestSettingsService_SetBufferHours_Bounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.settings.SetBufferHours(ctx, -1)
	assert.ErrorContains(t, err, "between 0 and 24")

	_, err = env.settings.SetBufferHours(ctx, 25)
	assert.ErrorContains(t, err, "between 0 and 24")

	_, err = env.settings.SetBufferHours(ctx, 0)
	assert.NoError(t, err, "zero disables the buffer and is allowed")

	_, err = env.settings.SetBufferHours(ctx, 24)
	assert.NoError(t, err)
}

func TestSettingsService_SetGranularity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	s, err := env.settings.SetGranularity(ctx, "quarter")
	require.NoError(t, err)
	assert.Equal(t, "quarter", s.Granularity)

	_, err = env.settings.SetGranularity(ctx, "fortnight")
	assert.ErrorContains(t, err, `unknown granularity "fortnight"`)
}
