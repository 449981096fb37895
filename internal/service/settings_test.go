package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetCreatesSingleton(t *testing.T) {
	r := newTestRepo(t)
	svc := &SettingsService{Repo: r}
	ctx := context.Background()

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings)

	// a second read returns the same row, not a second one
	settings, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestSettingsService_UpdateMergesKeys(t *testing.T) {
	r := newTestRepo(t)
	svc := &SettingsService{Repo: r}
	ctx := context.Background()

	_, err := svc.Update(ctx, map[string]any{"storeName": "Maaz Web", "currency": "USD"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, map[string]any{"currency": "EUR"})
	require.NoError(t, err)
	assert.Equal(t, "Maaz Web", updated["storeName"])
	assert.Equal(t, "EUR", updated["currency"])

	reread, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maaz Web", reread["storeName"])
	assert.Equal(t, "EUR", reread["currency"])
}
