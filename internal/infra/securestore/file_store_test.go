package securestore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"vendorhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*fileStore, string) {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := NewFileStore(dir, "test-passphrase", logger)
	require.NoError(t, err)

	return store.(*fileStore), dir
}

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	user := entity.User{
		ID:         "u1",
		Username:   "ada",
		Email:      "ada@example.com",
		IsLoggedIn: true,
		Token:      "tok",
	}

	require.NoError(t, store.Set(ctx, "user", user))

	var got entity.User
	found, err := store.Get(ctx, "user", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, user, got)
}

func TestFileStore_GetMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	var got entity.User
	found, err := store.Get(context.Background(), "user", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_CorruptRecordFailsClosed(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart", []entity.CartItem{{ProductID: "1", Quantity: 2}}))

	// Flip bytes in the sealed record.
	path := filepath.Join(dir, "cart.sealed")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	var got []entity.CartItem
	found, err := store.Get(ctx, "cart", &got)
	require.NoError(t, err, "a corrupt record must not surface an error")
	assert.False(t, found)
}

func TestFileStore_TruncatedRecordFailsClosed(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.sealed"), []byte("short"), 0o600))

	var got entity.User
	found, err := store.Get(context.Background(), "user", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_WrongPassphraseFailsClosed(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	first, err := NewFileStore(dir, "one", logger)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "user", entity.User{ID: "u1"}))

	second, err := NewFileStore(dir, "two", logger)
	require.NoError(t, err)

	var got entity.User
	found, err := second.Get(ctx, "user", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_Remove(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "location", entity.Location{Latitude: 6.5, Longitude: 3.4}))
	require.NoError(t, store.Remove(ctx, "location"))

	var got entity.Location
	found, err := store.Get(ctx, "location", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Removing an absent key is not an error.
	require.NoError(t, store.Remove(ctx, "location"))
}

func TestFileStore_SaltPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	first, err := NewFileStore(dir, "passphrase", logger)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "hasCompletedOnboarding", true))

	// New instance with the same passphrase reads the same records.
	second, err := NewFileStore(dir, "passphrase", logger)
	require.NoError(t, err)

	var got bool
	found, err := second.Get(ctx, "hasCompletedOnboarding", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, got)
}

func TestNoopStore_NeverPersists(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewNoopStore(logger)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user", entity.User{ID: "u1"}))

	var got entity.User
	found, err := store.Get(ctx, "user", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Remove(ctx, "user"))
}
