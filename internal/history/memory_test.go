package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

func TestMemoryStore_AppendAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := models.Email{
		ID:     "1",
		From:   "alice@example.com",
		To:     "bob@example.com",
		Status: models.EmailStatusSent,
		SentAt: time.Now().UTC(),
	}
	second := models.Email{
		ID:     "2",
		From:   "carol@example.com",
		To:     "bob@example.com",
		Status: models.EmailStatusFailed,
		SentAt: time.Now().UTC(),
	}

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)

	alice, err := store.List(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, alice, 1)
	assert.Equal(t, models.EmailStatusSent, alice[0].Status)

	nobody, err := store.List(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, nobody)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, models.Email{ID: "1", From: "a@example.com"}))

	list, err := store.List(ctx, "")
	require.NoError(t, err)
	list[0].ID = "mutated"

	again, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "1", again[0].ID)
}
