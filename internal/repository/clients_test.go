package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dfontes/server/internal/models"
	"dfontes/server/internal/store"
)

func TestClientRepository_SaveInsertStampsCreatedAt(t *testing.T) {
	repo := NewClientRepository(store.NewMemoryStore(), nil)
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return created }

	client, err := repo.Save(models.Client{Name: "Maria Silva", Email: "maria@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), client.ID)
	assert.Equal(t, created, client.CreatedAt)

	second, err := repo.Save(models.Client{Name: "João Souza", Email: "joao@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestClientRepository_UpdatePreservesCreatedAtAndHash(t *testing.T) {
	repo := NewClientRepository(store.NewMemoryStore(), nil)
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return created }

	client, err := repo.Save(models.Client{Name: "Maria Silva", Email: "maria@example.com", PasswordHash: "$2a$10$hash"})
	require.NoError(t, err)

	repo.now = func() time.Time { return created.Add(48 * time.Hour) }
	client.Phone = "(84) 98888-7777"
	client.PasswordHash = ""

	updated, err := repo.Save(client)
	require.NoError(t, err)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, "$2a$10$hash", updated.PasswordHash)
	assert.Equal(t, "(84) 98888-7777", updated.Phone)
}

func TestClientRepository_ByEmail(t *testing.T) {
	repo := NewClientRepository(store.NewMemoryStore(), nil)
	_, err := repo.Save(models.Client{Name: "Maria Silva", Email: "maria@example.com"})
	require.NoError(t, err)

	found, ok := repo.ByEmail("MARIA@example.com")
	assert.True(t, ok)
	assert.Equal(t, "Maria Silva", found.Name)

	_, ok = repo.ByEmail("absent@example.com")
	assert.False(t, ok)
}

func TestClientRepository_PendingUpdateFlow(t *testing.T) {
	repo := NewClientRepository(store.NewMemoryStore(), nil)
	client, err := repo.Save(models.Client{Name: "Maria Silva", Email: "maria@example.com", Phone: "(84) 91111-1111"})
	require.NoError(t, err)

	// The request only records the shadow copy.
	pending, err := repo.RequestUpdate(client.ID, models.ClientUpdate{
		Name: "Maria S. Costa", Email: "maria@example.com", Phone: "(84) 92222-2222",
	})
	require.NoError(t, err)
	require.NotNil(t, pending.PendingUpdate)
	assert.Equal(t, "Maria Silva", pending.Name)
	assert.False(t, pending.PendingUpdate.RequestedAt.IsZero())

	// Approval merges it and clears the shadow.
	approved, err := repo.ApprovePendingUpdate(client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria S. Costa", approved.Name)
	assert.Equal(t, "(84) 92222-2222", approved.Phone)
	assert.Nil(t, approved.PendingUpdate)

	// A second approval has nothing to apply.
	_, err = repo.ApprovePendingUpdate(client.ID)
	assert.ErrorIs(t, err, ErrNoPendingUpdate)
}

func TestClientRepository_RejectPendingUpdate(t *testing.T) {
	repo := NewClientRepository(store.NewMemoryStore(), nil)
	client, err := repo.Save(models.Client{Name: "Maria Silva", Email: "maria@example.com"})
	require.NoError(t, err)

	_, err = repo.RequestUpdate(client.ID, models.ClientUpdate{Name: "Outro Nome", Email: "maria@example.com"})
	require.NoError(t, err)

	rejected, err := repo.RejectPendingUpdate(client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", rejected.Name)
	assert.Nil(t, rejected.PendingUpdate)
}

func TestClientRepository_NotFound(t *testing.T) {
	repo := NewClientRepository(store.NewMemoryStore(), nil)

	_, err := repo.RequestUpdate(42, models.ClientUpdate{})
	assert.ErrorIs(t, err, ErrClientNotFound)
	_, err = repo.ApprovePendingUpdate(42)
	assert.ErrorIs(t, err, ErrClientNotFound)
	_, err = repo.RejectPendingUpdate(42)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
