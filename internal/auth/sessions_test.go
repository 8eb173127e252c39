package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dfontes/server/internal/models"
	"dfontes/server/internal/store"
)

func testUser() models.User {
	return models.User{ID: 1, Email: "admin@dfontes.com.br", Name: "Administrador", Role: "admin"}
}

func TestSessionManager_StaffLifecycle(t *testing.T) {
	st := store.NewMemoryStore()
	m := NewSessionManager(st, nil)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }

	_, ok := m.Staff()
	assert.False(t, ok)

	created, err := m.SetStaff(testUser())
	require.NoError(t, err)
	assert.Equal(t, start, created.Timestamp)
	assert.Equal(t, start.Add(StaffSessionTTL), created.ExpiresAt)

	session, ok := m.Staff()
	require.True(t, ok)
	assert.Equal(t, "admin@dfontes.com.br", session.User.Email)

	m.ClearStaff()
	_, ok = m.Staff()
	assert.False(t, ok)
}

func TestSessionManager_LazyExpiry(t *testing.T) {
	st := store.NewMemoryStore()
	m := NewSessionManager(st, nil)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }

	_, err := m.SetStaff(testUser())
	require.NoError(t, err)

	// Just inside the TTL the session is still active.
	m.now = func() time.Time { return start.Add(StaffSessionTTL - time.Minute) }
	_, ok := m.Staff()
	assert.True(t, ok)

	// Past the TTL the read purges the record.
	m.now = func() time.Time { return start.Add(StaffSessionTTL + time.Minute) }
	_, ok = m.Staff()
	assert.False(t, ok)

	_, present, err := st.Get(store.KeyStaffSession)
	require.NoError(t, err)
	assert.False(t, present, "expired session must not linger in the store")

	// Idempotent: a second read is still absent.
	_, ok = m.Staff()
	assert.False(t, ok)
}

func TestSessionManager_NoSlidingExpiration(t *testing.T) {
	m := NewSessionManager(store.NewMemoryStore(), nil)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }

	_, err := m.SetStaff(testUser())
	require.NoError(t, err)

	m.now = func() time.Time { return start.Add(12 * time.Hour) }
	session, ok := m.Staff()
	require.True(t, ok)
	// Reading does not push the expiry out.
	assert.Equal(t, start.Add(StaffSessionTTL), session.ExpiresAt)
}

func TestSessionManager_ClientTTLAndSnapshot(t *testing.T) {
	m := NewSessionManager(store.NewMemoryStore(), nil)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }

	created, err := m.SetClient(models.Client{ID: 3, Name: "Maria Silva", Email: "maria@example.com", PasswordHash: "$2a$10$hash"})
	require.NoError(t, err)
	assert.Equal(t, start.Add(ClientSessionTTL), created.ExpiresAt)
	// The stored snapshot never carries the credential hash.
	assert.Empty(t, created.Client.PasswordHash)

	session, ok := m.Client()
	require.True(t, ok)
	assert.Equal(t, "Maria Silva", session.Client.Name)
	assert.Empty(t, session.Client.PasswordHash)
}

func TestSessionManager_CorruptSessionIsClearedOnRead(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(store.KeyStaffSession, "{broken"))

	m := NewSessionManager(st, nil)
	_, ok := m.Staff()
	assert.False(t, ok)

	_, present, err := st.Get(store.KeyStaffSession)
	require.NoError(t, err)
	assert.False(t, present)
}
