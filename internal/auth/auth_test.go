package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dfontes/server/internal/models"
	"dfontes/server/internal/repository"
	"dfontes/server/internal/store"
)

func newTestAuthenticator(t *testing.T) (*Authenticator, *repository.ClientRepository) {
	t.Helper()
	st := store.NewMemoryStore()
	clients := repository.NewClientRepository(st, nil)
	sessions := NewSessionManager(st, nil)

	verifier := BcryptVerifier{Cost: bcrypt.MinCost}
	hash, err := verifier.Hash("admin123")
	require.NoError(t, err)

	admin := AdminAccount{ID: 1, Email: "admin@dfontes.com.br", Name: "Administrador", PasswordHash: hash}
	return NewAuthenticator(admin, verifier, sessions, clients, nil), clients
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("admin@dfontes.com.br"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("a b@example.com"))
	assert.False(t, ValidEmail("a@b"))
}

func TestAuthenticator_Login(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	user, err := a.Login("admin@dfontes.com.br", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	assert.True(t, a.IsAdmin())

	current, ok := a.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Administrador", current.Name)

	a.Logout()
	_, ok = a.CurrentUser()
	assert.False(t, ok)
	assert.False(t, a.IsAdmin())
}

func TestAuthenticator_LoginErrors(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	_, err := a.Login("", "admin123")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = a.Login("admin@dfontes.com.br", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = a.Login("not-an-email", "admin123")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = a.Login("admin@dfontes.com.br", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login("someone@dfontes.com.br", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Failed logins leave no session behind.
	_, ok := a.CurrentUser()
	assert.False(t, ok)
}

func TestAuthenticator_RegisterAndLoginClient(t *testing.T) {
	a, clients := newTestAuthenticator(t)

	client, err := a.RegisterClient(models.Client{Name: "Maria Silva", Email: "maria@example.com"}, "segredo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), client.ID)

	stored, ok := clients.ByID(client.ID)
	require.True(t, ok)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "segredo", stored.PasswordHash, "hash must not be the raw password with a real verifier")

	logged, err := a.LoginClient("maria@example.com", "segredo")
	require.NoError(t, err)
	assert.Empty(t, logged.PasswordHash)

	current, ok := a.CurrentClient()
	require.True(t, ok)
	assert.Equal(t, "Maria Silva", current.Name)

	a.LogoutClient()
	_, ok = a.CurrentClient()
	assert.False(t, ok)
}

func TestAuthenticator_RegisterClientErrors(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	_, err := a.RegisterClient(models.Client{Email: "x@example.com"}, "pw")
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = a.RegisterClient(models.Client{Name: "X", Email: "bad"}, "pw")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = a.RegisterClient(models.Client{Name: "X", Email: "x@example.com"}, "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = a.RegisterClient(models.Client{Name: "X", Email: "x@example.com"}, "pw")
	require.NoError(t, err)
	_, err = a.RegisterClient(models.Client{Name: "Y", Email: "X@example.com"}, "pw")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticator_LoginClientErrors(t *testing.T) {
	a, clients := newTestAuthenticator(t)

	_, err := a.LoginClient("ghost@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// A directory entry without a credential cannot log in.
	_, err = clients.Save(models.Client{Name: "Sem Senha", Email: "nopass@example.com"})
	require.NoError(t, err)
	_, err = a.LoginClient("nopass@example.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPlainVerifier(t *testing.T) {
	v := PlainVerifier{}
	hash, err := v.Hash("segredo")
	require.NoError(t, err)
	assert.True(t, v.Verify(hash, "segredo"))
	assert.False(t, v.Verify(hash, "outro"))
}
