// Package auth handles staff and client authentication and the two session
// records layered on the store.
package auth

import (
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"dfontes/server/internal/models"
	"dfontes/server/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrMissingName        = errors.New("name is required")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email looks like an address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// AdminAccount is the configured staff principal. The hash comes from
// configuration; this layer never sees or stores a plaintext credential.
type AdminAccount struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
}

// Authenticator verifies staff and client credentials and manages their
// sessions.
type Authenticator struct {
	admin    AdminAccount
	verifier CredentialVerifier
	sessions *SessionManager
	clients  *repository.ClientRepository
	logger   *logrus.Logger
}

func NewAuthenticator(admin AdminAccount, verifier CredentialVerifier, sessions *SessionManager, clients *repository.ClientRepository, logger *logrus.Logger) *Authenticator {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Authenticator{
		admin:    admin,
		verifier: verifier,
		sessions: sessions,
		clients:  clients,
		logger:   logger,
	}
}

// Login authenticates the staff principal and starts a 24h session.
func (a *Authenticator) Login(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}
	if !ValidEmail(email) {
		return models.User{}, ErrInvalidEmail
	}

	if !strings.EqualFold(email, a.admin.Email) || !a.verifier.Verify(a.admin.PasswordHash, password) {
		a.logger.WithField("email", email).Warn("Rejected staff login")
		return models.User{}, ErrInvalidCredentials
	}

	user := models.User{
		ID:    a.admin.ID,
		Email: a.admin.Email,
		Name:  a.admin.Name,
		Role:  "admin",
	}
	if _, err := a.sessions.SetStaff(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout ends the staff session. Safe when none is active.
func (a *Authenticator) Logout() {
	a.sessions.ClearStaff()
}

// CurrentUser returns the staff principal of the active session.
func (a *Authenticator) CurrentUser() (models.User, bool) {
	session, ok := a.sessions.Staff()
	if !ok {
		return models.User{}, false
	}
	return session.User, true
}

// IsAdmin reports whether an active staff session carries the admin role.
func (a *Authenticator) IsAdmin() bool {
	user, ok := a.CurrentUser()
	return ok && user.Role == "admin"
}

// RegisterClient validates, hashes the password and stores a new client.
func (a *Authenticator) RegisterClient(client models.Client, password string) (models.Client, error) {
	if client.Name == "" {
		return models.Client{}, ErrMissingName
	}
	if client.Email == "" || password == "" {
		return models.Client{}, ErrMissingCredentials
	}
	if !ValidEmail(client.Email) {
		return models.Client{}, ErrInvalidEmail
	}
	if _, exists := a.clients.ByEmail(client.Email); exists {
		return models.Client{}, ErrEmailTaken
	}

	hash, err := a.verifier.Hash(password)
	if err != nil {
		return models.Client{}, err
	}
	client.ID = 0
	client.PasswordHash = hash
	return a.clients.Save(client)
}

// LoginClient authenticates a registered client and starts a 30-day portal
// session.
func (a *Authenticator) LoginClient(email, password string) (models.Client, error) {
	if email == "" || password == "" {
		return models.Client{}, ErrMissingCredentials
	}
	if !ValidEmail(email) {
		return models.Client{}, ErrInvalidEmail
	}

	client, ok := a.clients.ByEmail(email)
	if !ok || client.PasswordHash == "" || !a.verifier.Verify(client.PasswordHash, password) {
		a.logger.WithField("email", email).Warn("Rejected client login")
		return models.Client{}, ErrInvalidCredentials
	}

	if _, err := a.sessions.SetClient(client); err != nil {
		return models.Client{}, err
	}
	client.PasswordHash = ""
	return client, nil
}

// LogoutClient ends the client session. Safe when none is active.
func (a *Authenticator) LogoutClient() {
	a.sessions.ClearClient()
}

// CurrentClient returns the client snapshot of the active portal session.
func (a *Authenticator) CurrentClient() (models.Client, bool) {
	session, ok := a.sessions.Client()
	if !ok {
		return models.Client{}, false
	}
	return session.Client, true
}
