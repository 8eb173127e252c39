package auth

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"dfontes/server/internal/models"
	"dfontes/server/internal/store"
)

// Session lifetimes, fixed at creation. Reads never extend them.
const (
	StaffSessionTTL  = 24 * time.Hour
	ClientSessionTTL = 30 * 24 * time.Hour
)

// SessionManager keeps the staff and client session records. Expiry is
// lazy: an expired session is purged on the read that notices it, and the
// read reports it as absent.
type SessionManager struct {
	store  store.Store
	logger *logrus.Logger
	now    func() time.Time
}

func NewSessionManager(st store.Store, logger *logrus.Logger) *SessionManager {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &SessionManager{store: st, logger: logger, now: time.Now}
}

// SetStaff starts a staff session for user.
func (m *SessionManager) SetStaff(user models.User) (models.Session, error) {
	now := m.now()
	session := models.Session{
		User:      user,
		Timestamp: now,
		ExpiresAt: now.Add(StaffSessionTTL),
	}
	if err := m.write(store.KeyStaffSession, session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Staff returns the active staff session, purging it first if it has
// expired or cannot be read.
func (m *SessionManager) Staff() (models.Session, bool) {
	var session models.Session
	if !m.read(store.KeyStaffSession, &session) {
		return models.Session{}, false
	}
	if m.now().After(session.ExpiresAt) {
		m.ClearStaff()
		return models.Session{}, false
	}
	return session, true
}

func (m *SessionManager) ClearStaff() {
	if err := m.store.Remove(store.KeyStaffSession); err != nil {
		m.logger.WithError(err).Error("Failed to clear staff session")
	}
}

// SetClient starts a client portal session.
func (m *SessionManager) SetClient(client models.Client) (models.ClientSession, error) {
	// The snapshot is what the portal sees; the hash stays in the directory.
	client.PasswordHash = ""

	now := m.now()
	session := models.ClientSession{
		Client:    client,
		Timestamp: now,
		ExpiresAt: now.Add(ClientSessionTTL),
	}
	if err := m.write(store.KeyClientSession, session); err != nil {
		return models.ClientSession{}, err
	}
	return session, nil
}

// Client returns the active client session, purging an expired or
// unreadable one.
func (m *SessionManager) Client() (models.ClientSession, bool) {
	var session models.ClientSession
	if !m.read(store.KeyClientSession, &session) {
		return models.ClientSession{}, false
	}
	if m.now().After(session.ExpiresAt) {
		m.ClearClient()
		return models.ClientSession{}, false
	}
	return session, true
}

func (m *SessionManager) ClearClient() {
	if err := m.store.Remove(store.KeyClientSession); err != nil {
		m.logger.WithError(err).Error("Failed to clear client session")
	}
}

func (m *SessionManager) write(key string, session interface{}) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := m.store.Set(key, string(data)); err != nil {
		m.logger.WithError(err).Error("Failed to store session")
		return err
	}
	return nil
}

// read loads a session record; any ambiguity (missing, unreadable,
// corrupt) resolves to absent, clearing the stored value when it is there
// but unusable.
func (m *SessionManager) read(key string, session interface{}) bool {
	value, ok, err := m.store.Get(key)
	if err != nil {
		m.logger.WithError(err).Error("Failed to load session")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(value), session); err != nil {
		m.logger.WithError(err).Error("Failed to parse stored session")
		if err := m.store.Remove(key); err != nil {
			m.logger.WithError(err).Error("Failed to clear corrupt session")
		}
		return false
	}
	return true
}
