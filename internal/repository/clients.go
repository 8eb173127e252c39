package repository

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"dfontes/server/internal/models"
	"dfontes/server/internal/store"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrNoPendingUpdate = errors.New("client has no pending update")
)

// ClientRepository owns the client directory, including the pending-update
// approval flow: self-service edits are held in PendingUpdate and only
// merged into the authoritative record when staff approves them.
type ClientRepository struct {
	store  store.Store
	logger *logrus.Logger
	now    func() time.Time
}

func NewClientRepository(st store.Store, logger *logrus.Logger) *ClientRepository {
	if logger == nil {
		logger = defaultLogger()
	}
	return &ClientRepository{store: st, logger: logger, now: time.Now}
}

// List returns all clients in insertion order; an unreadable store is an
// empty directory, not an error.
func (r *ClientRepository) List() []models.Client {
	value, ok, err := r.store.Get(store.KeyClients)
	if err != nil {
		r.logger.WithError(err).Error("Failed to load clients")
		return nil
	}
	if !ok {
		return nil
	}

	var clients []models.Client
	if err := json.Unmarshal([]byte(value), &clients); err != nil {
		r.logger.WithError(err).Error("Failed to parse stored clients")
		return nil
	}
	return clients
}

func (r *ClientRepository) ByID(id int64) (models.Client, bool) {
	for _, c := range r.List() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// ByEmail matches case-insensitively.
func (r *ClientRepository) ByEmail(email string) (models.Client, bool) {
	for _, c := range r.List() {
		if strings.EqualFold(c.Email, email) {
			return c, true
		}
	}
	return models.Client{}, false
}

// Save inserts a client without an id (assigning max+1 and stamping
// CreatedAt once) or replaces an existing one in place. The original
// CreatedAt always survives an update, as does the stored password hash
// when the incoming record carries none.
func (r *ClientRepository) Save(c models.Client) (models.Client, error) {
	clients := r.List()

	if c.ID != 0 {
		for i := range clients {
			if clients[i].ID == c.ID {
				c.CreatedAt = clients[i].CreatedAt
				if c.PasswordHash == "" {
					c.PasswordHash = clients[i].PasswordHash
				}
				clients[i] = c
				break
			}
		}
	} else {
		var maxID int64
		for _, existing := range clients {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		c.ID = maxID + 1
		c.CreatedAt = r.now()
		clients = append(clients, c)
	}

	if err := writeCollection(r.store, store.KeyClients, clients); err != nil {
		r.logger.WithError(err).Error("Failed to save client")
		return models.Client{}, err
	}
	return c, nil
}

// Delete removes a client by id; absent ids are a no-op. Proposals and
// messages referencing the id are left alone and resolve to absent.
func (r *ClientRepository) Delete(id int64) error {
	clients := r.List()
	filtered := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}

	if err := writeCollection(r.store, store.KeyClients, filtered); err != nil {
		r.logger.WithError(err).Error("Failed to delete client")
		return err
	}
	return nil
}

// RequestUpdate records a proposed profile edit for later staff review. It
// never touches the authoritative fields.
func (r *ClientRepository) RequestUpdate(id int64, update models.ClientUpdate) (models.Client, error) {
	client, ok := r.ByID(id)
	if !ok {
		return models.Client{}, ErrClientNotFound
	}

	update.RequestedAt = r.now()
	client.PendingUpdate = &update
	return r.Save(client)
}

// ApprovePendingUpdate merges the pending edit into the authoritative
// record and clears it.
func (r *ClientRepository) ApprovePendingUpdate(id int64) (models.Client, error) {
	client, ok := r.ByID(id)
	if !ok {
		return models.Client{}, ErrClientNotFound
	}
	if client.PendingUpdate == nil {
		return models.Client{}, ErrNoPendingUpdate
	}

	update := client.PendingUpdate
	client.Name = update.Name
	client.Email = update.Email
	client.Phone = update.Phone
	client.Address = update.Address
	client.City = update.City
	client.State = update.State
	client.Interests = update.Interests
	client.PendingUpdate = nil
	return r.Save(client)
}

// RejectPendingUpdate discards the pending edit, leaving the record as-is.
func (r *ClientRepository) RejectPendingUpdate(id int64) (models.Client, error) {
	client, ok := r.ByID(id)
	if !ok {
		return models.Client{}, ErrClientNotFound
	}
	if client.PendingUpdate == nil {
		return models.Client{}, ErrNoPendingUpdate
	}

	client.PendingUpdate = nil
	return r.Save(client)
}
