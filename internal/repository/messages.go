package repository

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"dfontes/server/internal/models"
	"dfontes/server/internal/store"
)

// MessageRepository owns contact-form messages. Anonymous messages carry no
// client id.
type MessageRepository struct {
	store  store.Store
	logger *logrus.Logger
	now    func() time.Time
}

func NewMessageRepository(st store.Store, logger *logrus.Logger) *MessageRepository {
	if logger == nil {
		logger = defaultLogger()
	}
	return &MessageRepository{store: st, logger: logger, now: time.Now}
}

func (r *MessageRepository) List() []models.Message {
	value, ok, err := r.store.Get(store.KeyMessages)
	if err != nil {
		r.logger.WithError(err).Error("Failed to load messages")
		return nil
	}
	if !ok {
		return nil
	}

	var messages []models.Message
	if err := json.Unmarshal([]byte(value), &messages); err != nil {
		r.logger.WithError(err).Error("Failed to parse stored messages")
		return nil
	}
	return messages
}

// ByClient returns the messages tied to a client, in insertion order.
func (r *MessageRepository) ByClient(clientID int64) []models.Message {
	var out []models.Message
	for _, m := range r.List() {
		if m.ClientID != nil && *m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out
}

// Save inserts a message without an id, stamping CreatedAt, or replaces an
// existing one in place, stamping UpdatedAt.
func (r *MessageRepository) Save(m models.Message) (models.Message, error) {
	messages := r.List()

	if m.ID != 0 {
		now := r.now()
		m.UpdatedAt = &now
		for i := range messages {
			if messages[i].ID == m.ID {
				m.CreatedAt = messages[i].CreatedAt
				messages[i] = m
				break
			}
		}
	} else {
		var maxID int64
		for _, existing := range messages {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		m.ID = maxID + 1
		m.CreatedAt = r.now()
		messages = append(messages, m)
	}

	if err := writeCollection(r.store, store.KeyMessages, messages); err != nil {
		r.logger.WithError(err).Error("Failed to save message")
		return models.Message{}, err
	}
	return m, nil
}

// Delete removes a message by id; absent ids are a no-op.
func (r *MessageRepository) Delete(id int64) error {
	messages := r.List()
	filtered := messages[:0]
	for _, m := range messages {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}

	if err := writeCollection(r.store, store.KeyMessages, filtered); err != nil {
		r.logger.WithError(err).Error("Failed to delete message")
		return err
	}
	return nil
}
