package repository

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"dfontes/server/internal/models"
	"dfontes/server/internal/store"
)

// PropertyRepository owns the listings collection. A missing or unreadable
// store yields the seed catalogue instead of an error.
type PropertyRepository struct {
	store  store.Store
	logger *logrus.Logger
}

func NewPropertyRepository(st store.Store, logger *logrus.Logger) *PropertyRepository {
	if logger == nil {
		logger = defaultLogger()
	}
	return &PropertyRepository{store: st, logger: logger}
}

// List returns all properties in insertion order. A first read seeds the
// store with the default catalogue; a corrupt value falls back to it.
func (r *PropertyRepository) List() []models.Property {
	value, ok, err := r.store.Get(store.KeyProperties)
	if err != nil {
		r.logger.WithError(err).Error("Failed to load properties")
		return seedProperties()
	}
	if !ok {
		seed := seedProperties()
		if err := writeCollection(r.store, store.KeyProperties, seed); err != nil {
			r.logger.WithError(err).Error("Failed to seed properties")
		}
		return seed
	}

	var properties []models.Property
	if err := json.Unmarshal([]byte(value), &properties); err != nil {
		r.logger.WithError(err).Error("Failed to parse stored properties")
		return seedProperties()
	}
	return properties
}

// ByID looks up a property; the second return reports presence.
func (r *PropertyRepository) ByID(id int64) (models.Property, bool) {
	for _, p := range r.List() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

// Save inserts p when it carries no id (assigning max existing id + 1) and
// otherwise replaces the stored property in place. IDs are stable once
// assigned. Status defaults to available on insert.
func (r *PropertyRepository) Save(p models.Property) (models.Property, error) {
	properties := r.List()

	if p.ID != 0 {
		for i := range properties {
			if properties[i].ID == p.ID {
				properties[i] = p
				break
			}
		}
	} else {
		var maxID int64
		for _, existing := range properties {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		p.ID = maxID + 1
		if p.Status == "" {
			p.Status = models.StatusAvailable
		}
		properties = append(properties, p)
	}

	if err := writeCollection(r.store, store.KeyProperties, properties); err != nil {
		r.logger.WithError(err).Error("Failed to save property")
		return models.Property{}, err
	}
	return p, nil
}

// Delete removes a property by id; absent ids are a no-op.
func (r *PropertyRepository) Delete(id int64) error {
	properties := r.List()
	filtered := properties[:0]
	for _, p := range properties {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}

	if err := writeCollection(r.store, store.KeyProperties, filtered); err != nil {
		r.logger.WithError(err).Error("Failed to delete property")
		return err
	}
	return nil
}
