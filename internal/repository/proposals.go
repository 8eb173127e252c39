package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"dfontes/server/internal/models"
	"dfontes/server/internal/store"
)

var ErrProposalNotFound = errors.New("proposal not found")

// ProposalRepository owns client offers on properties.
type ProposalRepository struct {
	store  store.Store
	logger *logrus.Logger
	now    func() time.Time
}

func NewProposalRepository(st store.Store, logger *logrus.Logger) *ProposalRepository {
	if logger == nil {
		logger = defaultLogger()
	}
	return &ProposalRepository{store: st, logger: logger, now: time.Now}
}

func (r *ProposalRepository) List() []models.Proposal {
	value, ok, err := r.store.Get(store.KeyProposals)
	if err != nil {
		r.logger.WithError(err).Error("Failed to load proposals")
		return nil
	}
	if !ok {
		return nil
	}

	var proposals []models.Proposal
	if err := json.Unmarshal([]byte(value), &proposals); err != nil {
		r.logger.WithError(err).Error("Failed to parse stored proposals")
		return nil
	}
	return proposals
}

func (r *ProposalRepository) ByID(id int64) (models.Proposal, bool) {
	for _, p := range r.List() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Proposal{}, false
}

// ByClient returns the client's proposals in insertion order.
func (r *ProposalRepository) ByClient(clientID int64) []models.Proposal {
	var out []models.Proposal
	for _, p := range r.List() {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// Save inserts a proposal without an id, stamping Status=pending and
// CreatedAt, or replaces an existing one in place, stamping UpdatedAt and
// preserving the original CreatedAt.
func (r *ProposalRepository) Save(p models.Proposal) (models.Proposal, error) {
	proposals := r.List()

	if p.ID != 0 {
		now := r.now()
		p.UpdatedAt = &now
		for i := range proposals {
			if proposals[i].ID == p.ID {
				p.CreatedAt = proposals[i].CreatedAt
				proposals[i] = p
				break
			}
		}
	} else {
		var maxID int64
		for _, existing := range proposals {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		p.ID = maxID + 1
		p.Status = models.ProposalPending
		p.CreatedAt = r.now()
		proposals = append(proposals, p)
	}

	if err := writeCollection(r.store, store.KeyProposals, proposals); err != nil {
		r.logger.WithError(err).Error("Failed to save proposal")
		return models.Proposal{}, err
	}
	return p, nil
}

// UpdateStatus moves a pending proposal to approved or rejected. The
// transition is one-way: anything already decided stays decided.
func (r *ProposalRepository) UpdateStatus(id int64, status string) (models.Proposal, error) {
	if status != models.ProposalApproved && status != models.ProposalRejected {
		return models.Proposal{}, fmt.Errorf("invalid proposal status %q", status)
	}

	proposal, ok := r.ByID(id)
	if !ok {
		return models.Proposal{}, ErrProposalNotFound
	}
	if proposal.Status != models.ProposalPending {
		return models.Proposal{}, fmt.Errorf("proposal %d is already %s", id, proposal.Status)
	}

	proposal.Status = status
	return r.Save(proposal)
}

// Delete removes a proposal by id; absent ids are a no-op.
func (r *ProposalRepository) Delete(id int64) error {
	proposals := r.List()
	filtered := proposals[:0]
	for _, p := range proposals {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}

	if err := writeCollection(r.store, store.KeyProposals, filtered); err != nil {
		r.logger.WithError(err).Error("Failed to delete proposal")
		return err
	}
	return nil
}
