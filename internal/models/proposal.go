package models

import "time"

// Proposal statuses. Transitions are one-way: pending → approved|rejected.
const (
	ProposalPending  = "pending"
	ProposalApproved = "approved"
	ProposalRejected = "rejected"
)

// Proposal is a client's offer on a property. ClientID and PropertyID are
// id references, not live links; either side may have been deleted since.
type Proposal struct {
	ID         int64      `json:"id"`
	ClientID   int64      `json:"client_id"`
	PropertyID int64      `json:"property_id"`
	Message    string     `json:"message,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
