package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dfontes/server/internal/models"
	"dfontes/server/internal/repository"
)

// Staff-only client directory management.

func (h *Handler) GetClients(c *gin.Context) {
	clients := h.clients.List()
	if clients == nil {
		clients = []models.Client{}
	}
	for i := range clients {
		clients[i].PasswordHash = ""
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}
	client, ok := h.clients.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	client.PasswordHash = ""
	c.JSON(http.StatusOK, client)
}

type clientRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	CPF       string `json:"cpf"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Interests string `json:"interests"`
	Notes     string `json:"notes"`
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse client")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	saved, err := h.clients.Save(models.Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CPF:       req.CPF,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Interests: req.Interests,
		Notes:     req.Notes,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to save client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save client"})
		return
	}
	saved.PasswordHash = ""
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}
	existing, ok := h.clients.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse client")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.CPF = req.CPF
	existing.Address = req.Address
	existing.City = req.City
	existing.State = req.State
	existing.Interests = req.Interests
	existing.Notes = req.Notes

	saved, err := h.clients.Save(existing)
	if err != nil {
		h.logger.WithError(err).Error("Failed to update client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	saved.PasswordHash = ""
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}
	if err := h.clients.Delete(id); err != nil {
		h.logger.WithError(err).Error("Failed to delete client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveClientUpdate merges a pending self-service edit into the record.
func (h *Handler) ApproveClientUpdate(c *gin.Context) {
	h.decidePendingUpdate(c, h.clients.ApprovePendingUpdate)
}

// RejectClientUpdate discards a pending self-service edit.
func (h *Handler) RejectClientUpdate(c *gin.Context) {
	h.decidePendingUpdate(c, h.clients.RejectPendingUpdate)
}

func (h *Handler) decidePendingUpdate(c *gin.Context, decide func(int64) (models.Client, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}

	client, err := decide(id)
	switch {
	case errors.Is(err, repository.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case errors.Is(err, repository.ErrNoPendingUpdate):
		c.JSON(http.StatusConflict, gin.H{"error": "Client has no pending update"})
	case err != nil:
		h.logger.WithError(err).Error("Failed to decide pending update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
	default:
		client.PasswordHash = ""
		c.JSON(http.StatusOK, client)
	}
}

// GetProposals lists proposals, optionally narrowed to one client.
func (h *Handler) GetProposals(c *gin.Context) {
	var proposals []models.Proposal
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
			return
		}
		proposals = h.proposals.ByClient(clientID)
	} else {
		proposals = h.proposals.List()
	}
	if proposals == nil {
		proposals = []models.Proposal{}
	}
	c.JSON(http.StatusOK, proposals)
}

type proposalRequest struct {
	ClientID   int64  `json:"client_id" binding:"required"`
	PropertyID int64  `json:"property_id" binding:"required"`
	Message    string `json:"message"`
}

// CreateProposal files a proposal on a client's behalf. It enters the queue
// as pending like any portal-filed one.
func (h *Handler) CreateProposal(c *gin.Context) {
	var req proposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client and property are required"})
		return
	}
	if _, found := h.clients.ByID(req.ClientID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if _, found := h.properties.ByID(req.PropertyID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	saved, err := h.proposals.Save(models.Proposal{
		ClientID:   req.ClientID,
		PropertyID: req.PropertyID,
		Message:    req.Message,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to save proposal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save proposal"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

type proposalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateProposalStatus decides a pending proposal.
func (h *Handler) UpdateProposalStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
		return
	}

	var req proposalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	proposal, err := h.proposals.UpdateStatus(id, req.Status)
	switch {
	case errors.Is(err, repository.ErrProposalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, proposal)
	}
}

// GetMessages lists contact messages, optionally narrowed to one client.
func (h *Handler) GetMessages(c *gin.Context) {
	var messages []models.Message
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
			return
		}
		messages = h.messages.ByClient(clientID)
	} else {
		messages = h.messages.List()
	}
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// CreateMessage records a contact-form message. When a portal session is
// active the message is linked to the client; otherwise it stays anonymous.
func (h *Handler) CreateMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and message are required"})
		return
	}

	message := models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if client, ok := h.auth.CurrentClient(); ok {
		message.ClientID = &client.ID
	}

	saved, err := h.messages.Save(message)
	if err != nil {
		h.logger.WithError(err).Error("Failed to save message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}
