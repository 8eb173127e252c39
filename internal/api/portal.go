package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dfontes/server/internal/auth"
	"dfontes/server/internal/models"
	"dfontes/server/internal/repository"
)

// Staff authentication.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case err != nil:
		h.logger.WithError(err).Error("Failed to log in")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
	default:
		c.JSON(http.StatusOK, user)
	}
}

func (h *Handler) Logout(c *gin.Context) {
	h.auth.Logout()
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetSession(c *gin.Context) {
	user, ok := h.auth.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Client portal.

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	CPF      string `json:"cpf"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
}

func (h *Handler) RegisterClient(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	client, err := h.auth.RegisterClient(models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		CPF:     req.CPF,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
	}, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingName),
		errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, auth.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
	case err != nil:
		h.logger.WithError(err).Error("Failed to register client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register client"})
	default:
		client.PasswordHash = ""
		c.JSON(http.StatusCreated, client)
	}
}

func (h *Handler) LoginClient(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	client, err := h.auth.LoginClient(req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case err != nil:
		h.logger.WithError(err).Error("Failed to log in client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
	default:
		c.JSON(http.StatusOK, client)
	}
}

func (h *Handler) LogoutClient(c *gin.Context) {
	h.auth.LogoutClient()
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetClientSession(c *gin.Context) {
	client, ok := h.auth.CurrentClient()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	// The session snapshot may be stale; prefer the stored record.
	if fresh, found := h.clients.ByID(client.ID); found {
		fresh.PasswordHash = ""
		c.JSON(http.StatusOK, fresh)
		return
	}
	c.JSON(http.StatusOK, client)
}

type profileRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Interests string `json:"interests"`
}

// UpdateProfile files a profile edit for staff review. The authoritative
// record is untouched until the edit is approved.
func (h *Handler) UpdateProfile(c *gin.Context) {
	client, ok := h.auth.CurrentClient()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}
	if !auth.ValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	updated, err := h.clients.RequestUpdate(client.ID, models.ClientUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Interests: req.Interests,
	})
	switch {
	case errors.Is(err, repository.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case err != nil:
		h.logger.WithError(err).Error("Failed to request profile update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
	default:
		updated.PasswordHash = ""
		c.JSON(http.StatusOK, updated)
	}
}

// GetPortalProposals lists the authenticated client's own proposals.
func (h *Handler) GetPortalProposals(c *gin.Context) {
	client, ok := h.auth.CurrentClient()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	proposals := h.proposals.ByClient(client.ID)
	if proposals == nil {
		proposals = []models.Proposal{}
	}
	c.JSON(http.StatusOK, proposals)
}

type portalProposalRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	Message    string `json:"message"`
}

// CreatePortalProposal files a purchase proposal on behalf of the
// authenticated client. It always enters the queue as pending.
func (h *Handler) CreatePortalProposal(c *gin.Context) {
	client, ok := h.auth.CurrentClient()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req portalProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property is required"})
		return
	}
	if _, found := h.properties.ByID(req.PropertyID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	saved, err := h.proposals.Save(models.Proposal{
		ClientID:   client.ID,
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

// GetPortalMessages lists messages linked to the authenticated client.
func (h *Handler) GetPortalMessages(c *gin.Context) {
	client, ok := h.auth.CurrentClient()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	messages := h.messages.ByClient(client.ID)
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}
