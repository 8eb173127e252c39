package api

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dfontes/server/internal/auth"
	"dfontes/server/internal/export"
	"dfontes/server/internal/models"
	"dfontes/server/internal/repository"
	"dfontes/server/internal/search"
)

type Handler struct {
	properties *repository.PropertyRepository
	clients    *repository.ClientRepository
	proposals  *repository.ProposalRepository
	messages   *repository.MessageRepository
	auth       *auth.Authenticator
	logger     *logrus.Logger
}

func NewHandler(
	properties *repository.PropertyRepository,
	clients *repository.ClientRepository,
	proposals *repository.ProposalRepository,
	messages *repository.MessageRepository,
	authenticator *auth.Authenticator,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Handler{
		properties: properties,
		clients:    clients,
		proposals:  proposals,
		messages:   messages,
		auth:       authenticator,
		logger:     logger,
	}
}

// GetProperties lists properties, optionally searched (q), filtered and
// sorted via query parameters.
func (h *Handler) GetProperties(c *gin.Context) {
	properties := h.properties.List()

	if q := c.Query("q"); q != "" {
		properties = search.Search(properties, q)
	}
	properties = search.Filter(properties, criteriaFromQuery(c))
	if sortBy := c.Query("sort"); sortBy != "" {
		properties = search.Sort(properties, sortBy)
	}

	if properties == nil {
		properties = []models.Property{}
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}
	property, ok := h.properties.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		h.logger.WithError(err).Error("Failed to parse property")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	property.ID = 0

	if result := search.ValidateProperty(property); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property", "details": result.Errors})
		return
	}

	saved, err := h.properties.Save(property)
	if err != nil {
		h.logger.WithError(err).Error("Failed to save property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save property"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}
	if _, ok := h.properties.ByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		h.logger.WithError(err).Error("Failed to parse property")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	property.ID = id

	if result := search.ValidateProperty(property); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property", "details": result.Errors})
		return
	}

	saved, err := h.properties.Save(property)
	if err != nil {
		h.logger.WithError(err).Error("Failed to update property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}
	if err := h.properties.Delete(id); err != nil {
		h.logger.WithError(err).Error("Failed to delete property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MatchProperties scores the catalogue against the posted preferences and
// returns it ranked.
func (h *Handler) MatchProperties(c *gin.Context) {
	var prefs search.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		h.logger.WithError(err).Error("Failed to parse preferences")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	c.JSON(http.StatusOK, search.Match(h.properties.List(), prefs))
}

func (h *Handler) GetPropertyStats(c *gin.Context) {
	c.JSON(http.StatusOK, search.Stats(h.properties.List()))
}

// GetLocations lists the distinct cities and neighborhoods on offer.
func (h *Handler) GetLocations(c *gin.Context) {
	properties := h.properties.List()
	c.JSON(http.StatusOK, gin.H{
		"cities":        search.UniqueCities(properties),
		"neighborhoods": search.UniqueNeighborhoods(properties),
	})
}

func (h *Handler) ExportJSON(c *gin.Context) {
	c.JSON(http.StatusOK, export.JSON(h.properties.List()))
}

func (h *Handler) ExportCSV(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="imoveis.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.CSV(h.properties.List())))
}

func (h *Handler) ExportText(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.Text(h.properties.List())))
}

func (h *Handler) ExportNLP(c *gin.Context) {
	c.JSON(http.StatusOK, export.NLP(h.properties.List()))
}

func criteriaFromQuery(c *gin.Context) search.Criteria {
	criteria := search.Criteria{
		Type:         c.Query("type"),
		City:         c.Query("city"),
		Neighborhood: c.Query("neighborhood"),
	}
	if v, ok := queryInt(c, "min_bedrooms"); ok {
		criteria.MinBedrooms = &v
	}
	if v, ok := queryInt(c, "min_bathrooms"); ok {
		criteria.MinBathrooms = &v
	}
	if v, ok := queryFloat(c, "min_area"); ok {
		criteria.MinArea = &v
	}
	if v, ok := queryFloat(c, "max_area"); ok {
		criteria.MaxArea = &v
	}
	if v, ok := queryFloat(c, "min_price"); ok {
		criteria.MinPrice = &v
	}
	if v, ok := queryFloat(c, "max_price"); ok {
		criteria.MaxPrice = &v
	}
	if featured := c.Query("featured_only"); featured != "" {
		criteria.FeaturedOnly = strings.EqualFold(featured, "true") || featured == "1"
	}
	return criteria
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func queryFloat(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
