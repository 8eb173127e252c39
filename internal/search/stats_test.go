package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dfontes/server/internal/models"
)

func TestStats(t *testing.T) {
	stats := Stats(testProperties())

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Featured)
	assert.Equal(t, map[string]int{
		models.TypeApartment: 2,
		models.TypeHouse:     1,
		models.TypeLand:      1,
	}, stats.ByType)
	assert.Equal(t, 180000.0, stats.PriceRange.Min)
	assert.Equal(t, 680000.0, stats.PriceRange.Max)
	assert.InDelta(t, 407500.0, stats.AvgPrice, 0.01)
	assert.InDelta(t, 172.5, stats.AvgArea, 0.01)
}

func TestStats_Empty(t *testing.T) {
	stats := Stats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AvgPrice)
	assert.Equal(t, 0.0, stats.PriceRange.Min)
	assert.Empty(t, stats.ByType)
}

func TestValidateProperty(t *testing.T) {
	valid := models.Property{
		Type:     models.TypeApartment,
		Location: "Ponta Negra - Natal/RN",
		Bedrooms: 3, Bathrooms: 2, Area: 85,
		Price: "R$ 450.000",
	}
	result := ValidateProperty(valid)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	result = ValidateProperty(models.Property{Bedrooms: -1, Area: 0})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"type is required",
		"location is required",
		"bedrooms must not be negative",
		"area must be a positive number",
		"price is required",
	}, result.Errors)

	result = ValidateProperty(models.Property{
		Type: models.TypeHouse, Location: "Tirol - Natal/RN", Area: 250,
		Price: "a combinar", Status: "reserved",
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "price must be a valid positive amount")
	assert.Contains(t, result.Errors, "status must be 'available' or 'sold'")
}

func TestSummary(t *testing.T) {
	p := testProperties()[0]
	assert.Equal(t, "Apartamento em Ponta Negra - Natal/RN, 3 quartos, 2 banheiros, 85m², por R$ 450.000, (Destaque)", Summary(p))

	land := testProperties()[3]
	assert.Equal(t, "Terreno em Parnamirim - Grande Natal/RN, 360m², por R$ 180.000", Summary(land))
}

func TestPluralizePT(t *testing.T) {
	assert.Equal(t, "quarto", PluralizePT(1, "quarto", ""))
	assert.Equal(t, "quartos", PluralizePT(2, "quarto", ""))
	assert.Equal(t, "imóveis", PluralizePT(3, "imóvel", "imóveis"))
}
