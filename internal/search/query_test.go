package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dfontes/server/internal/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func testProperties() []models.Property {
	return []models.Property{
		{ID: 1, Type: models.TypeApartment, Location: "Ponta Negra - Natal/RN", Bedrooms: 3, Bathrooms: 2, Area: 85, Price: "R$ 450.000", Featured: true, Status: models.StatusAvailable},
		{ID: 2, Type: models.TypeHouse, Location: "Candelária - Natal/RN", Bedrooms: 4, Bathrooms: 3, Area: 180, Price: "R$ 680.000", Featured: true, Status: models.StatusAvailable},
		{ID: 3, Type: models.TypeApartment, Location: "Lagoa Nova - Natal/RN", Bedrooms: 2, Bathrooms: 1, Area: 65, Price: "R$ 320.000", Featured: false, Status: models.StatusAvailable},
		{ID: 4, Type: models.TypeLand, Location: "Parnamirim - Grande Natal/RN", Bedrooms: 0, Bathrooms: 0, Area: 360, Price: "R$ 180.000", Featured: false, Status: models.StatusAvailable},
	}
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	properties := testProperties()
	filtered := Filter(properties, Criteria{})
	assert.Equal(t, properties, filtered)
}

func TestFilter(t *testing.T) {
	properties := testProperties()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []int64
	}{
		{"by type", Criteria{Type: models.TypeApartment}, []int64{1, 3}},
		{"min bedrooms", Criteria{MinBedrooms: intPtr(3)}, []int64{1, 2}},
		{"min bathrooms", Criteria{MinBathrooms: intPtr(2)}, []int64{1, 2}},
		{"area range", Criteria{MinArea: floatPtr(80), MaxArea: floatPtr(200)}, []int64{1, 2}},
		{"price range", Criteria{MinPrice: floatPtr(300000), MaxPrice: floatPtr(500000)}, []int64{1, 3}},
		{"city substring", Criteria{City: "natal"}, []int64{1, 2, 3, 4}},
		{"neighborhood substring", Criteria{Neighborhood: "lagoa"}, []int64{3}},
		{"featured only", Criteria{FeaturedOnly: true}, []int64{1, 2}},
		{"combined", Criteria{Type: models.TypeApartment, MaxPrice: floatPtr(400000)}, []int64{3}},
		{"nothing matches", Criteria{MinBedrooms: intPtr(10)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(properties, tt.criteria)
			var ids []int64
			for _, p := range filtered {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_MinBedroomsZeroIsExplicit(t *testing.T) {
	// An explicit zero keeps land plots in; a nil imposes nothing either way.
	properties := testProperties()
	assert.Len(t, Filter(properties, Criteria{MinBedrooms: intPtr(0)}), 4)
}

func TestSort(t *testing.T) {
	properties := testProperties()

	byPriceAsc := Sort(properties, SortPriceAsc)
	assert.Equal(t, []int64{4, 3, 1, 2}, idsOf(byPriceAsc))

	byPriceDesc := Sort(properties, SortPriceDesc)
	assert.Equal(t, []int64{2, 1, 3, 4}, idsOf(byPriceDesc))

	byAreaAsc := Sort(properties, SortAreaAsc)
	assert.Equal(t, []int64{3, 1, 2, 4}, idsOf(byAreaAsc))

	byBedrooms := Sort(properties, SortBedroomsDesc)
	assert.Equal(t, []int64{2, 1, 3, 4}, idsOf(byBedrooms))

	featuredFirst := Sort(properties, SortFeaturedFirst)
	assert.Equal(t, []int64{1, 2, 3, 4}, idsOf(featuredFirst))

	// Unknown keys are the identity, not an error.
	unknown := Sort(properties, "listing-date")
	assert.Equal(t, idsOf(properties), idsOf(unknown))

	// The input slice is never reordered.
	assert.Equal(t, []int64{1, 2, 3, 4}, idsOf(properties))
}

func TestSort_PriceUsesNumericValue(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Price: "R$ 680.000"},
		{ID: 2, Price: "R$ 320.000"},
		{ID: 3, Price: "R$ 450.000"},
	}
	sorted := Sort(properties, SortPriceAsc)
	assert.Equal(t, []int64{2, 3, 1}, idsOf(sorted))
}

func TestSearch(t *testing.T) {
	properties := testProperties()

	assert.Equal(t, properties, Search(properties, ""))
	assert.Equal(t, properties, Search(properties, "   "))

	assert.Equal(t, []int64{1}, idsOf(Search(properties, "ponta negra")))
	assert.Equal(t, []int64{1, 3}, idsOf(Search(properties, "apartamento")))
	assert.Equal(t, []int64{2}, idsOf(Search(properties, "680")))
	assert.Nil(t, Search(properties, "cobertura"))
}

func TestExtractCity(t *testing.T) {
	assert.Equal(t, "Natal", ExtractCity("Ponta Negra - Natal/RN"))
	assert.Equal(t, "Grande Natal", ExtractCity("Parnamirim - Grande Natal/RN"))
	assert.Equal(t, "Natal", ExtractCity("Natal/RN"))
	assert.Equal(t, "", ExtractCity("Ponta Negra"))
	assert.Equal(t, "", ExtractCity(""))
	// Only RN locations carry a city.
	assert.Equal(t, "", ExtractCity("Centro - Campinas/SP"))
}

func TestExtractNeighborhood(t *testing.T) {
	assert.Equal(t, "Ponta Negra", ExtractNeighborhood("Ponta Negra - Natal/RN"))
	assert.Equal(t, "Candelária", ExtractNeighborhood("Candelária - Natal/RN"))
	assert.Equal(t, "Natal/RN", ExtractNeighborhood("Natal/RN"))
	assert.Equal(t, "", ExtractNeighborhood(""))
}

func TestUniqueCitiesAndNeighborhoods(t *testing.T) {
	properties := testProperties()
	assert.Equal(t, []string{"Natal", "Grande Natal"}, UniqueCities(properties))
	assert.Equal(t, []string{"Ponta Negra", "Candelária", "Lagoa Nova", "Parnamirim"}, UniqueNeighborhoods(properties))
}

func idsOf(properties []models.Property) []int64 {
	var ids []int64
	for _, p := range properties {
		ids = append(ids, p.ID)
	}
	return ids
}
