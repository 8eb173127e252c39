package search

import (
	"sort"
	"strings"

	"dfontes/server/internal/models"
)

// Criteria narrows a property list. Nil/empty fields impose no constraint;
// present fields are ANDed together.
type Criteria struct {
	Type         string   `json:"type,omitempty"`
	MinBedrooms  *int     `json:"min_bedrooms,omitempty"`
	MinBathrooms *int     `json:"min_bathrooms,omitempty"`
	MinArea      *float64 `json:"min_area,omitempty"`
	MaxArea      *float64 `json:"max_area,omitempty"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	City         string   `json:"city,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	FeaturedOnly bool     `json:"featured_only,omitempty"`
}

// Filter returns the properties satisfying every present criterion,
// preserving input order. Empty criteria is the identity.
func Filter(properties []models.Property, criteria Criteria) []models.Property {
	var out []models.Property
	for _, p := range properties {
		if matchesCriteria(p, criteria) {
			out = append(out, p)
		}
	}
	return out
}

func matchesCriteria(p models.Property, c Criteria) bool {
	if c.Type != "" && p.Type != c.Type {
		return false
	}
	if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.MinBathrooms != nil && p.Bathrooms < *c.MinBathrooms {
		return false
	}
	if c.MinArea != nil && p.Area < *c.MinArea {
		return false
	}
	if c.MaxArea != nil && p.Area > *c.MaxArea {
		return false
	}
	if c.MinPrice != nil || c.MaxPrice != nil {
		price := ParsePrice(p.Price)
		if c.MinPrice != nil && price < *c.MinPrice {
			return false
		}
		if c.MaxPrice != nil && price > *c.MaxPrice {
			return false
		}
	}
	if c.City != "" {
		city := strings.ToLower(ExtractCity(p.Location))
		if !strings.Contains(city, strings.ToLower(c.City)) {
			return false
		}
	}
	if c.Neighborhood != "" {
		neighborhood := strings.ToLower(ExtractNeighborhood(p.Location))
		if !strings.Contains(neighborhood, strings.ToLower(c.Neighborhood)) {
			return false
		}
	}
	if c.FeaturedOnly && !p.Featured {
		return false
	}
	return true
}

// Sort keys.
const (
	SortPriceAsc      = "price-asc"
	SortPriceDesc     = "price-desc"
	SortAreaAsc       = "area-asc"
	SortAreaDesc      = "area-desc"
	SortBedroomsDesc  = "bedrooms-desc"
	SortFeaturedFirst = "featured-first"
)

// Sort returns a sorted copy of properties. Price keys compare the parsed
// numeric value, not the display string. An unrecognized key returns the
// input order unchanged.
func Sort(properties []models.Property, sortBy string) []models.Property {
	sorted := make([]models.Property, len(properties))
	copy(sorted, properties)

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParsePrice(sorted[i].Price) < ParsePrice(sorted[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParsePrice(sorted[i].Price) > ParsePrice(sorted[j].Price)
		})
	case SortAreaAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Area < sorted[j].Area
		})
	case SortAreaDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Area > sorted[j].Area
		})
	case SortBedroomsDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Bedrooms > sorted[j].Bedrooms
		})
	case SortFeaturedFirst:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Featured && !sorted[j].Featured
		})
	}
	return sorted
}

// Search returns the properties whose type, location or price string
// contains the query, case-insensitively. A blank query matches everything.
func Search(properties []models.Property, query string) []models.Property {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return properties
	}

	var out []models.Property
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p.Location), term) ||
			strings.Contains(strings.ToLower(p.Type), term) ||
			strings.Contains(strings.ToLower(p.Price), term) {
			out = append(out, p)
		}
	}
	return out
}
