package search

import (
	"math"
	"sort"
	"strings"

	"dfontes/server/internal/models"
)

// Scoring weights. The price and area partial-credit formulas are empirical;
// they are kept as-is so existing scores stay comparable.
const (
	weightType     = 20
	weightBedrooms = 15
	weightPrice    = 25
	weightArea     = 15
	weightLocation = 20
	weightFeatured = 5

	neutralScore = 50
)

// Preferences is what a customer is looking for. Only the fields actually
// supplied contribute to the score and to the achievable maximum.
type Preferences struct {
	Type         string   `json:"type,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	MinArea      *float64 `json:"min_area,omitempty"`
	City         string   `json:"city,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
}

func (p Preferences) isEmpty() bool {
	return p.Type == "" && p.Bedrooms == nil && p.MaxPrice == nil &&
		p.MinArea == nil && p.City == "" && p.Neighborhood == ""
}

// ScoredProperty is a property annotated with how well it matches a set of
// preferences, normalized to 0-100.
type ScoredProperty struct {
	models.Property
	MatchScore int `json:"matchScore"`
}

// Match scores every property against the preferences and returns them
// sorted by score, best first. Ties keep their original relative order.
// With no preferences every property gets a neutral 50: absence of a
// preference is not a penalty.
func Match(properties []models.Property, prefs Preferences) []ScoredProperty {
	scored := make([]ScoredProperty, 0, len(properties))

	if prefs.isEmpty() {
		for _, p := range properties {
			scored = append(scored, ScoredProperty{Property: p, MatchScore: neutralScore})
		}
		return scored
	}

	for _, p := range properties {
		scored = append(scored, ScoredProperty{Property: p, MatchScore: score(p, prefs)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})
	return scored
}

func score(p models.Property, prefs Preferences) int {
	var points, max float64

	if prefs.Type != "" {
		max += weightType
		if p.Type == prefs.Type {
			points += weightType
		}
	}

	if prefs.Bedrooms != nil {
		max += weightBedrooms
		switch diff := p.Bedrooms - *prefs.Bedrooms; {
		case diff == 0:
			points += weightBedrooms
		case diff == 1 || diff == -1:
			points += 10 // close enough to count for something
		}
	}

	if prefs.MaxPrice != nil {
		max += weightPrice
		price := ParsePrice(p.Price)
		if price <= *prefs.MaxPrice {
			// Under budget scores higher the further under it is.
			ratio := price / *prefs.MaxPrice
			points += math.Round(weightPrice * (1 - ratio*0.3))
		}
	}

	if prefs.MinArea != nil {
		max += weightArea
		if p.Area >= *prefs.MinArea {
			points += weightArea
		} else {
			points += math.Round(weightArea * (p.Area / *prefs.MinArea))
		}
	}

	if prefs.City != "" || prefs.Neighborhood != "" {
		max += weightLocation
		city := strings.ToLower(ExtractCity(p.Location))
		neighborhood := strings.ToLower(ExtractNeighborhood(p.Location))

		if prefs.City != "" && strings.Contains(city, strings.ToLower(prefs.City)) {
			points += 10
		}
		if prefs.Neighborhood != "" && strings.Contains(neighborhood, strings.ToLower(prefs.Neighborhood)) {
			points += 10
		}
	}

	// Featured listings always get a small bonus axis.
	max += weightFeatured
	if p.Featured {
		points += weightFeatured
	}

	if max == 0 {
		return 0
	}
	return int(math.Round(points / max * 100))
}
