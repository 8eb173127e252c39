// Package export renders property collections into the output-only
// representations consumed by external tooling: a structured document, an
// all-quoted CSV table, a narrative text block and an NLP-oriented
// inventory. Nothing here is ever read back.
package export

import (
	"math"
	"time"

	"dfontes/server/internal/models"
	"dfontes/server/internal/search"
)

// Document is the structured export: aggregate metadata plus normalized
// per-property blocks with derived tags.
type Document struct {
	Metadata   Metadata         `json:"metadata"`
	Properties []PropertyRecord `json:"properties"`
}

type Metadata struct {
	ExportDate    time.Time      `json:"export_date"`
	Total         int            `json:"total"`
	Featured      int            `json:"featured"`
	PropertyTypes map[string]int `json:"property_types"`
	PriceRange    PriceSummary   `json:"price_range"`
	AreaStats     AreaSummary    `json:"area_stats"`
}

type PriceSummary struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

type AreaSummary struct {
	Average float64 `json:"average"`
}

type PropertyRecord struct {
	ID          int64        `json:"id"`
	Type        string       `json:"type"`
	Location    LocationInfo `json:"location"`
	Details     DetailInfo   `json:"details"`
	Pricing     PricingInfo  `json:"pricing"`
	Status      string       `json:"status"`
	Featured    bool         `json:"featured"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
}

type LocationInfo struct {
	Full         string `json:"full"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	State        string `json:"state"`
}

type DetailInfo struct {
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Area      float64 `json:"area"`
	AreaUnit  string  `json:"area_unit"`
}

type PricingInfo struct {
	Display  string  `json:"display"`
	Numeric  float64 `json:"numeric"`
	Currency string  `json:"currency"`
}

// JSON builds the structured export document.
func JSON(properties []models.Property) Document {
	stats := search.Stats(properties)

	doc := Document{
		Metadata: Metadata{
			ExportDate:    time.Now().UTC(),
			Total:         stats.Total,
			Featured:      stats.Featured,
			PropertyTypes: stats.ByType,
			PriceRange: PriceSummary{
				Min:     stats.PriceRange.Min,
				Max:     stats.PriceRange.Max,
				Average: math.Round(stats.AvgPrice),
			},
			AreaStats: AreaSummary{Average: math.Round(stats.AvgArea)},
		},
		Properties: make([]PropertyRecord, 0, len(properties)),
	}

	for _, p := range properties {
		doc.Properties = append(doc.Properties, PropertyRecord{
			ID:   p.ID,
			Type: p.Type,
			Location: LocationInfo{
				Full:         p.Location,
				City:         search.ExtractCity(p.Location),
				Neighborhood: search.ExtractNeighborhood(p.Location),
				State:        stateOf(p.Location),
			},
			Details: DetailInfo{
				Bedrooms:  p.Bedrooms,
				Bathrooms: p.Bathrooms,
				Area:      p.Area,
				AreaUnit:  "m²",
			},
			Pricing: PricingInfo{
				Display:  p.Price,
				Numeric:  search.ParsePrice(p.Price),
				Currency: "BRL",
			},
			Status:      statusOf(p),
			Featured:    p.Featured,
			Description: p.Description,
			Tags:        propertyTags(p),
		})
	}
	return doc
}

func statusOf(p models.Property) string {
	if p.Status == "" {
		return models.StatusAvailable
	}
	return p.Status
}

// stateOf pulls the state abbreviation from "neighborhood - city/state".
func stateOf(location string) string {
	for i := len(location) - 1; i >= 0; i-- {
		if location[i] == '/' {
			return location[i+1:]
		}
	}
	return "RN"
}
