package export

import (
	"fmt"
	"strings"

	"dfontes/server/internal/models"
	"dfontes/server/internal/search"
)

// NLPDocument is the export tuned for language models: company context plus
// an inventory of natural-language summaries with matching hints.
type NLPDocument struct {
	Context   CompanyContext  `json:"context"`
	Inventory []InventoryItem `json:"inventory"`
}

type CompanyContext struct {
	Company        string      `json:"company"`
	Creci          string      `json:"creci"`
	ServiceArea    string      `json:"service_area"`
	Specialization string      `json:"specialization"`
	Contact        ContactInfo `json:"contact"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

type InventoryItem struct {
	ID          int64        `json:"id"`
	Type        string       `json:"type"`
	Summary     string       `json:"summary"`
	Location    NLPLocation  `json:"location"`
	Features    FeatureInfo  `json:"features"`
	Price       NLPPrice     `json:"price"`
	Status      string       `json:"status"`
	IsFeatured  bool         `json:"is_featured"`
	Description string       `json:"description"`
	Keywords    []string     `json:"keywords"`
	SuitableFor []string     `json:"suitable_for"`
}

type NLPLocation struct {
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	FullAddress  string `json:"full_address"`
}

type FeatureInfo struct {
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	TotalArea float64 `json:"total_area"`
}

type NLPPrice struct {
	Formatted string  `json:"formatted"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// NLP builds the language-model export document.
func NLP(properties []models.Property) NLPDocument {
	doc := NLPDocument{
		Context: CompanyContext{
			Company:        models.CompanyName,
			Creci:          models.CompanyCreci + " (RN)",
			ServiceArea:    models.CompanyArea,
			Specialization: models.CompanyService,
			Contact: ContactInfo{
				Phone:   models.CompanyPhone,
				Email:   models.CompanyEmail,
				Address: models.CompanyAddress,
				Hours:   models.CompanyHours,
			},
		},
		Inventory: make([]InventoryItem, 0, len(properties)),
	}

	for _, p := range properties {
		doc.Inventory = append(doc.Inventory, InventoryItem{
			ID:      p.ID,
			Type:    p.Type,
			Summary: naturalSummary(p),
			Location: NLPLocation{
				Neighborhood: search.ExtractNeighborhood(p.Location),
				City:         search.ExtractCity(p.Location),
				State:        "Rio Grande do Norte",
				FullAddress:  p.Location,
			},
			Features: FeatureInfo{
				Bedrooms:  p.Bedrooms,
				Bathrooms: p.Bathrooms,
				TotalArea: p.Area,
			},
			Price: NLPPrice{
				Formatted: p.Price,
				Amount:    search.ParsePrice(p.Price),
				Currency:  "BRL",
			},
			Status:      statusOf(p),
			IsFeatured:  p.Featured,
			Description: p.Description,
			Keywords:    propertyTags(p),
			SuitableFor: suitabilityHints(p),
		})
	}
	return doc
}

// naturalSummary writes one Portuguese sentence describing the listing.
func naturalSummary(p models.Property) string {
	parts := []string{fmt.Sprintf("%s localizado em %s", p.Type, p.Location)}

	if p.Bedrooms > 0 {
		parts = append(parts, fmt.Sprintf("com %d %s", p.Bedrooms, search.PluralizePT(p.Bedrooms, "quarto", "")))
		if p.Bathrooms > 0 {
			parts = append(parts, fmt.Sprintf("e %d %s", p.Bathrooms, search.PluralizePT(p.Bathrooms, "banheiro", "")))
		}
	}

	parts = append(parts, fmt.Sprintf("totalizando %s metros quadrados", search.FormatArea(p.Area)))
	parts = append(parts, "pelo valor de "+p.Price)

	if p.Featured {
		parts = append(parts, "(imóvel em destaque)")
	}
	return strings.Join(parts, ", ") + "."
}
