package export

import (
	"fmt"
	"strings"

	"dfontes/server/internal/models"
	"dfontes/server/internal/search"
)

// propertyTags derives searchable keywords for a listing: type, location,
// size and price bands, and a few neighborhood specials.
func propertyTags(p models.Property) []string {
	var tags []string

	tags = append(tags, strings.ToLower(p.Type))

	city := search.ExtractCity(p.Location)
	neighborhood := search.ExtractNeighborhood(p.Location)
	if city != "" {
		tags = append(tags, strings.ToLower(city))
	}
	if neighborhood != "" {
		tags = append(tags, strings.ToLower(neighborhood))
	}

	if p.Bedrooms > 0 {
		tags = append(tags, fmt.Sprintf("%d-quartos", p.Bedrooms))
		if p.Bedrooms >= 3 {
			tags = append(tags, "familia")
		}
	}

	switch {
	case p.Area < 100:
		tags = append(tags, "compacto")
	case p.Area < 200:
		tags = append(tags, "medio")
	default:
		tags = append(tags, "amplo")
	}

	price := search.ParsePrice(p.Price)
	switch {
	case price < 300000:
		tags = append(tags, "economico")
	case price < 700000:
		tags = append(tags, "medio-padrao")
	default:
		tags = append(tags, "luxo")
	}

	if p.Featured {
		tags = append(tags, "destaque")
	}
	if p.Type == models.TypeLand {
		tags = append(tags, "construcao")
	}

	lower := strings.ToLower(neighborhood)
	if strings.Contains(lower, "ponta negra") {
		tags = append(tags, "praia")
	}
	if strings.Contains(lower, "tirol") {
		tags = append(tags, "nobre")
	}

	return tags
}

// suitabilityHints describes who a listing fits, for conversational agents.
func suitabilityHints(p models.Property) []string {
	var hints []string

	switch {
	case p.Bedrooms >= 4:
		hints = append(hints, "Famílias grandes")
	case p.Bedrooms == 3:
		hints = append(hints, "Famílias médias")
	case p.Bedrooms == 2:
		hints = append(hints, "Casais ou famílias pequenas")
	case p.Bedrooms == 1:
		hints = append(hints, "Solteiros ou casais")
	}

	price := search.ParsePrice(p.Price)
	if price < 300000 {
		hints = append(hints, "Primeiro imóvel", "Investimento de entrada")
	} else if price >= 1000000 {
		hints = append(hints, "Alto padrão", "Investidores experientes")
	}

	neighborhood := strings.ToLower(search.ExtractNeighborhood(p.Location))
	if strings.Contains(neighborhood, "ponta negra") {
		hints = append(hints, "Amantes de praia", "Turismo")
	}
	if strings.Contains(neighborhood, "lagoa nova") || strings.Contains(neighborhood, "tirol") {
		hints = append(hints, "Localização central", "Acesso a serviços")
	}

	if p.Type == models.TypeLand {
		hints = append(hints, "Construtores", "Investimento a longo prazo")
	}

	return hints
}
