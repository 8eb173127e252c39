package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"dfontes/server/internal/models"
	"dfontes/server/internal/search"
)

// Text renders a narrative listing block: aggregate stats, one paragraph
// per property and the agency contact footer. Meant for text-based agents,
// not machine parsers.
func Text(properties []models.Property) string {
	stats := search.Stats(properties)

	var b strings.Builder
	b.WriteString("=== DERNIVAL FONTES - LISTAGEM DE IMÓVEIS ===\n\n")
	fmt.Fprintf(&b, "Total de imóveis: %d\n", stats.Total)
	fmt.Fprintf(&b, "Imóveis em destaque: %d\n", stats.Featured)
	fmt.Fprintf(&b, "Faixa de preço: %s - %s\n",
		search.FormatPrice(stats.PriceRange.Min), search.FormatPrice(stats.PriceRange.Max))
	fmt.Fprintf(&b, "Preço médio: %s\n", search.FormatPrice(math.Round(stats.AvgPrice)))
	fmt.Fprintf(&b, "Área média: %sm²\n\n", search.FormatArea(math.Round(stats.AvgArea)))

	b.WriteString("TIPOS DE IMÓVEIS:\n")
	types := make([]string, 0, len(stats.ByType))
	for t := range stats.ByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(&b, "  - %s: %d\n", t, stats.ByType[t])
	}
	b.WriteString("\n")

	b.WriteString("=== IMÓVEIS DISPONÍVEIS ===\n\n")
	for i, p := range properties {
		fmt.Fprintf(&b, "%d. %s - ID: %d\n", i+1, strings.ToUpper(p.Type), p.ID)
		fmt.Fprintf(&b, "   Localização: %s\n", p.Location)
		if p.Description != "" {
			fmt.Fprintf(&b, "   Descrição: %s\n", p.Description)
		}
		if p.Bedrooms > 0 {
			fmt.Fprintf(&b, "   Quartos: %d | Banheiros: %d\n", p.Bedrooms, p.Bathrooms)
		}
		fmt.Fprintf(&b, "   Área: %sm²\n", search.FormatArea(p.Area))
		fmt.Fprintf(&b, "   Preço: %s\n", p.Price)
		fmt.Fprintf(&b, "   Status: %s\n", statusOf(p))
		if p.Featured {
			b.WriteString("   ⭐ DESTAQUE\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("=== INFORMAÇÕES DE CONTATO ===\n")
	b.WriteString(models.CompanyName + "\n")
	b.WriteString("CRECI RN: " + models.CompanyCreci + "\n")
	b.WriteString("Endereço: " + models.CompanyAddress + "\n")
	b.WriteString("Telefone: " + models.CompanyPhone + "\n")
	b.WriteString("Email: " + models.CompanyEmail + "\n")
	b.WriteString("Horário: " + models.CompanyHours + "\n")

	return b.String()
}
