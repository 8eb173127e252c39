package export

import (
	"strconv"
	"strings"

	"dfontes/server/internal/models"
	"dfontes/server/internal/search"
)

var csvHeaders = []string{
	"ID",
	"Tipo",
	"Localização",
	"Cidade",
	"Bairro",
	"Quartos",
	"Banheiros",
	"Área (m²)",
	"Preço (Display)",
	"Preço (Numérico)",
	"Status",
	"Destaque",
	"Descrição",
}

// CSV renders the properties as a comma-separated table, one row per
// property, every field double-quoted.
func CSV(properties []models.Property) string {
	lines := make([]string, 0, len(properties)+1)
	lines = append(lines, strings.Join(csvHeaders, ","))

	for _, p := range properties {
		featured := "Não"
		if p.Featured {
			featured = "Sim"
		}

		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Type,
			p.Location,
			search.ExtractCity(p.Location),
			search.ExtractNeighborhood(p.Location),
			strconv.Itoa(p.Bedrooms),
			strconv.Itoa(p.Bathrooms),
			search.FormatArea(p.Area),
			p.Price,
			strconv.FormatFloat(search.ParsePrice(p.Price), 'f', -1, 64),
			statusOf(p),
			featured,
			p.Description,
		}
		lines = append(lines, quoteRow(row))
	}

	return strings.Join(lines, "\n")
}

func quoteRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
