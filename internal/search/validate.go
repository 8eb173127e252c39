package search

import (
	"fmt"
	"strconv"
	"strings"

	"dfontes/server/internal/models"
)

// ValidationResult reports whether a property is fit to save and, when it is
// not, every problem found, in field order.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateProperty checks required fields and value ranges. Repositories do
// not validate on save; callers run this first.
func ValidateProperty(p models.Property) ValidationResult {
	var errs []string

	if p.Type == "" {
		errs = append(errs, "type is required")
	}
	if p.Location == "" {
		errs = append(errs, "location is required")
	}
	if p.Bedrooms < 0 {
		errs = append(errs, "bedrooms must not be negative")
	}
	if p.Bathrooms < 0 {
		errs = append(errs, "bathrooms must not be negative")
	}
	if p.Area <= 0 {
		errs = append(errs, "area must be a positive number")
	}
	if p.Price == "" {
		errs = append(errs, "price is required")
	} else if ParsePrice(p.Price) <= 0 {
		errs = append(errs, "price must be a valid positive amount")
	}
	if p.Status != "" && p.Status != models.StatusAvailable && p.Status != models.StatusSold {
		errs = append(errs, "status must be 'available' or 'sold'")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Summary renders a one-line Portuguese description of a listing.
func Summary(p models.Property) string {
	parts := []string{fmt.Sprintf("%s em %s", p.Type, p.Location)}

	if p.Bedrooms > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", p.Bedrooms, PluralizePT(p.Bedrooms, "quarto", "")))
	}
	if p.Bathrooms > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", p.Bathrooms, PluralizePT(p.Bathrooms, "banheiro", "")))
	}

	parts = append(parts, FormatArea(p.Area)+"m²")
	parts = append(parts, "por "+p.Price)

	if p.Featured {
		parts = append(parts, "(Destaque)")
	}
	return strings.Join(parts, ", ")
}

// PluralizePT pluralizes a Portuguese word; an empty plural appends "s".
func PluralizePT(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	if plural != "" {
		return plural
	}
	return singular + "s"
}

// FormatArea renders an area without trailing zeros (85, 85.5).
func FormatArea(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64)
}
