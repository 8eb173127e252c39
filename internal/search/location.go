package search

import (
	"strings"

	"dfontes/server/internal/models"
)

// ExtractCity pulls the city out of a location string such as
// "Ponta Negra - Natal/RN". Only "/RN" locations carry a city; anything
// else (or no "city/state" part at all) yields "".
func ExtractCity(location string) string {
	if location == "" {
		return ""
	}
	segment := location
	if idx := strings.LastIndex(location, "-"); idx >= 0 {
		segment = location[idx+1:]
	}
	slash := strings.Index(segment, "/")
	if slash < 0 || !strings.HasPrefix(segment[slash+1:], "RN") {
		return ""
	}
	return strings.TrimSpace(segment[:slash])
}

// ExtractNeighborhood returns the part of the location before the first "-".
func ExtractNeighborhood(location string) string {
	if location == "" {
		return ""
	}
	neighborhood, _, _ := strings.Cut(location, "-")
	return strings.TrimSpace(neighborhood)
}

// UniqueCities returns the distinct cities across properties, in first-seen order.
func UniqueCities(properties []models.Property) []string {
	return uniqueLocations(properties, ExtractCity)
}

// UniqueNeighborhoods returns the distinct neighborhoods, in first-seen order.
func UniqueNeighborhoods(properties []models.Property) []string {
	return uniqueLocations(properties, ExtractNeighborhood)
}

func uniqueLocations(properties []models.Property, extract func(string) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range properties {
		name := extract(p.Location)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
