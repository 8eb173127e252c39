package search

import "dfontes/server/internal/models"

// Stats aggregates a property collection: counts, price range and averages.
// Zero prices and areas are left out of the numeric aggregates.
func Stats(properties []models.Property) models.PropertyStats {
	stats := models.PropertyStats{ByType: make(map[string]int)}
	if len(properties) == 0 {
		return stats
	}

	stats.Total = len(properties)

	var priceSum, areaSum float64
	var priceCount, areaCount int
	for _, p := range properties {
		stats.ByType[p.Type]++
		if p.Featured {
			stats.Featured++
		}

		if price := ParsePrice(p.Price); price > 0 {
			if priceCount == 0 || price < stats.PriceRange.Min {
				stats.PriceRange.Min = price
			}
			if price > stats.PriceRange.Max {
				stats.PriceRange.Max = price
			}
			priceSum += price
			priceCount++
		}
		if p.Area > 0 {
			areaSum += p.Area
			areaCount++
		}
	}

	if priceCount > 0 {
		stats.AvgPrice = priceSum / float64(priceCount)
	}
	if areaCount > 0 {
		stats.AvgArea = areaSum / float64(areaCount)
	}
	return stats
}
