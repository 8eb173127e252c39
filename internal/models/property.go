package models

// Property types as they appear in listings.
const (
	TypeApartment  = "Apartamento"
	TypeHouse      = "Casa"
	TypeLand       = "Terreno"
	TypeCommercial = "Comercial"
)

// Listing statuses.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
)

// Property is a single listing. Price keeps the Brazilian display format
// ("R$ 450.000"); search.ParsePrice is the canonical way to read it as a
// number. ID is assigned by the repository and stable once set.
type Property struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	Area        float64 `json:"area"`
	Price       string  `json:"price"`
	Featured    bool    `json:"featured"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
}

// PropertyStats summarizes a property collection.
type PropertyStats struct {
	Total      int            `json:"total"`
	ByType     map[string]int `json:"by_type"`
	PriceRange PriceRange     `json:"price_range"`
	AvgPrice   float64        `json:"avg_price"`
	AvgArea    float64        `json:"avg_area"`
	Featured   int            `json:"featured"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
