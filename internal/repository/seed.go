package repository

import "dfontes/server/internal/models"

// seedProperties is the catalogue a fresh (or unreadable) store starts from.
func seedProperties() []models.Property {
	return []models.Property{
		{
			ID:          1,
			Type:        models.TypeApartment,
			Location:    "Ponta Negra - Natal/RN",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        85,
			Price:       "R$ 450.000",
			Featured:    true,
			Status:      models.StatusAvailable,
			Description: "Moderno apartamento em Ponta Negra, próximo à praia",
		},
		{
			ID:          2,
			Type:        models.TypeHouse,
			Location:    "Candelária - Natal/RN",
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        180,
			Price:       "R$ 680.000",
			Featured:    true,
			Status:      models.StatusAvailable,
			Description: "Casa ampla em bairro estabelecido de Natal",
		},
		{
			ID:          3,
			Type:        models.TypeApartment,
			Location:    "Lagoa Nova - Natal/RN",
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        65,
			Price:       "R$ 320.000",
			Featured:    false,
			Status:      models.StatusAvailable,
			Description: "Apartamento aconchegante em área central",
		},
		{
			ID:          4,
			Type:        models.TypeLand,
			Location:    "Parnamirim - Grande Natal/RN",
			Bedrooms:    0,
			Bathrooms:   0,
			Area:        360,
			Price:       "R$ 180.000",
			Featured:    false,
			Status:      models.StatusAvailable,
			Description: "Terreno pronto para construção",
		},
		{
			ID:          5,
			Type:        models.TypeHouse,
			Location:    "Tirol - Natal/RN",
			Bedrooms:    5,
			Bathrooms:   4,
			Area:        250,
			Price:       "R$ 1.200.000",
			Featured:    true,
			Status:      models.StatusAvailable,
			Description: "Casa de luxo em localização premium",
		},
		{
			ID:          6,
			Type:        models.TypeApartment,
			Location:    "Capim Macio - Natal/RN",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        95,
			Price:       "R$ 520.000",
			Featured:    false,
			Status:      models.StatusAvailable,
			Description: "Apartamento espaçoso em bairro em crescimento",
		},
	}
}
