package models

// Company details used by the export formatters.
const (
	CompanyName    = "Dernival Fontes Consultoria de Imóveis"
	CompanyCreci   = "6359 - 17° REGIÃO"
	CompanyPhone   = "(84) 9999-9999"
	CompanyEmail   = "contato@dernivalfontes.com.br"
	CompanyAddress = "Rua Poço Branco, 33 - Parnamirim/RN - CEP 59152-280"
	CompanyHours   = "Seg-Sex 8h-18h | Sáb 8h-12h"
	CompanyArea    = "Grande Natal e todo Rio Grande do Norte"
	CompanyService = "Venda, Locação e Administração de Imóveis"
)
