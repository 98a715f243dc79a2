// internal/core/domain/item.go
package domain

import (
	"github.com/shopspring/decimal"
)

// ItemCategory represents the fixed category list offered by the filter form.
type ItemCategory string

// Category constants
const (
	CategoryOutils       ItemCategory = "Outils"
	CategorySport        ItemCategory = "Sport"
	CategoryElectronique ItemCategory = "Électronique"
	CategoryJardin       ItemCategory = "Jardin"
	CategoryCuisine      ItemCategory = "Cuisine"
	CategoryCamping      ItemCategory = "Camping"
	CategoryMusique      ItemCategory = "Musique"
	CategoryAutre        ItemCategory = "Autre"
)

// Categories lists every category in form display order.
func Categories() []ItemCategory {
	return []ItemCategory{
		CategoryOutils,
		CategorySport,
		CategoryElectronique,
		CategoryJardin,
		CategoryCuisine,
		CategoryCamping,
		CategoryMusique,
		CategoryAutre,
	}
}

// Cantons is the fixed list of Swiss cantons used for location filtering.
// The backend exposes the same list on /api/cantons; this copy seeds the
// filter form when that call is unavailable.
var Cantons = []string{
	"Aargau", "Appenzell Innerrhoden", "Appenzell Ausserrhoden", "Bern",
	"Basel-Landschaft", "Basel-Stadt", "Fribourg", "Genève", "Glarus",
	"Graubünden", "Jura", "Luzern", "Neuchâtel", "Nidwalden", "Obwalden",
	"Schaffhausen", "Solothurn", "St. Gallen", "Thurgau", "Ticino",
	"Uri", "Vaud", "Valais", "Zug", "Zürich",
}

// ValidCanton reports whether name is one of the known cantons.
func ValidCanton(name string) bool {
	for _, c := range Cantons {
		if c == name {
			return true
		}
	}
	return false
}

// RegistrationFee is the flat CHF amount the backend adds to every rental.
// Displayed on each card; never computed client-side.
var RegistrationFee = decimal.NewFromInt(5)

// ItemSummary is the read-only projection of a listable item as the backend
// returns it from /api/items. Owned and mutated by the backend; the gateway
// renders it verbatim.
type ItemSummary struct {
	ID              string          `json:"id"`
	Title           string          `json:"titre"`
	Description     string          `json:"description"`
	Category        ItemCategory    `json:"categorie"`
	PricePerDay     decimal.Decimal `json:"prix_par_jour"`
	RegistrationFee decimal.Decimal `json:"frais_inscription"`
	Canton          string          `json:"canton"`
	City            string          `json:"ville"`
	Available       bool            `json:"disponible"`
	OwnerID         string          `json:"proprietaire_id"`
	OwnerName       string          `json:"proprietaire_nom"`
	CreatedAt       Timestamp       `json:"date_creation"`
	Images          []string        `json:"images"`
	AverageRating   float64         `json:"note_moyenne"`
}

// Unrated reports whether the item has no reviews yet. The backend encodes
// "no rating" as a zero average.
func (i *ItemSummary) Unrated() bool {
	return i.AverageRating == 0
}

// Location renders the "Ville, Canton" line shown on cards.
func (i *ItemSummary) Location() string {
	if i.City == "" {
		return i.Canton
	}
	if i.Canton == "" {
		return i.City
	}
	return i.City + ", " + i.Canton
}
