package domain

import "strings"

// Hero is the only entity the API serves. ID is assigned by the store; a
// hero that has not been created yet has ID 0.
type Hero struct {
	ID   int    `json:"id" validate:"gte=0"`
	Name string `json:"name" validate:"required,max=128"`
}

// NormalizeName trims the surrounding whitespace the UI lets through.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// MatchesName reports whether term is a case-insensitive substring of the
// hero's name. Folding is Unicode-aware so every store driver agrees.
func (h Hero) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(h.Name), strings.ToLower(term))
}

// MockHeroes is the roster the API is seeded with on an empty store.
func MockHeroes() []Hero {
	return []Hero{
		{ID: 11, Name: "Dr Nice"},
		{ID: 12, Name: "Narco"},
		{ID: 13, Name: "Bombasto"},
		{ID: 14, Name: "Celeritas"},
		{ID: 15, Name: "Magneta"},
		{ID: 16, Name: "RubberMan"},
		{ID: 17, Name: "Dynama"},
		{ID: 18, Name: "Dr IQ"},
		{ID: 19, Name: "Magma"},
		{ID: 20, Name: "Tornado"},
	}
}

// FirstHeroID is handed out when a hero is created in an empty collection.
const FirstHeroID = 11
