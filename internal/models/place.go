package models

// PlaceCandidate is a ranked emergency center produced by a proximity search.
// Candidates are ephemeral: they are computed per request and never persisted.
type PlaceCandidate struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	DistanceKm float64 `json:"distance"`
}
