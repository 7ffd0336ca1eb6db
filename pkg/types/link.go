package types

import "time"

// PlantDiseaseLink is a directed association stating that a plant is a
// remedy for a disease. It is an attributed edge: the preparation recipe
// lives on the link, not on either endpoint.
//
// The store does not enforce uniqueness of (PlantID, DiseaseID); inserting
// the same pair twice is a caller error, not a store-level rejection.
type PlantDiseaseLink struct {
	// LinkID is a UUID v7, generated on creation.
	LinkID string `json:"linkId"`

	// PlantID references Plant.ID. Validated to exist at creation time.
	PlantID int64 `json:"plantId"`

	// DiseaseID references Disease.ID. Validated to exist at creation time.
	DiseaseID int64 `json:"diseaseId"`

	// Recipe holds preparation instructions.
	Recipe string `json:"recipe"`

	// Dosage holds administration instructions.
	Dosage string `json:"dosage"`

	// Notes carries an optional safety or interaction caveat.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time `json:"createdAt"`
}
