package types

// Plant is a medicinal plant entry. Plants are created during seeding or by
// an explicit AddPlant call and are read-mostly afterward; no delete
// operation is exposed.
type Plant struct {
	// ID is a store-assigned surrogate key, immutable after creation.
	ID int64 `json:"id"`

	// Name is the primary display name. Must be non-empty.
	Name string `json:"name"`

	// NameLower is the lowercase form of Name, maintained by the store on
	// every write and used for case-insensitive matching.
	NameLower string `json:"nameLower"`

	// LatinName is the botanical name, when known.
	LatinName string `json:"latinName,omitempty"`

	// Description is a short free-text summary.
	Description string `json:"description"`

	// Properties summarizes the plant's medicinal effects.
	Properties string `json:"properties"`

	// Uses lists typical applications as short strings, in order.
	Uses []string `json:"uses,omitempty"`

	// Toxicity carries a warning when the plant is not safe in all doses.
	Toxicity string `json:"toxicity,omitempty"`

	// ImagePath references an icon or asset for the presentation layer.
	ImagePath string `json:"imagePath,omitempty"`
}

// PlantRemedy is a Plant joined with the recipe fields of the link that
// connects it to a disease. Returned by GetPlantsForDisease.
type PlantRemedy struct {
	Plant

	Recipe string `json:"recipe"`
	Dosage string `json:"dosage"`
	Notes  string `json:"notes,omitempty"`
}
