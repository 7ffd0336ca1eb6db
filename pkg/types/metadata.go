package types

import "time"

// Metadata describes the currently loaded dataset. Exactly one metadata
// record exists at a time; SaveMetadata replaces it wholesale.
type Metadata struct {
	// Version is the dataset version tag, e.g. "1.0.0".
	Version string `json:"version"`

	// CreatedAt is when the dataset was produced.
	CreatedAt time.Time `json:"createdAt"`

	// Source labels where the dataset came from.
	Source string `json:"source"`

	// Language is the dataset's primary language code, e.g. "ru".
	Language string `json:"language"`

	// Disclaimer is the medical disclaimer shown to the end user.
	Disclaimer string `json:"disclaimer"`
}
