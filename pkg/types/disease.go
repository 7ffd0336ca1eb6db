package types

// Disease categories form a closed set. Unrecognized categories collapse to
// CategoryOther when a disease is written.
const (
	CategoryRespiratory = "Respiratory"
	CategoryDigestive   = "Digestive"
	CategoryNervous     = "Nervous System"
	CategoryPain        = "Pain"
	CategorySkin        = "Skin"
	CategoryOther       = "Other"

	// CategoryAll is a query sentinel meaning "every disease, unfiltered".
	// It is never stored on a record.
	CategoryAll = "All"
)

// categories lists the closed category set in display order.
var categories = []string{
	CategoryRespiratory,
	CategoryDigestive,
	CategoryNervous,
	CategoryPain,
	CategorySkin,
	CategoryOther,
}

// Categories returns the closed category set in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether c is a member of the closed category set.
// CategoryAll is a query sentinel, not a valid stored category.
func ValidCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCategory maps any string onto the closed category set. Members
// pass through; everything else collapses to CategoryOther.
func NormalizeCategory(c string) string {
	if ValidCategory(c) {
		return c
	}
	return CategoryOther
}

// Disease is a condition treatable by one or more plants.
type Disease struct {
	// ID is a store-assigned surrogate key, immutable after creation.
	ID int64 `json:"id"`

	// Name is the primary display name. Must be non-empty.
	Name string `json:"name"`

	// NameLower is the lowercase form of Name, maintained by the store on
	// every write and used for case-insensitive matching.
	NameLower string `json:"nameLower"`

	// Description is a short free-text summary.
	Description string `json:"description"`

	// Category is one of the closed category constants above.
	Category string `json:"category"`
}

// DiseaseRemedy is a Disease joined with the recipe fields of the link that
// connects it to a plant. Returned by GetDiseasesForPlant.
type DiseaseRemedy struct {
	Disease

	Recipe string `json:"recipe"`
	Dosage string `json:"dosage"`
	Notes  string `json:"notes,omitempty"`
}
