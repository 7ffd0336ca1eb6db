package types

import "errors"

// Collection names accepted by Store.FuzzySearch.
const (
	PlantsCollection   = "plants"
	DiseasesCollection = "diseases"
)

// DefaultMaxDistance is the edit-distance threshold FuzzySearch applies
// when the caller passes a non-positive value.
const DefaultMaxDistance = 2

// FuzzyResultLimit caps the number of entities FuzzySearch returns.
const FuzzyResultLimit = 20

// Store lifecycle errors.
var (
	// ErrStoreOpen wraps failures to open or create the underlying
	// database. Fatal; callers must not retry.
	ErrStoreOpen = errors.New("cannot open store")

	// ErrSchemaUpgrade wraps failures to create a collection or index
	// during schema evolution. Fatal; the store is unusable.
	ErrSchemaUpgrade = errors.New("schema upgrade failed")

	// ErrStoreClosed is returned by every operation on a store that has
	// not been opened, or has been closed.
	ErrStoreClosed = errors.New("store is closed")
)

// Operation errors.
var (
	// ErrInvalidName rejects plants and diseases with an empty name.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidData rejects writes with a nil entity.
	ErrInvalidData = errors.New("invalid entity data")

	// ErrReferentialMismatch rejects a link whose plant or disease id
	// does not reference an existing record. No partial write occurs.
	ErrReferentialMismatch = errors.New("link endpoint does not exist")

	// ErrUnknownCollection rejects a FuzzySearch against a collection
	// name other than PlantsCollection or DiseasesCollection.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Store is the single entry point to the herbal catalog. Implementations
// own the full lifetime of all four collections (plants, diseases, links,
// metadata); no other component mutates them directly.
//
// All list-returning operations are read-only. Lookups by id that find
// nothing return a nil entity and a nil error: absence is a normal outcome,
// not an error condition. Empty or whitespace-only search queries return an
// empty list, never an error.
type Store interface {
	// Open prepares the store for use: it creates or opens the database
	// under Config.DataDir, applies any pending schema upgrades, and seeds
	// an empty store from Config.Snapshot or the built-in sample dataset.
	// Open is idempotent; reopening an open store is a no-op.
	Open(config Config) error

	// Close releases the database handle. Idempotent. After Close, all
	// operations return ErrStoreClosed.
	Close() error

	// IsEmpty reports whether the plants collection has zero records.
	// This is the sole signal for the seed decision.
	IsEmpty() (bool, error)

	// Seed populates the store from snapshot, or from the built-in sample
	// dataset when snapshot is nil. Seeding a non-empty store is a no-op.
	Seed(snapshot *Snapshot) error

	// AddPlant creates a plant and returns its assigned id. The store
	// computes NameLower from Name; callers never set it.
	AddPlant(p *Plant) (int64, error)

	// AddDisease creates a disease and returns its assigned id. The store
	// computes NameLower and collapses unrecognized categories to Other.
	AddDisease(d *Disease) (int64, error)

	// LinkPlantDisease records that a plant is a remedy for a disease,
	// attaching recipe, dosage, and an optional note. Both endpoints must
	// exist or ErrReferentialMismatch is returned and nothing is written.
	// Duplicate (plantID, diseaseID) pairs are not rejected; avoiding them
	// is the caller's responsibility.
	LinkPlantDisease(plantID, diseaseID int64, recipe, dosage, notes string) (string, error)

	// SearchPlantsByName returns plants whose name contains query,
	// case-insensitively, in insertion order.
	SearchPlantsByName(query string) ([]*Plant, error)

	// SearchDiseasesByName returns diseases whose name contains query,
	// case-insensitively, optionally narrowed to a category. An empty
	// query with a concrete category degrades to GetDiseasesByCategory;
	// an empty query without one returns an empty list.
	SearchDiseasesByName(query, category string) ([]*Disease, error)

	// GetDiseasesByCategory returns diseases in the given category.
	// CategoryAll returns every disease unfiltered.
	GetDiseasesByCategory(category string) ([]*Disease, error)

	// FuzzySearch scans every name in the named collection and returns
	// entities within maxDistance edits of query, best match first,
	// capped at FuzzyResultLimit. Elements are *Plant or *Disease
	// depending on collection.
	FuzzySearch(query, collection string, maxDistance int) ([]any, error)

	// GetAllPlants returns every plant in insertion order.
	GetAllPlants() ([]*Plant, error)

	// GetAllDiseases returns every disease in insertion order.
	GetAllDiseases() ([]*Disease, error)

	// GetPlantByID returns the plant with the given id, or nil when absent.
	GetPlantByID(id int64) (*Plant, error)

	// GetDiseaseByID returns the disease with the given id, or nil when
	// absent.
	GetDiseaseByID(id int64) (*Disease, error)

	// GetDiseasesForPlant returns the diseases linked to a plant, each
	// merged with its link's recipe fields, in link order.
	GetDiseasesForPlant(plantID int64) ([]*DiseaseRemedy, error)

	// GetPlantsForDisease returns the plants linked to a disease, each
	// merged with its link's recipe fields, in link order.
	GetPlantsForDisease(diseaseID int64) ([]*PlantRemedy, error)

	// SaveMetadata replaces the singleton dataset metadata record.
	SaveMetadata(m *Metadata) error

	// GetMetadata returns the dataset metadata, or nil when none has been
	// written.
	GetMetadata() (*Metadata, error)
}
