package types

// Snapshot is the structured seed document consumed by the store when it is
// opened against an empty database. The caller is responsible for fetching
// and parsing it; the store only receives the parsed value. Records are
// keyed by human-readable name: relationships reference plants and diseases
// by name, and the store resolves names to its own surrogate ids during
// seeding.
type Snapshot struct {
	Metadata      SnapshotMetadata       `json:"metadata" yaml:"metadata"`
	Plants        []SnapshotPlant        `json:"plants" yaml:"plants"`
	Diseases      []SnapshotDisease      `json:"diseases" yaml:"diseases"`
	Relationships []SnapshotRelationship `json:"relationships" yaml:"relationships"`
}

// SnapshotMetadata mirrors the snapshot's top-level metadata block.
// CreatedAt is kept as the source's own string representation; the store
// parses it leniently and falls back to the load time when absent.
type SnapshotMetadata struct {
	Version    string `json:"version" yaml:"version"`
	CreatedAt  string `json:"createdAt" yaml:"createdAt"`
	Source     string `json:"source" yaml:"source"`
	Language   string `json:"language" yaml:"language"`
	Disclaimer string `json:"disclaimer" yaml:"disclaimer"`
}

// SnapshotPlant is a plant record in a seed snapshot.
type SnapshotPlant struct {
	Name        string   `json:"name" yaml:"name"`
	LatinName   string   `json:"latinName" yaml:"latinName"`
	Description string   `json:"description" yaml:"description"`
	Properties  string   `json:"properties" yaml:"properties"`
	Uses        []string `json:"uses" yaml:"uses"`
	Toxicity    string   `json:"toxicity" yaml:"toxicity"`
	ImagePath   string   `json:"imagePath" yaml:"imagePath"`
}

// SnapshotDisease is a disease record in a seed snapshot.
type SnapshotDisease struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// SnapshotRelationship links a plant to a disease by name and carries the
// recipe data for the resulting edge.
type SnapshotRelationship struct {
	PlantName   string `json:"plantName" yaml:"plantName"`
	DiseaseName string `json:"diseaseName" yaml:"diseaseName"`
	Recipe      string `json:"recipe" yaml:"recipe"`
	Dosage      string `json:"dosage" yaml:"dosage"`
	Notes       string `json:"notes,omitempty" yaml:"notes"`
}
