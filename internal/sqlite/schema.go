// Schema DDL and versioned migrations for the Travnik store. Evolution is
// additive only: steps create collections and indexes, never drop or
// rename, so previously seeded data survives application updates.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/CostaWebin/travnik/pkg/types"
)

// Table DDL. Plants and diseases use INTEGER PRIMARY KEY AUTOINCREMENT so
// the engine assigns monotonic surrogate ids; links use UUID v7 text keys.
const (
	createPlants = `CREATE TABLE IF NOT EXISTS plants (
    plant_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    name_lower TEXT NOT NULL,
    latin_name TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    properties TEXT NOT NULL DEFAULT '',
    uses TEXT NOT NULL DEFAULT '[]',
    toxicity TEXT NOT NULL DEFAULT '',
    image_path TEXT NOT NULL DEFAULT ''
);`

	createDiseases = `CREATE TABLE IF NOT EXISTS diseases (
    disease_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    name_lower TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL
);`

	createLinks = `CREATE TABLE IF NOT EXISTS plant_diseases (
    link_id TEXT PRIMARY KEY,
    plant_id INTEGER NOT NULL,
    disease_id INTEGER NOT NULL,
    recipe TEXT NOT NULL,
    dosage TEXT NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	createMetadata = `CREATE TABLE IF NOT EXISTS metadata (
    meta_key TEXT PRIMARY KEY,
    version TEXT NOT NULL,
    created_at TEXT NOT NULL,
    source TEXT NOT NULL,
    language TEXT NOT NULL,
    disclaimer TEXT NOT NULL
);`
)

// Index DDL. All secondary indexes are non-unique: several plants may share
// a name and a plant or disease appears in many links.
const (
	idxPlantsName        = `CREATE INDEX IF NOT EXISTS idx_plants_name ON plants(name);`
	idxPlantsNameLower   = `CREATE INDEX IF NOT EXISTS idx_plants_name_lower ON plants(name_lower);`
	idxPlantsLatinName   = `CREATE INDEX IF NOT EXISTS idx_plants_latin_name ON plants(latin_name);`
	idxPlantsToxicity    = `CREATE INDEX IF NOT EXISTS idx_plants_toxicity ON plants(toxicity);`
	idxDiseasesName      = `CREATE INDEX IF NOT EXISTS idx_diseases_name ON diseases(name);`
	idxDiseasesNameLower = `CREATE INDEX IF NOT EXISTS idx_diseases_name_lower ON diseases(name_lower);`
	idxDiseasesCategory  = `CREATE INDEX IF NOT EXISTS idx_diseases_category ON diseases(category);`
	idxLinksPlant        = `CREATE INDEX IF NOT EXISTS idx_links_plant ON plant_diseases(plant_id);`
	idxLinksDisease      = `CREATE INDEX IF NOT EXISTS idx_links_disease ON plant_diseases(disease_id);`
)

// migration is one additive schema step. Steps run in ascending version
// order, each in its own transaction, and PRAGMA user_version records the
// last applied step.
type migration struct {
	version    int
	statements []string
}

var migrations = []migration{
	{
		version: 1,
		statements: []string{
			createPlants,
			createDiseases,
			createLinks,
			createMetadata,
			idxPlantsName,
			idxPlantsNameLower,
			idxDiseasesName,
			idxDiseasesNameLower,
			idxDiseasesCategory,
			idxLinksPlant,
			idxLinksDisease,
		},
	},
	{
		version: 2,
		statements: []string{
			idxPlantsLatinName,
			idxPlantsToxicity,
		},
	},
}

// schemaVersion is the version an up-to-date store reports.
var schemaVersion = migrations[len(migrations)-1].version

// migrate applies every migration step newer than the database's current
// version. A store already at schemaVersion passes through untouched.
// Failures wrap types.ErrSchemaUpgrade and abort the open.
func migrate(db *sql.DB, logger *slog.Logger) error {
	var current int
	if err := db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("%w: reading schema version: %v", types.ErrStoreOpen, err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return err
		}
		logger.Info("schema upgraded", "from", current, "to", m.version)
		current = m.version
	}

	return nil
}

func applyMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning upgrade to v%d: %v", types.ErrSchemaUpgrade, m.version, err)
	}
	defer tx.Rollback()

	for _, stmt := range m.statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%w: upgrade to v%d: %v", types.ErrSchemaUpgrade, m.version, err)
		}
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
		return fmt.Errorf("%w: recording version v%d: %v", types.ErrSchemaUpgrade, m.version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing upgrade to v%d: %v", types.ErrSchemaUpgrade, m.version, err)
	}
	return nil
}
