// First-run seeding. A store that opens with zero plants is populated from
// the caller's snapshot, or from the built-in sample dataset when none is
// available. Seeding is transactional and runs at most once per store
// lifetime.
package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/CostaWebin/travnik/pkg/types"
)

// builtinSnapshot is the fallback sample dataset: 10 plants, 10 diseases,
// and 13 example links. It mirrors the reference catalog shipped with the
// application so the store is usable before any external snapshot has been
// fetched.
var builtinSnapshot = types.Snapshot{
	Metadata: types.SnapshotMetadata{
		Version:    "1.0.0",
		Source:     "built-in sample dataset",
		Language:   "ru",
		Disclaimer: "ВНИМАНИЕ: Эта информация носит справочный характер. Перед применением любых лекарственных растений обязательно проконсультируйтесь с врачом.",
	},
	Plants: []types.SnapshotPlant{
		{
			Name:        "Ромашка аптечная",
			LatinName:   "Matricaria recutita",
			Description: "Противовоспалительное, успокаивающее средство",
			Properties:  "Спазмолитическое, антисептическое",
			Uses:        []string{"Digestive disorders", "Insomnia", "Anxiety", "Skin inflammation"},
			ImagePath:   "flower-lotus",
		},
		{
			Name:        "Мята перечная",
			LatinName:   "Mentha piperita",
			Description: "Освежающее, болеутоляющее средство",
			Properties:  "Спазмолитическое, желчегонное",
			Uses:        []string{"Indigestion", "Headaches", "Nausea"},
			ImagePath:   "plant",
		},
		{
			Name:        "Зверобой продырявленный",
			LatinName:   "Hypericum perforatum",
			Description: "Природный антидепрессант",
			Properties:  "Антидепрессивное, противовоспалительное",
			Uses:        []string{"Mild depression", "Anxiety", "Wound healing"},
			Toxicity:    "Не сочетать с антидепрессантами",
			ImagePath:   "sun",
		},
		{
			Name:        "Календула лекарственная",
			LatinName:   "Calendula officinalis",
			Description: "Ранозаживляющее средство",
			Properties:  "Антисептическое, противовоспалительное",
			Uses:        []string{"Wound healing", "Skin conditions", "Burns"},
			ImagePath:   "flower-lotus",
		},
		{
			Name:        "Валериана лекарственная",
			LatinName:   "Valeriana officinalis",
			Description: "Успокоительное средство",
			Properties:  "Седативное, спазмолитическое",
			Uses:        []string{"Insomnia", "Anxiety", "Nervous tension"},
			ImagePath:   "flower-tulip",
		},
		{
			Name:        "Шалфей лекарственный",
			LatinName:   "Salvia officinalis",
			Description: "Противовоспалительное средство для горла",
			Properties:  "Антисептическое, вяжущее",
			Uses:        []string{"Sore throat", "Mouth ulcers", "Digestive issues"},
			ImagePath:   "plant",
		},
		{
			Name:        "Крапива двудомная",
			LatinName:   "Urtica dioica",
			Description: "Кровоостанавливающее, витаминное средство",
			Properties:  "Гемостатическое, общеукрепляющее",
			Uses:        []string{"Anemia", "Arthritis", "Allergies"},
			ImagePath:   "leaf",
		},
		{
			Name:        "Липа сердцевидная",
			LatinName:   "Tilia cordata",
			Description: "Потогонное, жаропонижающее средство",
			Properties:  "Противовоспалительное, отхаркивающее",
			Uses:        []string{"Colds and flu", "Fever", "Insomnia"},
			ImagePath:   "tree",
		},
		{
			Name:        "Чабрец (тимьян)",
			LatinName:   "Thymus vulgaris",
			Description: "Отхаркивающее средство",
			Properties:  "Противомикробное, муколитическое",
			Uses:        []string{"Respiratory infections", "Cough", "Bronchitis"},
			ImagePath:   "plant",
		},
		{
			Name:        "Имбирь лекарственный",
			LatinName:   "Zingiber officinale",
			Description: "Противопростудное, согревающее средство",
			Properties:  "Иммуномодулирующее, противорвотное",
			Uses:        []string{"Nausea", "Digestive issues", "Colds"},
			ImagePath:   "carrot",
		},
	},
	Diseases: []types.SnapshotDisease{
		{Name: "Простуда", Description: "ОРВИ, грипп", Category: types.CategoryRespiratory},
		{Name: "Гастрит", Description: "Воспаление слизистой желудка", Category: types.CategoryDigestive},
		{Name: "Бессонница", Description: "Нарушение сна", Category: types.CategoryNervous},
		{Name: "Головная боль", Description: "Цефалгия различного происхождения", Category: types.CategoryPain},
		{Name: "Кашель", Description: "Сухой и влажный кашель", Category: types.CategoryRespiratory},
		{Name: "Депрессия легкая", Description: "Подавленное настроение", Category: types.CategoryNervous},
		{Name: "Раны, порезы", Description: "Повреждения кожи", Category: types.CategorySkin},
		{Name: "Боль в горле", Description: "Фарингит, тонзиллит", Category: types.CategoryRespiratory},
		{Name: "Анемия", Description: "Пониженный гемоглобин", Category: types.CategoryOther},
		{Name: "Тошнота", Description: "Диспепсия, укачивание", Category: types.CategoryDigestive},
	},
	Relationships: []types.SnapshotRelationship{
		{PlantName: "Ромашка аптечная", DiseaseName: "Простуда", Recipe: "1 ст.ложка цветков на стакан кипятка, настоять 15 минут", Dosage: "3 раза в день по 1/3 стакана"},
		{PlantName: "Ромашка аптечная", DiseaseName: "Гастрит", Recipe: "1 ч.ложка на стакан кипятка, настоять 20 минут", Dosage: "За 30 минут до еды, 3 раза в день"},
		{PlantName: "Ромашка аптечная", DiseaseName: "Бессонница", Recipe: "2 ст.ложки на 500 мл кипятка", Dosage: "Перед сном 1 стакан"},
		{PlantName: "Мята перечная", DiseaseName: "Головная боль", Recipe: "1 ч.ложка листьев на чашку, настоять 10 минут", Dosage: "При появлении боли"},
		{PlantName: "Мята перечная", DiseaseName: "Тошнота", Recipe: "Свежие листья заварить кипятком", Dosage: "Небольшими глотками"},
		{PlantName: "Зверобой продырявленный", DiseaseName: "Депрессия легкая", Recipe: "1 ст.ложка травы на 200 мл кипятка, 15 минут", Dosage: "2-3 раза в день курсом 4-6 недель", Notes: "Не сочетать с антидепрессантами!"},
		{PlantName: "Календула лекарственная", DiseaseName: "Раны, порезы", Recipe: "Настойка 1:10 на спирту", Dosage: "Промывать рану 2-3 раза в день"},
		{PlantName: "Валериана лекарственная", DiseaseName: "Бессонница", Recipe: "Настойка или таблетки по инструкции", Dosage: "За час до сна"},
		{PlantName: "Шалфей лекарственный", DiseaseName: "Боль в горле", Recipe: "1 ст.ложка на стакан кипятка, 30 минут", Dosage: "Полоскать 5-6 раз в день"},
		{PlantName: "Крапива двудомная", DiseaseName: "Анемия", Recipe: "2 ст.ложки листьев на 500 мл кипятка", Dosage: "3 раза в день перед едой"},
		{PlantName: "Липа сердцевидная", DiseaseName: "Простуда", Recipe: "2 ст.ложки цветков на 500 мл кипятка", Dosage: "Горячим на ночь"},
		{PlantName: "Чабрец (тимьян)", DiseaseName: "Кашель", Recipe: "1 ст.ложка на стакан кипятка, 15 минут", Dosage: "3-4 раза в день"},
		{PlantName: "Имбирь лекарственный", DiseaseName: "Простуда", Recipe: "Свежий корень нарезать, залить кипятком, добавить мёд", Dosage: "2-3 раза в день"},
	},
}

// Seed populates the store from snapshot, or from the built-in sample
// dataset when snapshot is nil. A non-empty store is left untouched: the
// call logs and returns nil, so callers may invoke it defensively.
func (s *Store) Seed(snapshot *types.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	empty, err := s.isEmptyLocked()
	if err != nil {
		return err
	}
	if !empty {
		s.logger.Info("store already populated, skipping seed")
		return nil
	}
	return s.seedLocked(snapshot)
}

// seedLocked runs the seed pass. The caller holds the write lock, and the
// seeding latch rejects re-entry so two callers that both observed an
// empty store can never populate it twice.
func (s *Store) seedLocked(snapshot *types.Snapshot) error {
	if s.seeding {
		return nil
	}
	s.seeding = true
	defer func() { s.seeding = false }()

	if snapshot == nil {
		s.logger.Info("no seed snapshot available, using built-in sample dataset")
		snapshot = &builtinSnapshot
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	// Insert order is fixed: plants, then diseases, then links resolved
	// through transient name→id maps, then metadata. The maps are never
	// persisted.
	plantIDs := make(map[string]int64, len(snapshot.Plants))
	for _, sp := range snapshot.Plants {
		if sp.Name == "" {
			s.logger.Warn("skipping plant with empty name")
			continue
		}
		uses, err := marshalUses(sp.Uses)
		if err != nil {
			return fmt.Errorf("encoding uses for %s: %w", sp.Name, err)
		}
		res, err := tx.Exec(
			"INSERT INTO plants (name, name_lower, latin_name, description, properties, uses, toxicity, image_path) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			sp.Name, strings.ToLower(sp.Name), sp.LatinName, sp.Description, sp.Properties, uses, sp.Toxicity, sp.ImagePath,
		)
		if err != nil {
			return fmt.Errorf("seeding plant %s: %w", sp.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading seeded plant id: %w", err)
		}
		plantIDs[sp.Name] = id
	}

	diseaseIDs := make(map[string]int64, len(snapshot.Diseases))
	for _, sd := range snapshot.Diseases {
		if sd.Name == "" {
			s.logger.Warn("skipping disease with empty name")
			continue
		}
		res, err := tx.Exec(
			"INSERT INTO diseases (name, name_lower, description, category) VALUES (?, ?, ?, ?)",
			sd.Name, strings.ToLower(sd.Name), sd.Description, types.NormalizeCategory(sd.Category),
		)
		if err != nil {
			return fmt.Errorf("seeding disease %s: %w", sd.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading seeded disease id: %w", err)
		}
		diseaseIDs[sd.Name] = id
	}

	linked := 0
	for _, rel := range snapshot.Relationships {
		plantID, ok := plantIDs[rel.PlantName]
		if !ok {
			s.logger.Warn("skipping link with unresolved plant", "plant", rel.PlantName, "disease", rel.DiseaseName)
			continue
		}
		diseaseID, ok := diseaseIDs[rel.DiseaseName]
		if !ok {
			s.logger.Warn("skipping link with unresolved disease", "plant", rel.PlantName, "disease", rel.DiseaseName)
			continue
		}
		_, err := tx.Exec(
			"INSERT INTO plant_diseases (link_id, plant_id, disease_id, recipe, dosage, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			generateLinkID(), plantID, diseaseID, rel.Recipe, rel.Dosage, rel.Notes, time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("seeding link %s → %s: %w", rel.PlantName, rel.DiseaseName, err)
		}
		linked++
	}

	createdAt := parseSnapshotTime(snapshot.Metadata.CreatedAt)
	_, err = tx.Exec(
		`INSERT INTO metadata (meta_key, version, created_at, source, language, disclaimer)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(meta_key) DO UPDATE SET
             version = excluded.version,
             created_at = excluded.created_at,
             source = excluded.source,
             language = excluded.language,
             disclaimer = excluded.disclaimer`,
		metaKey, snapshot.Metadata.Version, createdAt.Format(time.RFC3339),
		snapshot.Metadata.Source, snapshot.Metadata.Language, snapshot.Metadata.Disclaimer,
	)
	if err != nil {
		return fmt.Errorf("seeding metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	s.logger.Info("store seeded",
		"plants", len(plantIDs),
		"diseases", len(diseaseIDs),
		"links", linked,
		"source", snapshot.Metadata.Source,
	)
	return nil
}

// parseSnapshotTime reads the snapshot's createdAt leniently: RFC3339 with
// or without fractional seconds, falling back to the load time.
func parseSnapshotTime(raw string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}

// DecodeSnapshot parses a seed snapshot document from its JSON encoding.
// It lives here rather than in the CLI so every consumer of snapshot files
// shares one tolerant decoder. Unknown fields are ignored.
func DecodeSnapshot(data []byte) (*types.Snapshot, error) {
	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}
