package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/audwofla/Aramalyze/internal/domain"
	"gorm.io/gorm"
)

// ChampionBuilder creates canonical champion payloads with a builder pattern
type ChampionBuilder struct {
	id           int64
	key          string
	name         string
	tags         []string
	aramMods     map[string]any
	spellChanges map[string][]string
}

// NewChampionBuilder creates a new ChampionBuilder with default values
func NewChampionBuilder() *ChampionBuilder {
	return &ChampionBuilder{
		id:   57,
		key:  "Maokai",
		name: "Maokai",
	}
}

func (b *ChampionBuilder) WithID(id int64) *ChampionBuilder {
	b.id = id
	return b
}

func (b *ChampionBuilder) WithKey(key string) *ChampionBuilder {
	b.key = key
	return b
}

func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.name = name
	return b
}

func (b *ChampionBuilder) WithTags(tags ...string) *ChampionBuilder {
	b.tags = tags
	return b
}

// WithAramMod sets one modifier field, e.g. "dmg_dealt".
func (b *ChampionBuilder) WithAramMod(field string, value float64) *ChampionBuilder {
	if b.aramMods == nil {
		b.aramMods = map[string]any{}
	}
	b.aramMods[field] = value
	return b
}

func (b *ChampionBuilder) WithSpellChanges(spellKey string, lines ...string) *ChampionBuilder {
	if b.spellChanges == nil {
		b.spellChanges = map[string][]string{}
	}
	b.spellChanges[spellKey] = lines
	return b
}

// Entry returns the map key a canonical document uses for the champion.
func (b *ChampionBuilder) Entry() string {
	return strconv.FormatInt(b.id, 10)
}

// Payload returns the champion as a decoded JSON object.
func (b *ChampionBuilder) Payload() map[string]any {
	p := map[string]any{
		"id":   b.id,
		"key":  b.key,
		"name": b.name,
	}
	if b.tags != nil {
		tags := make([]any, len(b.tags))
		for i, t := range b.tags {
			tags[i] = t
		}
		p["tags"] = tags
	}
	if b.aramMods != nil {
		p["aram_mods"] = b.aramMods
	}
	if b.spellChanges != nil {
		sc := map[string]any{}
		for k, lines := range b.spellChanges {
			items := make([]any, len(lines))
			for i, l := range lines {
				items[i] = l
			}
			sc[k] = items
		}
		p["spell_changes"] = sc
	}
	return p
}

// EntityMap builds the map the shape resolver would return.
func EntityMap(champions ...*ChampionBuilder) map[string]any {
	m := make(map[string]any, len(champions))
	for _, c := range champions {
		m[c.Entry()] = c.Payload()
	}
	return m
}

// WriteDocument marshals doc to <dir>/<patch>.json and returns the path.
func WriteDocument(t *testing.T, dir, patch string, doc any) string {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}

	path := filepath.Join(dir, patch+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

// SeedChampions inserts count champions directly, bypassing the loader.
func SeedChampions(t *testing.T, db *gorm.DB, count int) []*domain.Champion {
	t.Helper()

	names := []string{"Ahri", "Brand", "Caitlyn", "Darius", "Ezreal", "Fiora", "Garen", "Heimerdinger", "Irelia", "Jinx"}

	champions := make([]*domain.Champion, 0, count)
	for i := 0; i < count && i < len(names); i++ {
		c := &domain.Champion{
			ID:   int64(i + 1),
			Key:  names[i],
			Name: names[i],
		}
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("failed to create champion: %v", err)
		}
		champions = append(champions, c)
	}
	return champions
}

// TableSnapshot reads every row of the four champion tables in a stable
// order, for comparing store states.
type TableSnapshot struct {
	Champions    []domain.Champion
	Tags         []domain.ChampionTag
	AramMods     []domain.ChampionAramMods
	SpellChanges []domain.ChampionSpellChange
}

func Snapshot(t *testing.T, db *gorm.DB) TableSnapshot {
	t.Helper()

	var s TableSnapshot
	steps := []error{
		db.Order("id").Find(&s.Champions).Error,
		db.Order("champion_id, tag").Find(&s.Tags).Error,
		db.Order("champion_id, patch").Find(&s.AramMods).Error,
		db.Order("champion_id, patch, spell_key, idx").Find(&s.SpellChanges).Error,
	}
	for _, err := range steps {
		if err != nil {
			t.Fatalf("failed to snapshot tables: %v", err)
		}
	}
	return s
}
