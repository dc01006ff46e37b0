package canonical

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FieldError reports a record that looks like a champion but carries a
// missing or mistyped field.
type FieldError struct {
	Entry  string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("champion %q: field %q %s", e.Entry, e.Field, e.Reason)
}

// AramMods holds the optional numeric ARAM modifiers of one record.
type AramMods struct {
	AbilityHaste *float64
	DmgDealt     *float64
	DmgTaken     *float64
	Healing      *float64
	Shielding    *float64
	Tenacity     *float64
	AttackSpeed  *float64
	EnergyRegen  *float64
}

func (m *AramMods) fields() map[string]**float64 {
	return map[string]**float64{
		"ability_haste": &m.AbilityHaste,
		"dmg_dealt":     &m.DmgDealt,
		"dmg_taken":     &m.DmgTaken,
		"healing":       &m.Healing,
		"shielding":     &m.Shielding,
		"tenacity":      &m.Tenacity,
		"attack_speed":  &m.AttackSpeed,
		"energy_regen":  &m.EnergyRegen,
	}
}

// SpellChange is the ordered changelog of one ability.
type SpellChange struct {
	SpellKey string
	Lines    []string
}

type ChampionRecord struct {
	ID   int64
	Key  string
	Name string
	Tags []string
	// Mods is nil when aram_mods is absent, empty or not an object.
	Mods *AramMods
	// SpellChanges is sorted by spell key; keys with no lines are dropped.
	SpellChanges []SpellChange
}

// ParseChampion converts one entry of a resolved champion map. entry is the
// map key and only used in error messages.
//
// Every stored string (key, name, tags and spell change lines) is
// NFC-normalized.
func ParseChampion(entry string, record map[string]any) (*ChampionRecord, error) {
	fieldErr := func(field, reason string) error {
		return &FieldError{Entry: entry, Field: field, Reason: reason}
	}

	id, err := parseID(record["id"])
	if err != nil {
		return nil, fieldErr("id", err.Error())
	}

	key, ok := requiredString(record, "key")
	if !ok {
		return nil, fieldErr("key", "must be a string")
	}
	name, ok := requiredString(record, "name")
	if !ok {
		return nil, fieldErr("name", "must be a string")
	}

	rec := &ChampionRecord{ID: id, Key: key, Name: name}

	if rec.Tags, err = parseStringList(record["tags"]); err != nil {
		return nil, fieldErr("tags", err.Error())
	}

	if rec.Mods, err = parseAramMods(record["aram_mods"]); err != nil {
		return nil, fieldErr("aram_mods", err.Error())
	}

	if rec.SpellChanges, err = parseSpellChanges(record["spell_changes"]); err != nil {
		return nil, fieldErr("spell_changes", err.Error())
	}

	return rec, nil
}

func parseID(v any) (int64, error) {
	switch id := v.(type) {
	case nil:
		return 0, fmt.Errorf("is required")
	case json.Number:
		if n, err := id.Int64(); err == nil {
			return n, nil
		}
		f, err := id.Float64()
		if err != nil {
			return 0, fmt.Errorf("is not a number: %q", id.String())
		}
		return integral(f)
	case float64:
		return integral(id)
	case int:
		return int64(id), nil
	case int64:
		return id, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("is not an integer: %q", id)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("has unsupported type %T", v)
	}
}

func integral(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("is not an integer: %v", f)
	}
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("is out of range: %v", f)
	}
	return int64(f), nil
}

func requiredString(record map[string]any, field string) (string, bool) {
	s, ok := record[field].(string)
	if !ok {
		return "", false
	}
	return norm.NFC.String(s), true
}

func parseStringList(v any) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []string:
		out := make([]string, len(list))
		for i, s := range list {
			out[i] = norm.NFC.String(s)
		}
		return out, nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("item %d is not a string", i)
			}
			out[i] = norm.NFC.String(s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("must be a list of strings")
	}
}

func parseAramMods(v any) (*AramMods, error) {
	raw, ok := v.(map[string]any)
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	mods := &AramMods{}
	for name, dst := range mods.fields() {
		f, err := parseOptionalFloat(raw[name])
		if err != nil {
			return nil, fmt.Errorf("%s %w", name, err)
		}
		*dst = f
	}
	return mods, nil
}

func parseOptionalFloat(v any) (*float64, error) {
	var f float64
	switch n := v.(type) {
	case nil:
		return nil, nil
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("is not a number: %q", n.String())
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return nil, fmt.Errorf("has unsupported type %T", v)
	}
	return &f, nil
}

func parseSpellChanges(v any) ([]SpellChange, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, nil
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var changes []SpellChange
	for _, k := range keys {
		lines, err := parseStringList(raw[k])
		if err != nil {
			return nil, fmt.Errorf("%s %w", k, err)
		}
		if len(lines) == 0 {
			continue
		}
		changes = append(changes, SpellChange{SpellKey: k, Lines: lines})
	}
	return changes, nil
}
