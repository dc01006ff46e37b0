// Package canonical locates and parses champion records inside canonical
// patch documents.
package canonical

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

const maxReportedKeys = 30

// ShapeError reports a document in which no known convention locates the
// champion map.
type ShapeError struct {
	Reason string
	Keys   []string
}

func (e *ShapeError) Error() string {
	if len(e.Keys) == 0 {
		return fmt.Sprintf("canonical document: %s", e.Reason)
	}
	return fmt.Sprintf("canonical document: %s (top-level keys: %s)", e.Reason, strings.Join(e.Keys, ", "))
}

type rule struct {
	name    string
	extract func(doc map[string]any) (map[string]any, bool)
}

// rules are tried in order; the first match wins.
var rules = []rule{
	{name: "top-level", extract: func(doc map[string]any) (map[string]any, bool) {
		return doc, isEntityMap(doc)
	}},
	{name: "champions", extract: func(doc map[string]any) (map[string]any, bool) {
		return entityMapAt(doc, "champions")
	}},
	{name: "data.champions", extract: func(doc map[string]any) (map[string]any, bool) {
		data, ok := doc["data"].(map[string]any)
		if !ok {
			return nil, false
		}
		return entityMapAt(data, "champions")
	}},
	{name: "data", extract: func(doc map[string]any) (map[string]any, bool) {
		return entityMapAt(doc, "data")
	}},
}

// Resolve returns the champion map of doc, keyed as in the document.
func Resolve(doc any) (map[string]any, error) {
	entities, _, err := ResolveShape(doc)
	return entities, err
}

// ResolveShape is Resolve that also reports which convention matched.
func ResolveShape(doc any) (map[string]any, string, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, "", &ShapeError{Reason: "not an object"}
	}

	for _, r := range rules {
		if entities, ok := r.extract(obj); ok {
			return entities, r.name, nil
		}
	}

	return nil, "", &ShapeError{Reason: "champions map not found", Keys: topLevelKeys(obj)}
}

// Decode parses a UTF-8 JSON document. Numbers are kept as json.Number.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode canonical document: %w", err)
	}
	return doc, nil
}

func entityMapAt(obj map[string]any, field string) (map[string]any, bool) {
	m, ok := obj[field].(map[string]any)
	if !ok || !isEntityMap(m) {
		return nil, false
	}
	return m, true
}

// isEntityMap reports whether m is non-empty and every value looks like an
// entity: an object carrying an "id" field.
func isEntityMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for _, v := range m {
		if !looksLikeEntity(v) {
			return false
		}
	}
	return true
}

func looksLikeEntity(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, hasID := obj["id"]
	return hasID
}

func topLevelKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxReportedKeys {
		keys = keys[:maxReportedKeys]
	}
	return keys
}
