package canonical_test

import (
	"strings"
	"testing"

	"github.com/audwofla/Aramalyze/internal/canonical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func champMap() map[string]any {
	return map[string]any{
		"57":  map[string]any{"id": 57, "key": "Maokai", "name": "Maokai"},
		"432": map[string]any{"id": 432, "key": "Bard", "name": "Bard"},
	}
}

func TestResolve_ShapeInvariance(t *testing.T) {
	tests := []struct {
		name      string
		doc       map[string]any
		wantShape string
	}{
		{
			name:      "top-level map",
			doc:       champMap(),
			wantShape: "top-level",
		},
		{
			name:      "champions field",
			doc:       map[string]any{"patch": "14.1", "champions": champMap()},
			wantShape: "champions",
		},
		{
			name:      "data.champions",
			doc:       map[string]any{"data": map[string]any{"champions": champMap(), "version": "14.1"}},
			wantShape: "data.champions",
		},
		{
			name:      "data as map",
			doc:       map[string]any{"type": "champion", "data": champMap()},
			wantShape: "data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, shape, err := canonical.ResolveShape(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, shape)
			assert.Equal(t, champMap(), got)
		})
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	// Every value is id-bearing, so the top-level rule claims the document
	// even though a "champions" key is present.
	doc := map[string]any{
		"champions": map[string]any{"id": 1, "key": "A", "name": "A"},
		"other":     map[string]any{"id": 2, "key": "B", "name": "B"},
	}

	got, shape, err := canonical.ResolveShape(doc)
	require.NoError(t, err)
	assert.Equal(t, "top-level", shape)
	assert.Len(t, got, 2)

	// champions wins over data when both are valid
	doc = map[string]any{
		"patch":     "14.1",
		"champions": map[string]any{"1": map[string]any{"id": 1}},
		"data":      map[string]any{"2": map[string]any{"id": 2}},
	}
	got, shape, err = canonical.ResolveShape(doc)
	require.NoError(t, err)
	assert.Equal(t, "champions", shape)
	assert.Contains(t, got, "1")
}

func TestResolve_FallsThroughInvalidCandidates(t *testing.T) {
	// Empty champions map does not match; data still can.
	doc := map[string]any{
		"champions": map[string]any{},
		"data":      champMap(),
	}

	got, shape, err := canonical.ResolveShape(doc)
	require.NoError(t, err)
	assert.Equal(t, "data", shape)
	assert.Equal(t, champMap(), got)
}

func TestResolve_UnrecognizedShapes(t *testing.T) {
	tests := []struct {
		name       string
		doc        any
		wantReason string
	}{
		{name: "list at top level", doc: []any{champMap()}, wantReason: "not an object"},
		{name: "string at top level", doc: "champions", wantReason: "not an object"},
		{name: "nil", doc: nil, wantReason: "not an object"},
		{name: "empty object", doc: map[string]any{}, wantReason: "champions map not found"},
		{name: "data is a string", doc: map[string]any{"data": "nope"}, wantReason: "champions map not found"},
		{name: "empty data", doc: map[string]any{"data": map[string]any{}}, wantReason: "champions map not found"},
		{
			name:       "entity without id",
			doc:        map[string]any{"champions": map[string]any{"57": map[string]any{"key": "Maokai"}}},
			wantReason: "champions map not found",
		},
		{
			name: "mixed values",
			doc: map[string]any{"data": map[string]any{
				"57":      map[string]any{"id": 57},
				"version": "14.1",
			}},
			wantReason: "champions map not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := canonical.Resolve(tt.doc)
			require.Error(t, err)

			var shapeErr *canonical.ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.wantReason, shapeErr.Reason)
		})
	}
}

func TestShapeError_ReportsTopLevelKeys(t *testing.T) {
	_, err := canonical.Resolve(map[string]any{"version": "14.1", "data": "x", "type": "champion"})

	var shapeErr *canonical.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, []string{"data", "type", "version"}, shapeErr.Keys)
	assert.Contains(t, err.Error(), "data, type, version")
}

func TestShapeError_CapsReportedKeys(t *testing.T) {
	doc := map[string]any{}
	for i := 0; i < 50; i++ {
		doc[strings.Repeat("k", i+1)] = i
	}

	_, err := canonical.Resolve(doc)

	var shapeErr *canonical.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Len(t, shapeErr.Keys, 30)
}

func TestDecode(t *testing.T) {
	doc, err := canonical.Decode(strings.NewReader(`{"data":{"57":{"id":57,"key":"Maokai","name":"Maokai"}}}`))
	require.NoError(t, err)

	got, shape, err := canonical.ResolveShape(doc)
	require.NoError(t, err)
	assert.Equal(t, "data", shape)
	assert.Contains(t, got, "57")

	_, err = canonical.Decode(strings.NewReader(`{"data":`))
	assert.Error(t, err)
}
