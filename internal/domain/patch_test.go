package domain_test

import (
	"sort"
	"testing"

	"github.com/audwofla/Aramalyze/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := domain.ParseVersion("14.10")
	require.NoError(t, err)
	assert.Equal(t, domain.Version{14, 10}, v)
	assert.Equal(t, "14.10", v.String())

	for _, bad := range []string{"", "14.", ".1", "14.x", "latest", "14.-1", "14..2"} {
		t.Run(bad, func(t *testing.T) {
			_, err := domain.ParseVersion(bad)
			assert.ErrorIs(t, err, domain.ErrInvalidPatch)
		})
	}
}

func TestComparePatches(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"14.10", "14.2", 1},
		{"14.2", "14.10", -1},
		{"14.9", "15.1", -1},
		{"14.1", "14.1", 0},
		{"14.1", "14.1.1", -1},
		{"14.01", "14.1", 0},
		{"garbage", "14.1", -1},
		{"14.1", "garbage", 1},
		{"a", "b", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ComparePatches(tt.a, tt.b))
		})
	}
}

func TestComparePatches_SortsNumerically(t *testing.T) {
	patches := []string{"14.10", "14.2", "13.24", "14.1", "14.9"}
	sort.Slice(patches, func(i, j int) bool {
		return domain.ComparePatches(patches[i], patches[j]) < 0
	})
	assert.Equal(t, []string{"13.24", "14.1", "14.2", "14.9", "14.10"}, patches)
}
