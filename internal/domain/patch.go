package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a dotted patch identifier such as "14.10" or "14.1.1",
// ordered component-wise by numeric value.
type Version []int

// ParseVersion parses a dotted patch identifier. Every component must be a
// non-negative integer.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPatch)
	}

	parts := strings.Split(s, ".")
	v := make(Version, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPatch, s)
		}
		v[i] = n
	}
	return v, nil
}

// Compare returns -1, 0 or 1. A version that is a strict prefix of another
// sorts first, so 14.1 < 14.1.1.
func (v Version) Compare(other Version) int {
	for i := 0; i < len(v) && i < len(other); i++ {
		switch {
		case v[i] < other[i]:
			return -1
		case v[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(v) < len(other):
		return -1
	case len(v) > len(other):
		return 1
	}
	return 0
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// ComparePatches orders two patch identifiers. Unparseable identifiers sort
// before every valid one and compare to each other lexically.
func ComparePatches(a, b string) int {
	va, errA := ParseVersion(a)
	vb, errB := ParseVersion(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return va.Compare(vb)
}
