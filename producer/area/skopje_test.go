package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownDistricts(t *testing.T) {
	r := NewSkopjeResolver()

	cases := []struct {
		name string
		lat  float64
		lon  float64
		want string
	}{
		{"city center", 42.00, 21.43, "centar"},
		{"gazi baba", 42.00, 21.60, "gazi_baba"},
		{"aerodrom", 41.95, 21.47, "aerodrom"},
		{"karposh", 42.00, 21.38, "karposh"},
		{"gjorce petrov", 42.05, 21.30, "gjorce_petrov"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Resolve(tc.lat, tc.lon))
		})
	}
}

func TestResolveOutsideBoundingBox(t *testing.T) {
	r := NewSkopjeResolver()

	// Ohrid is nowhere near Skopje.
	assert.Equal(t, Unknown, r.Resolve(41.12, 20.80))
	assert.Equal(t, Unknown, r.Resolve(0, 0))
}

func TestOverlapPrecedence(t *testing.T) {
	r := NewSkopjeResolver()

	// Aerodrom's box sits inside Kisela Voda's broader one; the more specific
	// district wins.
	assert.Equal(t, "aerodrom", r.Resolve(41.95, 21.50))
}
