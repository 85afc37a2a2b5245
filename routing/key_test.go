package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSegment(t *testing.T) {
	t.Run("lowercases and replaces spaces", func(t *testing.T) {
		assert.Equal(t, "gazi_baba", NormalizeSegment("Gazi Baba"))
		assert.Equal(t, "pm10", NormalizeSegment("PM10"))
	})

	t.Run("blank becomes unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", NormalizeSegment(""))
		assert.Equal(t, "unknown", NormalizeSegment("   "))
	})
}

func TestReadingKey(t *testing.T) {
	assert.Equal(t, "reading.gazi_baba.pm10", ReadingKey("Gazi Baba", "pm10"))
	assert.Equal(t, "reading.unknown.unknown", ReadingKey("", ""))
}

func TestAlertKey(t *testing.T) {
	// Level keeps its case on the wire.
	assert.Equal(t, "alert.centar.RED", AlertKey("Centar", "RED"))
}

func TestParseReadingKeyRoundTrip(t *testing.T) {
	cases := []struct {
		area   string
		metric string
	}{
		{"gazi_baba", "pm10"},
		{"centar", "temperature"},
		{"unknown_area", "noise"},
	}

	for _, tc := range cases {
		t.Run(tc.area+"/"+tc.metric, func(t *testing.T) {
			area, metric, err := ParseReadingKey(ReadingKey(tc.area, tc.metric))
			require.NoError(t, err)
			assert.Equal(t, tc.area, area)
			assert.Equal(t, tc.metric, metric)
		})
	}
}

func TestParseReadingKeyRejectsMalformed(t *testing.T) {
	t.Run("too few segments", func(t *testing.T) {
		_, _, err := ParseReadingKey("reading.onlyone")
		assert.Error(t, err)
	})

	t.Run("wrong prefix", func(t *testing.T) {
		_, _, err := ParseReadingKey("alert.centar.RED")
		assert.Error(t, err)
	})

	t.Run("empty key", func(t *testing.T) {
		_, _, err := ParseReadingKey("")
		assert.Error(t, err)
	})
}

func TestParseAlertKey(t *testing.T) {
	area, level, err := ParseAlertKey("alert.centar.RED")
	require.NoError(t, err)
	assert.Equal(t, "centar", area)
	assert.Equal(t, "RED", level)

	_, _, err = ParseAlertKey("reading.centar.pm10")
	assert.Error(t, err)
}

func TestParseKeepsExtraSegments(t *testing.T) {
	// Only the first three segments carry meaning; extras are tolerated.
	area, metric, err := ParseReadingKey("reading.centar.pm10.extra")
	require.NoError(t, err)
	assert.Equal(t, "centar", area)
	assert.Equal(t, "pm10", metric)
}
