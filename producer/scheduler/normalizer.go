package scheduler

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/airpulse-io/airpulse/entity"
	"github.com/airpulse-io/airpulse/producer/area"
)

// Normalizer turns raw provider records into canonical measurements. A record
// is never rejected here: an unparseable timestamp falls back to now and an
// unparseable value becomes NaN, which the publish step filters out.
type Normalizer struct {
	resolver *area.SkopjeResolver
}

func NewNormalizer(resolver *area.SkopjeResolver) *Normalizer {
	return &Normalizer{resolver: resolver}
}

// Normalize builds a canonical Measurement from one raw provider record.
// Area resolution runs only for Skopje readings; every other city keeps the
// constant unknown area.
func (n *Normalizer) Normalize(city string, raw entity.RawReading) entity.Measurement {
	timestamp, err := time.Parse(time.RFC3339, raw.Stamp)
	if err != nil {
		timestamp = time.Now()
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw.Value), 64)
	if err != nil {
		value = math.NaN()
	}

	resolvedArea := area.Unknown
	if strings.EqualFold(city, "skopje") {
		if lat, lon, ok := parsePosition(raw.Position); ok {
			resolvedArea = n.resolver.Resolve(lat, lon)
		}
	}

	return entity.Measurement{
		City:      strings.ToUpper(city),
		Area:      resolvedArea,
		SensorID:  raw.SensorID,
		Position:  raw.Position,
		Metric:    raw.Type,
		Value:     value,
		Timestamp: timestamp,
	}
}

// parsePosition splits a "lat,lon" provider position string.
func parsePosition(position string) (lat, lon float64, ok bool) {
	parts := strings.Split(position, ",")
	if len(parts) < 2 {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
