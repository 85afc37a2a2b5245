package entity

// RawReading matches one element of the upstream provider's /rest/current
// JSON response. Value stays a string here; parsing happens in the producer.
//
//	{
//	  "sensorId": "sensor-123",
//	  "position": "41.9981,21.4254",
//	  "stamp": "2024-12-10T21:00:00+01:00",
//	  "year": 2024,
//	  "type": "pm10",
//	  "value": "25.5"
//	}
type RawReading struct {
	SensorID string `json:"sensorId"`
	Position string `json:"position"`
	Stamp    string `json:"stamp"`
	Year     int    `json:"year,omitempty"`
	Type     string `json:"type"`
	Value    string `json:"value"`
}
