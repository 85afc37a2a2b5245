// Package area resolves a sensor position to a named city district.
package area

// SkopjeResolver maps a (lat, lon) position to one of Skopje's districts via
// a static bounding-box table. It is consulted only for Skopje readings;
// everything else keeps the constant unknown area.
type SkopjeResolver struct{}

func NewSkopjeResolver() *SkopjeResolver {
	return &SkopjeResolver{}
}

// Unknown is returned for positions outside every known district.
const Unknown = "unknown_area"

// Resolve returns the district whose bounding box contains the position.
// Boxes overlap, so order matters: more specific districts are checked before
// broader ones.
func (r *SkopjeResolver) Resolve(lat, lon float64) string {
	// Bounding box around Skopje (quick reject)
	if lat < 41.88 || lat > 42.12 || lon < 21.20 || lon > 21.70 {
		return Unknown
	}

	switch {
	// Aerodrom (SE, near airport / south of Vardar)
	case lat >= 41.93 && lat <= 42.00 && lon >= 21.44 && lon <= 21.54:
		return "aerodrom"
	// Kisela Voda (S / SE, below Aerodrom)
	case lat >= 41.88 && lat <= 41.97 && lon >= 21.41 && lon <= 21.56:
		return "kisela_voda"
	// Centar (central)
	case lat >= 41.98 && lat <= 42.02 && lon >= 21.40 && lon <= 21.47:
		return "centar"
	// Cair (north of Centar)
	case lat >= 42.01 && lat <= 42.06 && lon >= 21.43 && lon <= 21.50:
		return "cair"
	// Suto Orizari (north / north-west of Cair)
	case lat >= 42.05 && lat <= 42.10 && lon >= 21.40 && lon <= 21.50:
		return "suto_orizari"
	// Butel (north / north-east)
	case lat >= 42.04 && lat <= 42.10 && lon >= 21.49 && lon <= 21.58:
		return "butel"
	// Gazi Baba (east / north-east, larger)
	case lat >= 41.99 && lat <= 42.09 && lon >= 21.50 && lon <= 21.66:
		return "gazi_baba"
	// Karposh (west-central)
	case lat >= 41.99 && lat <= 42.07 && lon >= 21.33 && lon <= 21.43:
		return "karposh"
	// Gjorce Petrov (north-west)
	case lat >= 42.02 && lat <= 42.12 && lon >= 21.20 && lon <= 21.36:
		return "gjorce_petrov"
	// Saraj (west / south-west, broad)
	case lat >= 41.92 && lat <= 42.08 && lon >= 21.20 && lon <= 21.33:
		return "saraj"
	}

	return Unknown
}
