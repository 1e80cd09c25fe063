// Package preferredvalues snaps arbitrary positive magnitudes onto an
// IEC 60063 preferred-number grid (E12/E24/E96). It knows nothing about
// ohms or farads: callers pass raw mantissa lists and a decade range,
// and get back the grid point, its decade exponent, and the percent
// error versus the target. The resistor and capacitor packages both
// build on this rather than each hand-rolling their own snap logic.
package preferredvalues

import "math"

// Snap is the result of matching a target magnitude to the nearest
// point on a bounded preferred-number grid.
type Snap struct {
	Mantissa float64 // in [1.0, 10.0)
	Exponent int     // decade, so Value = Mantissa * 10^Exponent
	Value    float64
	ErrorPct float64 // signed: (Value - target) / target * 100
}

// NearestBounded finds the closest value to target among mantissa*10^exp
// for every mantissa in series and every exponent in [minExp, maxExp].
// Ties prefer the smaller value, matching the tie-break rule used
// throughout this codebase.
func NearestBounded(target float64, series []float64, minExp, maxExp int) Snap {
	bestValue := series[0] * math.Pow(10, float64(minExp))
	bestDist := math.Abs(bestValue - target)

	for exp := minExp; exp <= maxExp; exp++ {
		scale := math.Pow(10, float64(exp))
		for _, m := range series {
			v := m * scale
			dist := math.Abs(v - target)
			if dist < bestDist || (dist == bestDist && v < bestValue) {
				bestValue = v
				bestDist = dist
			}
		}
	}

	exponent := int(math.Floor(math.Log10(bestValue)))
	mantissa := bestValue / math.Pow(10, float64(exponent))

	return Snap{
		Mantissa: mantissa,
		Exponent: exponent,
		Value:    bestValue,
		ErrorPct: (bestValue - target) / target * 100,
	}
}

// WithinOneDecade reports whether value is within a factor of 10 of
// target, in either direction.
func WithinOneDecade(value, target float64) bool {
	ratio := value / target
	if ratio < 1 {
		ratio = 1 / ratio
	}
	return ratio <= 10
}
