// Package render turns computed electrical quantities into the
// SI-prefixed strings the tool layer puts in front of a language model.
// It never computes anything itself — every function here is a pure
// value-to-string mapping, kept separate from internal/resistor,
// internal/capacitor, and internal/gpio so their computations can be
// tested without string-matching.
package render

import (
	"fmt"
	"math"
)

type siPrefix struct {
	exp    int
	symbol string
}

// Ordered largest exponent first so FormatSI can pick the first prefix
// that puts the mantissa at or above 1.
var siPrefixes = []siPrefix{
	{9, "G"},
	{6, "M"},
	{3, "k"},
	{0, ""},
	{-3, "m"},
	{-6, "µ"}, // µ
	{-9, "n"},
	{-12, "p"},
}

// FormatSI renders value with the SI prefix that puts its mantissa in
// [1, 1000), followed directly by unit (no space, matching the
// convention used throughout this server's tool output). Values outside
// the p..G range fall back to scientific notation. Rounding follows
// Go's correctly-rounded decimal conversion, which ties to even at the
// exact binary midpoint.
func FormatSI(value float64, unit string) string {
	if value == 0 {
		return "0" + unit
	}

	abs := math.Abs(value)

	if abs < 1e-12 || abs >= 1e12 {
		return fmt.Sprintf("%.2f×10^%d%s", value/math.Pow(10, math.Floor(math.Log10(abs))), int(math.Floor(math.Log10(abs))), unit)
	}

	for _, p := range siPrefixes {
		scale := math.Pow(10, float64(p.exp))
		mantissa := value / scale

		if math.Abs(mantissa) >= 1 {
			return formatMantissa(mantissa) + p.symbol + unit
		}
	}

	// Smaller than 1p but within the scientific-notation guard above:
	// use the smallest named prefix.
	smallest := siPrefixes[len(siPrefixes)-1]
	mantissa := value / math.Pow(10, float64(smallest.exp))

	return formatMantissa(mantissa) + smallest.symbol + unit
}

// formatMantissa renders a value already normalized to [1,1000) with
// between 2 and 6 significant figures: fewer decimal places as the
// integer part grows, so "1.20" but "120".
func formatMantissa(v float64) string {
	intDigits := 1
	for t := math.Abs(v); t >= 10; t /= 10 {
		intDigits++
	}

	decimals := 3 - intDigits
	if decimals < 0 {
		decimals = 0
	}

	if decimals == 0 {
		return fmt.Sprintf("%.0f", v)
	}

	s := fmt.Sprintf("%.*f", decimals, v)

	return s
}

// Resistance renders an ohm value as e.g. "4.70kΩ", "150Ω", "1.00MΩ".
func Resistance(ohms float64) string {
	return FormatSI(ohms, "Ω")
}

// Capacitance renders a farad value as e.g. "22.0nF", "1.00µF".
func Capacitance(farads float64) string {
	return FormatSI(farads, "F")
}

// Frequency renders a hertz value as e.g. "1.00kHz", "159Hz".
func Frequency(hz float64) string {
	return FormatSI(hz, "Hz")
}

// Duration renders a seconds value as e.g. "150µs", "1.00s".
func Duration(seconds float64) string {
	return FormatSI(seconds, "s")
}

// Inductance renders a henry value as e.g. "100µH", "1.00mH".
func Inductance(henries float64) string {
	return FormatSI(henries, "H")
}

// Percent formats a percentage with a leading sign when signed is true,
// e.g. "+0.35%" vs "0.35%".
func Percent(pct float64, signed bool) string {
	if signed {
		return fmt.Sprintf("%+.2f%%", pct)
	}

	return fmt.Sprintf("%.2f%%", pct)
}
