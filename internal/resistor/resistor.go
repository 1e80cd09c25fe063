// Package resistor implements the color-code codec: decoding a band
// sequence to a resistance and tolerance, encoding a resistance back to
// bands, and snapping a target value to an E-series standard. All three
// operations are pure functions over the tables in internal/knowledge;
// nothing here talks to MCP or does string formatting for humans.
package resistor

import (
	"fmt"
	"math"
	"strings"

	"github.com/samuelf/electronics-mcp-server/internal/knowledge"
	"github.com/samuelf/electronics-mcp-server/internal/mcperr"
	"github.com/samuelf/electronics-mcp-server/internal/preferredvalues"
)

// DecodeResult is the outcome of decoding a band sequence.
type DecodeResult struct {
	Ohms                 float64
	TolerancePct         float64
	ToleranceWasImplicit bool
	MinOhms              float64
	MaxOhms              float64
}

func normalize(color string) string {
	c := strings.ToLower(strings.TrimSpace(color))
	c = strings.ReplaceAll(c, "-", "")
	c = strings.ReplaceAll(c, "_", "")
	if c == "gray" {
		return "grey"
	}
	return c
}

// DecodeColorBands decodes a 3, 4, or 5 band color sequence per
// IEC 60062. A 3-band sequence omits tolerance, which implies +/-20%.
func DecodeColorBands(bands []string) (DecodeResult, error) {
	colors, err := knowledge.Colors()
	if err != nil {
		return DecodeResult{}, err
	}

	if len(bands) < 3 || len(bands) > 5 {
		return DecodeResult{}, mcperr.New(mcperr.InvalidBandCount,
			"expected 3, 4, or 5 color bands, got %d", len(bands)).
			WithHint("supply digit, digit, multiplier[, tolerance] or digit, digit, digit, multiplier, tolerance colors")
	}

	norm := make([]string, len(bands))
	for i, b := range bands {
		norm[i] = normalize(b)
	}

	digitCount := 2
	if len(bands) == 5 {
		digitCount = 3
	}

	digits := 0
	for i := 0; i < digitCount; i++ {
		d, ok := colors.Digits[norm[i]]
		if !ok {
			return DecodeResult{}, mcperr.New(mcperr.InvalidColor,
				"band %d %q is not a valid digit color", i+1, bands[i])
		}
		digits = digits*10 + d
	}

	multIdx := digitCount
	multiplier, ok := colors.Multipliers[norm[multIdx]]
	if !ok {
		return DecodeResult{}, mcperr.New(mcperr.InvalidColor,
			"band %d %q is not a valid multiplier color", multIdx+1, bands[multIdx])
	}

	tolerance := 20.0
	implicit := true
	if tolIdx := multIdx + 1; tolIdx < len(bands) {
		t, ok := colors.Tolerances[norm[tolIdx]]
		if !ok {
			return DecodeResult{}, mcperr.New(mcperr.InvalidTolerance,
				"band %d %q is not a valid tolerance color", tolIdx+1, bands[tolIdx])
		}
		tolerance = t
		implicit = false
	}

	ohms := float64(digits) * multiplier
	return DecodeResult{
		Ohms:                 ohms,
		TolerancePct:         tolerance,
		ToleranceWasImplicit: implicit,
		MinOhms:              ohms * (1 - tolerance/100),
		MaxOhms:              ohms * (1 + tolerance/100),
	}, nil
}

// EncodeResult is the outcome of encoding a resistance into bands.
type EncodeResult struct {
	Bands      []string
	ActualOhms float64
	ErrorPct   float64
}

// EncodeResistance picks color bands for ohms at the given tolerance,
// using 4 bands unless prefer5Band requests a 3-digit precision code.
func EncodeResistance(ohms, tolerancePct float64, prefer5Band bool) (EncodeResult, error) {
	if ohms <= 0 {
		return EncodeResult{}, mcperr.New(mcperr.NonPositiveInput, "ohms must be positive, got %v", ohms)
	}

	colors, err := knowledge.Colors()
	if err != nil {
		return EncodeResult{}, err
	}

	tolColor, err := reverseTolerance(colors, tolerancePct)
	if err != nil {
		return EncodeResult{}, err
	}

	digitCount := 2
	lowBound := 10.0
	if prefer5Band {
		digitCount = 3
		lowBound = 100.0
	}
	highBound := lowBound * 10

	mantissa := ohms
	exp := 0
	for mantissa >= highBound {
		mantissa /= 10
		exp++
	}
	for mantissa < lowBound {
		mantissa *= 10
		exp--
	}

	// Round to the nearest integer, halves toward the smaller value.
	sig := int(math.Ceil(mantissa - 0.5))
	// Rounding may push the significand out of range at a decade
	// boundary (e.g. 999.6 -> 1000); renormalize once.
	if float64(sig) >= highBound {
		sig /= 10
		exp++
	}

	multiplierValue := math.Pow(10, float64(exp))
	multColor, multActual := nearestMultiplierColor(colors, multiplierValue)

	digitColors := make([]string, digitCount)
	remaining := sig
	for i := digitCount - 1; i >= 0; i-- {
		digitColors[i] = digitNameForValue(colors, remaining%10)
		remaining /= 10
	}

	bands := append(append([]string{}, digitColors...), multColor, tolColor)
	actual := float64(sig) * multActual

	return EncodeResult{
		Bands:      bands,
		ActualOhms: actual,
		ErrorPct:   (actual - ohms) / ohms * 100,
	}, nil
}

func reverseTolerance(colors knowledge.ColorTable, pct float64) (string, error) {
	for name, v := range colors.Tolerances {
		if v == pct {
			return name, nil
		}
	}
	if pct == 20.0 {
		return "", mcperr.New(mcperr.InvalidTolerance,
			"tolerance %.1f%% has no dedicated band color; omit the tolerance band instead", pct).
			WithHint("use decode with a 3-band sequence for implicit +/-20% tolerance")
	}
	return "", mcperr.New(mcperr.InvalidTolerance, "no tolerance color encodes %.2f%%", pct)
}

func nearestMultiplierColor(colors knowledge.ColorTable, target float64) (string, float64) {
	bestName, bestValue := "", math.Inf(1)
	bestDist := math.Inf(1)
	for name, v := range colors.Multipliers {
		if name == "gray" {
			continue // duplicate of grey, never the canonical name
		}
		dist := math.Abs(v - target)
		if dist < bestDist || (dist == bestDist && v < bestValue) {
			bestName, bestValue, bestDist = name, v, dist
		}
	}
	return bestName, bestValue
}

func digitNameForValue(colors knowledge.ColorTable, digit int) string {
	for name, v := range colors.Digits {
		if v == digit && name != "gray" {
			return name
		}
	}
	return fmt.Sprintf("digit-%d", digit)
}

// StandardResult is the outcome of snapping a target resistance to an
// E-series standard value.
type StandardResult struct {
	ValueOhms float64
	ErrorPct  float64
	Bands     EncodeResult
}

// FindStandardResistor snaps targetOhms to the nearest value in the
// requested series (E12/E24/E96) and reports the color bands for it.
func FindStandardResistor(targetOhms float64, series string) (StandardResult, error) {
	if targetOhms <= 0 {
		return StandardResult{}, mcperr.New(mcperr.NonPositiveInput, "target_ohms must be positive, got %v", targetOhms)
	}

	tables, err := knowledge.Series()
	if err != nil {
		return StandardResult{}, err
	}

	var mantissas []float64
	var tolerance float64
	switch strings.ToUpper(series) {
	case "E12":
		mantissas, tolerance = tables.E12, 10.0
	case "E24":
		mantissas, tolerance = tables.E24, 5.0
	case "E96":
		mantissas, tolerance = tables.E96, 1.0
	default:
		return StandardResult{}, mcperr.New(mcperr.InvalidTolerance, "unknown series %q, expected E12, E24, or E96", series)
	}

	// Standard resistor values are conventionally tabulated from 1 ohm
	// to 10 megaohms (decades 0..6), matching the range the original
	// reference tool searched.
	snap := preferredvalues.NearestBounded(targetOhms, mantissas, 0, 6)
	bands, err := EncodeResistance(snap.Value, tolerance, false)
	if err != nil {
		return StandardResult{}, err
	}

	return StandardResult{
		ValueOhms: snap.Value,
		ErrorPct:  snap.ErrorPct,
		Bands:     bands,
	}, nil
}
