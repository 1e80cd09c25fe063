package toolset

import (
	"fmt"
	"strings"

	"github.com/samuelf/electronics-mcp-server/internal/render"
	"github.com/samuelf/electronics-mcp-server/internal/resistor"
)

func handleDecodeResistorColorBands(args map[string]any) (string, error) {
	bands, err := requireStringSlice(args, "bands")
	if err != nil {
		return "", err
	}

	result, err := resistor.DecodeColorBands(bands)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Bands: %s\n", strings.Join(bands, ", "))
	tolNote := ""
	if result.ToleranceWasImplicit {
		tolNote = " (implicit, no tolerance band given)"
	}
	fmt.Fprintf(&b, "Resistance: %s +/-%.2f%%%s\n", render.Resistance(result.Ohms), result.TolerancePct, tolNote)
	fmt.Fprintf(&b, "Range: %s to %s\n", render.Resistance(result.MinOhms), render.Resistance(result.MaxOhms))
	return b.String(), nil
}

func handleEncodeResistorValue(args map[string]any) (string, error) {
	ohms, err := requireNumber(args, "resistance_ohms")
	if err != nil {
		return "", err
	}
	tolerance := optionalNumber(args, "tolerance_percent", 5.0)
	prefer5Band := optionalBool(args, "prefer_5band", false)

	result, err := resistor.EncodeResistance(ohms, tolerance, prefer5Band)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Target: %s +/-%.2f%%\n", render.Resistance(ohms), tolerance)
	fmt.Fprintf(&b, "Encoded: %s +/-%.2f%% (error %.2f%%)\n", render.Resistance(result.ActualOhms), tolerance, result.ErrorPct)
	fmt.Fprintf(&b, "Bands: %s\n", strings.Join(titleCaseAll(result.Bands), ", "))
	return b.String(), nil
}

func handleFindStandardResistor(args map[string]any) (string, error) {
	target, err := requireNumber(args, "target_ohms")
	if err != nil {
		return "", err
	}
	series := optionalString(args, "series", "E12")

	result, err := resistor.FindStandardResistor(target, series)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Target: %s (%s series)\n", render.Resistance(target), strings.ToUpper(series))
	fmt.Fprintf(&b, "Nearest standard value: %s (error %.2f%%)\n", render.Resistance(result.ValueOhms), result.ErrorPct)
	fmt.Fprintf(&b, "Bands: %s\n", strings.Join(titleCaseAll(result.Bands.Bands), ", "))
	return b.String(), nil
}

func titleCaseAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if n == "" {
			continue
		}
		out[i] = strings.ToUpper(n[:1]) + n[1:]
	}
	return out
}
