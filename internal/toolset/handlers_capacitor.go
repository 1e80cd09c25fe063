package toolset

import (
	"fmt"
	"strings"

	"github.com/samuelf/electronics-mcp-server/internal/capacitor"
	"github.com/samuelf/electronics-mcp-server/internal/render"
)

func handleCalculateCapacitiveReactance(args map[string]any) (string, error) {
	farads, err := requireNumber(args, "capacitance_farads")
	if err != nil {
		return "", err
	}
	hz, err := requireNumber(args, "frequency_hz")
	if err != nil {
		return "", err
	}
	voltage := optionalNumberPtr(args, "voltage")

	result, err := capacitor.CapacitiveReactance(farads, hz, voltage)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Capacitance: %s\n", render.Capacitance(farads))
	fmt.Fprintf(&b, "Frequency: %s\n", render.Frequency(hz))
	fmt.Fprintf(&b, "Reactance (Xc): %s\n", render.Resistance(result.OhmsXc))
	if result.HasCurrent {
		fmt.Fprintf(&b, "Current at %.2fVac: %.3fmA\n", *voltage, result.CurrentAmps*1000)
	}
	fmt.Fprintf(&b, "Formula: Xc = 1 / (2*pi*f*C)\n")
	return b.String(), nil
}

func handleCalculateRCTimeConstant(args map[string]any) (string, error) {
	ohms, err := requireNumber(args, "resistance_ohms")
	if err != nil {
		return "", err
	}
	farads, err := requireNumber(args, "capacitance_farads")
	if err != nil {
		return "", err
	}

	result, err := capacitor.RCTimeConstant(ohms, farads)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Resistance: %s\n", render.Resistance(ohms))
	fmt.Fprintf(&b, "Capacitance: %s\n", render.Capacitance(farads))
	fmt.Fprintf(&b, "Time constant (tau): %s\n", render.Duration(result.TauSeconds))
	for _, m := range result.Milestones {
		fmt.Fprintf(&b, "  %dtau (%s): %s charged\n", m.N, render.Duration(result.TauSeconds*float64(m.N)), render.Percent(m.Pct*100, false))
	}
	fmt.Fprintf(&b, "As low-pass filter, cutoff (-3dB): %s\n", render.Frequency(result.CutoffHz))
	return b.String(), nil
}

func handleCalculateResonantFrequency(args map[string]any) (string, error) {
	henries, err := requireNumber(args, "inductance_henries")
	if err != nil {
		return "", err
	}
	farads, err := requireNumber(args, "capacitance_farads")
	if err != nil {
		return "", err
	}

	result, err := capacitor.ResonantFrequency(henries, farads)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Inductance: %s\n", render.Inductance(henries))
	fmt.Fprintf(&b, "Capacitance: %s\n", render.Capacitance(farads))
	fmt.Fprintf(&b, "Resonant frequency (f0): %s (%s band)\n", render.Frequency(result.FrequencyHz), result.Band)
	fmt.Fprintf(&b, "Characteristic impedance (Z0): %s\n", render.Resistance(result.CharacteristicOhms))
	return b.String(), nil
}

func handleSuggestCapacitorForFilter(args map[string]any) (string, error) {
	ohms, err := requireNumber(args, "resistance_ohms")
	if err != nil {
		return "", err
	}
	cutoff, err := requireNumber(args, "cutoff_frequency")
	if err != nil {
		return "", err
	}

	result, err := capacitor.SuggestCapacitorForFilter(ohms, cutoff)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Resistance: %s\n", render.Resistance(ohms))
	fmt.Fprintf(&b, "Target cutoff: %s\n", render.Frequency(cutoff))
	fmt.Fprintf(&b, "Ideal capacitance: %s\n", render.Capacitance(result.IdealFarads))
	fmt.Fprintf(&b, "Suggested E12 value: %s\n", render.Capacitance(result.SnappedFarads))
	fmt.Fprintf(&b, "Actual cutoff with suggested value: %s (error %.2f%%)\n", render.Frequency(result.ActualCutoff), result.ErrorPct)
	return b.String(), nil
}
