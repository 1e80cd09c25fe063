// Package capacitor implements the pure-numeric capacitor kernel:
// reactance, RC timing, LC resonance, and filter-capacitor selection.
// Every function is a scalar-in, scalar-out computation; SI-prefixed
// rendering lives in internal/render (used by the tool layer) and
// standard-value snapping in internal/preferredvalues, shared with
// internal/resistor.
package capacitor

import (
	"math"

	"github.com/samuelf/electronics-mcp-server/internal/knowledge"
	"github.com/samuelf/electronics-mcp-server/internal/mcperr"
	"github.com/samuelf/electronics-mcp-server/internal/preferredvalues"
)

// ReactanceResult is the outcome of a capacitive-reactance calculation.
type ReactanceResult struct {
	OhmsXc      float64
	CurrentAmps float64 // only meaningful when a voltage was supplied
	HasCurrent  bool
}

// CapacitiveReactance computes Xc = 1/(2*pi*f*C). When voltage is
// non-nil, it also returns I = V/Xc at that voltage.
func CapacitiveReactance(farads, hz float64, voltage *float64) (ReactanceResult, error) {
	if farads <= 0 {
		return ReactanceResult{}, mcperr.New(mcperr.NonPositiveInput, "capacitance must be positive, got %v", farads)
	}
	if hz <= 0 {
		return ReactanceResult{}, mcperr.New(mcperr.NonPositiveInput, "frequency must be positive, got %v", hz)
	}

	xc := 1 / (2 * math.Pi * hz * farads)
	result := ReactanceResult{OhmsXc: xc}
	if voltage != nil {
		if *voltage <= 0 {
			return ReactanceResult{}, mcperr.New(mcperr.NonPositiveInput, "voltage must be positive, got %v", *voltage)
		}
		result.CurrentAmps = *voltage / xc
		result.HasCurrent = true
	}
	return result, nil
}

// ChargeMilestone is one point on the RC charging curve at n time
// constants, where pct = 1 - e^-n.
type ChargeMilestone struct {
	N   int
	Pct float64
}

// RCTimeConstantResult is the outcome of an RC time-constant calculation.
type RCTimeConstantResult struct {
	TauSeconds float64
	Milestones [5]ChargeMilestone
	CutoffHz   float64
}

// RCTimeConstant computes tau = R*C along with the standard 1..5 tau
// charge-percentage table and the -3dB cutoff frequency of the network
// treated as a single-pole low-pass filter.
func RCTimeConstant(ohms, farads float64) (RCTimeConstantResult, error) {
	if ohms <= 0 {
		return RCTimeConstantResult{}, mcperr.New(mcperr.NonPositiveInput, "resistance must be positive, got %v", ohms)
	}
	if farads <= 0 {
		return RCTimeConstantResult{}, mcperr.New(mcperr.NonPositiveInput, "capacitance must be positive, got %v", farads)
	}

	tau := ohms * farads
	var milestones [5]ChargeMilestone
	for n := 1; n <= 5; n++ {
		milestones[n-1] = ChargeMilestone{N: n, Pct: 1 - math.Exp(-float64(n))}
	}

	return RCTimeConstantResult{
		TauSeconds: tau,
		Milestones: milestones,
		CutoffHz:   1 / (2 * math.Pi * tau),
	}, nil
}

// FrequencyBand categorizes a resonant frequency for the LC calculator.
type FrequencyBand string

const (
	BandAudio FrequencyBand = "audio" // < 20kHz
	BandRFLF  FrequencyBand = "RF-LF" // 20kHz - 3MHz
	BandRFHF  FrequencyBand = "RF-HF" // >= 3MHz
)

func classifyBand(hz float64) FrequencyBand {
	switch {
	case hz < 20e3:
		return BandAudio
	case hz < 3e6:
		return BandRFLF
	default:
		return BandRFHF
	}
}

// ResonantFrequencyResult is the outcome of an LC resonance calculation.
type ResonantFrequencyResult struct {
	FrequencyHz        float64
	Band               FrequencyBand
	CharacteristicOhms float64 // Z0 = sqrt(L/C)
}

// ResonantFrequency computes f0 = 1/(2*pi*sqrt(L*C)) for a series or
// parallel LC tank, plus its characteristic impedance and frequency band.
func ResonantFrequency(henries, farads float64) (ResonantFrequencyResult, error) {
	if henries <= 0 {
		return ResonantFrequencyResult{}, mcperr.New(mcperr.NonPositiveInput, "inductance must be positive, got %v", henries)
	}
	if farads <= 0 {
		return ResonantFrequencyResult{}, mcperr.New(mcperr.NonPositiveInput, "capacitance must be positive, got %v", farads)
	}

	f0 := 1 / (2 * math.Pi * math.Sqrt(henries*farads))
	z0 := math.Sqrt(henries / farads)

	return ResonantFrequencyResult{
		FrequencyHz:        f0,
		Band:               classifyBand(f0),
		CharacteristicOhms: z0,
	}, nil
}

// FilterSuggestion is the outcome of snapping an ideal filter capacitor
// to the nearest E12 standard value.
type FilterSuggestion struct {
	IdealFarads   float64
	SnappedFarads float64
	ActualCutoff  float64
	ErrorPct      float64
	Snappable     bool
}

// SuggestCapacitorForFilter computes the ideal capacitance for an RC
// filter with the given resistance and cutoff frequency, then snaps it
// to the nearest E12 value. If the ideal value lies more than one
// decade from any E12 point, Snappable is false and SnapOutOfRange is
// returned alongside the still-valid ideal value.
func SuggestCapacitorForFilter(ohms, cutoffHz float64) (FilterSuggestion, error) {
	if ohms <= 0 {
		return FilterSuggestion{}, mcperr.New(mcperr.NonPositiveInput, "resistance must be positive, got %v", ohms)
	}
	if cutoffHz <= 0 {
		return FilterSuggestion{}, mcperr.New(mcperr.NonPositiveInput, "cutoff frequency must be positive, got %v", cutoffHz)
	}

	ideal := 1 / (2 * math.Pi * cutoffHz * ohms)

	series, err := knowledge.Series()
	if err != nil {
		return FilterSuggestion{}, err
	}

	// Standard capacitor values are searched from 1pF to 8.2mF (decades
	// -12..-3); a filter that wants a cap outside that
	// span by more than a decade has no realistic off-the-shelf part.
	snap := preferredvalues.NearestBounded(ideal, series.E12, -12, -3)
	if !preferredvalues.WithinOneDecade(snap.Value, ideal) {
		return FilterSuggestion{
			IdealFarads: ideal,
			Snappable:   false,
		}, mcperr.New(mcperr.SnapOutOfRange,
			"ideal capacitance %.3e F is more than one decade from any standard E12 value", ideal).
			WithHint("choose a different resistance or accept the exact (non-standard) capacitance")
	}

	actualCutoff := 1 / (2 * math.Pi * ohms * snap.Value)

	return FilterSuggestion{
		IdealFarads:   ideal,
		SnappedFarads: snap.Value,
		ActualCutoff:  actualCutoff,
		ErrorPct:      (actualCutoff - cutoffHz) / cutoffHz * 100,
		Snappable:     true,
	}, nil
}
