package capacitor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapacitiveReactance(t *testing.T) {
	result, err := CapacitiveReactance(1e-6, 1000, nil)
	require.NoError(t, err)
	require.InDelta(t, 159.155, result.OhmsXc, 0.01)
	require.False(t, result.HasCurrent)
}

func TestCapacitiveReactanceWithVoltage(t *testing.T) {
	v := 1.0
	result, err := CapacitiveReactance(1e-6, 1000, &v)
	require.NoError(t, err)
	require.True(t, result.HasCurrent)
	require.InDelta(t, v/result.OhmsXc, result.CurrentAmps, 1e-9)
}

func TestCapacitiveReactanceFormulaSymmetry(t *testing.T) {
	c, f := 47e-9, 12345.0
	result, err := CapacitiveReactance(c, f, nil)
	require.NoError(t, err)
	require.InEpsilon(t, 1.0, result.OhmsXc*2*math.Pi*f*c, 1e-9)
}

func TestCapacitiveReactanceNonPositive(t *testing.T) {
	_, err := CapacitiveReactance(0, 1000, nil)
	require.Error(t, err)

	_, err = CapacitiveReactance(1e-6, -1, nil)
	require.Error(t, err)
}

func TestRCTimeConstant(t *testing.T) {
	result, err := RCTimeConstant(10000, 100e-6)
	require.NoError(t, err)
	require.InDelta(t, 1.0, result.TauSeconds, 1e-9)
	require.InDelta(t, 1-math.Exp(-1), result.Milestones[0].Pct, 1e-9)
	require.InDelta(t, 1-math.Exp(-5), result.Milestones[4].Pct, 1e-9)
}

func TestRCTimeConstantNonPositive(t *testing.T) {
	_, err := RCTimeConstant(-1, 1e-6)
	require.Error(t, err)
}

func TestResonantFrequency(t *testing.T) {
	result, err := ResonantFrequency(1e-3, 1e-9)
	require.NoError(t, err)
	require.InDelta(t, 159154.9, result.FrequencyHz, 1.0)
	require.Equal(t, BandRFLF, result.Band)
}

func TestResonantFrequencyBandClassification(t *testing.T) {
	audio, err := ResonantFrequency(1, 1e-3)
	require.NoError(t, err)
	require.Equal(t, BandAudio, audio.Band)

	rfhf, err := ResonantFrequency(1e-9, 1e-12)
	require.NoError(t, err)
	require.Equal(t, BandRFHF, rfhf.Band)
}

func TestSuggestCapacitorForFilter(t *testing.T) {
	result, err := SuggestCapacitorForFilter(10000, 1000)
	require.NoError(t, err)
	require.True(t, result.Snappable)
	require.InDelta(t, result.ActualCutoff, 1/(2*math.Pi*10000*result.SnappedFarads), 1e-6)
	require.Less(t, math.Abs(result.ErrorPct), 15.0)
}

func TestSuggestCapacitorForFilterOutOfRange(t *testing.T) {
	_, err := SuggestCapacitorForFilter(1000, 1e14)
	require.Error(t, err)
}

func TestSuggestCapacitorForFilterNonPositive(t *testing.T) {
	_, err := SuggestCapacitorForFilter(0, 1000)
	require.Error(t, err)
}
