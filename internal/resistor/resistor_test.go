package resistor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeColorBands4Band(t *testing.T) {
	result, err := DecodeColorBands([]string{"brown", "black", "red", "gold"})
	require.NoError(t, err)
	require.Equal(t, 1000.0, result.Ohms)
	require.Equal(t, 5.0, result.TolerancePct)
	require.False(t, result.ToleranceWasImplicit)
	require.InDelta(t, 950.0, result.MinOhms, 1e-9)
	require.InDelta(t, 1050.0, result.MaxOhms, 1e-9)
}

func TestDecodeColorBands5Band(t *testing.T) {
	result, err := DecodeColorBands([]string{"brown", "black", "black", "brown", "brown"})
	require.NoError(t, err)
	require.Equal(t, 1000.0, result.Ohms)
	require.Equal(t, 1.0, result.TolerancePct)
}

func TestDecodeColorBands3BandImplicitTolerance(t *testing.T) {
	result, err := DecodeColorBands([]string{"brown", "black", "red"})
	require.NoError(t, err)
	require.Equal(t, 1000.0, result.Ohms)
	require.Equal(t, 20.0, result.TolerancePct)
	require.True(t, result.ToleranceWasImplicit)
}

func TestDecodeColorBandsGrayAliasesGrey(t *testing.T) {
	result, err := DecodeColorBands([]string{"gray", "black", "red"})
	require.NoError(t, err)
	require.Equal(t, 8000.0, result.Ohms)
}

func TestDecodeColorBandsInvalidLength(t *testing.T) {
	_, err := DecodeColorBands([]string{"brown", "black"})
	require.Error(t, err)
}

func TestDecodeColorBandsInvalidColorInDigitSlot(t *testing.T) {
	_, err := DecodeColorBands([]string{"gold", "black", "red", "gold"})
	require.Error(t, err)
}

func TestEncodeResistanceRoundTrips(t *testing.T) {
	enc, err := EncodeResistance(4700, 5.0, false)
	require.NoError(t, err)
	require.Len(t, enc.Bands, 4)
	require.InDelta(t, 0, enc.ErrorPct, 1e-9)

	dec, err := DecodeColorBands(enc.Bands)
	require.NoError(t, err)
	require.InEpsilon(t, 4700.0, dec.Ohms, 0.01)
	require.Equal(t, 5.0, dec.TolerancePct)
}

func TestEncodeResistance5Band(t *testing.T) {
	enc, err := EncodeResistance(1000, 1.0, true)
	require.NoError(t, err)
	require.Len(t, enc.Bands, 5)
	require.InDelta(t, 1000.0, enc.ActualOhms, 1e-9)
}

func TestEncodeResistanceNonPositive(t *testing.T) {
	_, err := EncodeResistance(-5, 5.0, false)
	require.Error(t, err)
}

func TestEncodeResistanceUnknownTolerance(t *testing.T) {
	_, err := EncodeResistance(1000, 3.0, false)
	require.Error(t, err)
}

func TestFindStandardResistorExactMatch(t *testing.T) {
	result, err := FindStandardResistor(3300, "E12")
	require.NoError(t, err)
	require.InDelta(t, 3300.0, result.ValueOhms, 1e-9)
	require.InDelta(t, 0.0, result.ErrorPct, 1e-9)
}

func TestFindStandardResistorSnaps(t *testing.T) {
	result, err := FindStandardResistor(3400, "E12")
	require.NoError(t, err)
	require.InDelta(t, 3300.0, result.ValueOhms, 1e-9)
	require.NotZero(t, result.ErrorPct)
}

func TestFindStandardResistorNonPositive(t *testing.T) {
	_, err := FindStandardResistor(0, "E12")
	require.Error(t, err)
}

func TestFindStandardResistorUnknownSeries(t *testing.T) {
	_, err := FindStandardResistor(1000, "E48")
	require.Error(t, err)
}
