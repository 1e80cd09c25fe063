package gpio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveBoardByAlias(t *testing.T) {
	board, err := ResolveBoard("arduino uno")
	require.NoError(t, err)
	require.Equal(t, "ArduinoUNO", board.ID)
}

func TestResolveBoardUnknown(t *testing.T) {
	_, err := ResolveBoard("PIC16F84")
	require.Error(t, err)
}

func TestGetPinInfo(t *testing.T) {
	_, pin, err := GetPinInfo("ESP32", 2)
	require.NoError(t, err)
	require.Equal(t, "GPIO2", pin.Label)
	require.True(t, pin.HasFlag("STRAPPING"))
}

func TestGetPinInfoUnknownPin(t *testing.T) {
	_, _, err := GetPinInfo("ESP32", 999)
	require.Error(t, err)
}

func TestFindPWMPinsSortedAscending(t *testing.T) {
	_, pins, err := FindPWMPins("ArduinoUNO")
	require.NoError(t, err)
	require.NotEmpty(t, pins)
	for i := 1; i < len(pins); i++ {
		require.Less(t, pins[i-1].Number, pins[i].Number)
	}
	for _, p := range pins {
		require.True(t, p.HasCapability("PWM"))
	}
}

func TestFindADCPins(t *testing.T) {
	_, pins, err := FindADCPins("STM32BluePill")
	require.NoError(t, err)
	require.NotEmpty(t, pins)
	for _, p := range pins {
		require.True(t, p.Pin.HasCapability("ADC"))
	}
}

func TestFindADCPinsESP32UnitSplit(t *testing.T) {
	_, pins, err := FindADCPins("ESP32")
	require.NoError(t, err)

	units := make(map[int]string, len(pins))
	for _, p := range pins {
		units[p.Pin.Number] = p.Unit
	}
	require.Equal(t, "ADC2", units[0])
	require.Equal(t, "ADC1", units[32])
}

func TestFindI2CPinsGroupedByBus(t *testing.T) {
	_, pins, err := FindI2CPins("ESP32")
	require.NoError(t, err)
	require.NotEmpty(t, pins)
	for _, bp := range pins {
		require.Equal(t, "I2C0", bp.Bus)
	}
}

func TestFindSPIPinsArduino(t *testing.T) {
	_, pins, err := FindSPIPins("ArduinoUNO")
	require.NoError(t, err)
	require.Len(t, pins, 4)
}

func TestGenerateASCIIDiagram(t *testing.T) {
	board, diagram, err := GenerateASCIIDiagram("ESP32")
	require.NoError(t, err)
	require.Equal(t, "ESP32", board.ID)
	require.Contains(t, diagram, "GPIO0")
	require.Contains(t, diagram, "strap")
}
