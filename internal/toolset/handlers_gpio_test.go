package toolset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleFindADCPinsESP32SectionsByUnit(t *testing.T) {
	text, err := handleFindADCPins(map[string]any{"board": "ESP32"})
	require.NoError(t, err)
	require.Contains(t, text, "ADC1 section (WiFi-safe):")
	require.Contains(t, text, "ADC2 section (WiFi warning):")
	require.Contains(t, text, "[WiFi Compatible]")
	require.Contains(t, text, "[Not usable with WiFi]")
}

func TestHandleFindADCPinsArduinoHasNoSections(t *testing.T) {
	text, err := handleFindADCPins(map[string]any{"board": "ArduinoUNO"})
	require.NoError(t, err)
	require.NotContains(t, text, "ADC1 section")
	require.NotContains(t, text, "[WiFi Compatible]")
}

func TestHandleCheckPinConflictReportsFlashReservedAlongsideOtherAdvisories(t *testing.T) {
	text, err := handleCheckPinConflict(map[string]any{
		"board":       "ESP32",
		"pin_numbers": []any{float64(0), float64(2), float64(6), float64(12)},
	})
	require.NoError(t, err)
	require.Contains(t, text, "flash")
	require.Contains(t, text, "strapping")
	require.Contains(t, text, "ADC2")
}

func TestHandleGenerateASCIIDiagramPerBoardLayout(t *testing.T) {
	esp32, err := handleGenerateASCIIDiagram(map[string]any{"board": "ESP32"})
	require.NoError(t, err)
	require.Contains(t, esp32, "Left Side")
	require.Contains(t, esp32, "Right Side")

	uno, err := handleGenerateASCIIDiagram(map[string]any{"board": "ArduinoUNO"})
	require.NoError(t, err)
	require.Contains(t, uno, "Digital Pins")
	require.Contains(t, uno, "Analog Pins & Power")

	bluePill, err := handleGenerateASCIIDiagram(map[string]any{"board": "STM32BluePill"})
	require.NoError(t, err)
	require.Contains(t, bluePill, "Port A")
	require.Contains(t, bluePill, "STM32F103")
}
