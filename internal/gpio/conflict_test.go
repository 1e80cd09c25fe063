package gpio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckPinConflictStrappingWarning(t *testing.T) {
	report, err := CheckPinConflict("ESP32", []int{0, 4})
	require.NoError(t, err)
	require.Contains(t, report.PerPin, 0)
	require.Equal(t, SeverityWarning, report.PerPin[0][0].Severity)
	require.NotContains(t, report.PerPin, 4)
}

func TestCheckPinConflictFlashReservedIsReportedAdvisory(t *testing.T) {
	report, err := CheckPinConflict("ESP32", []int{6})
	require.NoError(t, err)
	require.Contains(t, report.PerPin, 6)
	require.Equal(t, SeverityError, report.PerPin[6][0].Severity)
}

func TestCheckPinConflictMixedSeverities(t *testing.T) {
	report, err := CheckPinConflict("ESP32", []int{0, 2, 6, 12})
	require.NoError(t, err)

	require.Contains(t, report.PerPin, 6)
	require.Equal(t, SeverityError, report.PerPin[6][0].Severity)

	for _, num := range []int{0, 2, 12} {
		require.Contains(t, report.PerPin, num)
		found := false
		for _, adv := range report.PerPin[num] {
			if adv.Severity == SeverityWarning {
				found = true
			}
		}
		require.True(t, found, "pin %d should carry a strapping warning", num)
	}

	foundADC2Warning := false
	for _, adv := range report.Global {
		if adv.Severity == SeverityWarning && strings.Contains(adv.Message, "ADC2") {
			foundADC2Warning = true
		}
	}
	require.True(t, foundADC2Warning, "expected a global ADC2+WiFi warning")
}

func TestCheckPinConflictUnknownPin(t *testing.T) {
	_, err := CheckPinConflict("ESP32", []int{200})
	require.Error(t, err)
}

func TestCheckPinConflictADC2WifiGlobalAdvisory(t *testing.T) {
	report, err := CheckPinConflict("ESP32", []int{0})
	require.NoError(t, err)
	require.Len(t, report.Global, 1)
	require.Equal(t, SeverityWarning, report.Global[0].Severity)
	require.Contains(t, report.Global[0].Message, "ADC2")
}

func TestCheckPinConflictSTM32SWDWarning(t *testing.T) {
	report, err := CheckPinConflict("STM32BluePill", []int{13})
	require.NoError(t, err)
	require.Contains(t, report.PerPin, 13)
	require.Equal(t, SeverityWarning, report.PerPin[13][0].Severity)
}

func TestCheckPinConflictArduinoUART0Warning(t *testing.T) {
	report, err := CheckPinConflict("ArduinoUNO", []int{0})
	require.NoError(t, err)
	require.Contains(t, report.PerPin, 0)
	require.Equal(t, SeverityWarning, report.PerPin[0][0].Severity)
}

func TestCheckPinConflictInputOnlyInfo(t *testing.T) {
	report, err := CheckPinConflict("ESP32", []int{34})
	require.NoError(t, err)
	require.Contains(t, report.PerPin, 34)
	require.Equal(t, SeverityInfo, report.PerPin[34][0].Severity)
}

func TestCheckPinConflictSafeAlternativesBounded(t *testing.T) {
	report, err := CheckPinConflict("ESP32", []int{0})
	require.NoError(t, err)
	require.LessOrEqual(t, len(report.SafeAlternatives), 10)
	for i := 1; i < len(report.SafeAlternatives); i++ {
		require.Less(t, report.SafeAlternatives[i-1], report.SafeAlternatives[i])
	}
	require.NotContains(t, report.SafeAlternatives, 0)
}

func TestCheckPinConflictNoIssues(t *testing.T) {
	report, err := CheckPinConflict("STM32BluePill", []int{4})
	require.NoError(t, err)
	require.Empty(t, report.PerPin[4])
	require.Empty(t, report.Global)
}

func TestCheckPinConflictSharedExclusiveFunction(t *testing.T) {
	// PA9 (9, USART1_TX) and PB6 (22, USART1_TX alt) both claim
	// USART1_TX on the Blue Pill's remap set.
	report, err := CheckPinConflict("STM32BluePill", []int{9, 22})
	require.NoError(t, err)
	require.NotEmpty(t, report.Global)
	found := false
	for _, adv := range report.Global {
		if adv.Severity == SeverityError {
			found = true
		}
	}
	require.True(t, found)
}
