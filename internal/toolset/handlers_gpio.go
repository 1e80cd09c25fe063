package toolset

import (
	"fmt"
	"strings"

	"github.com/samuelf/electronics-mcp-server/internal/gpio"
	"github.com/samuelf/electronics-mcp-server/internal/knowledge"
)

func pinSummary(p knowledge.Pin) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d (%s)", p.Number, p.Label)
	if len(p.Capabilities) > 0 {
		fmt.Fprintf(&b, " caps=%s", strings.Join(p.Capabilities, ","))
	}
	if len(p.Flags) > 0 {
		fmt.Fprintf(&b, " flags=%s", strings.Join(p.Flags, ","))
	}
	return b.String()
}

func handleGetPinInfo(args map[string]any) (string, error) {
	boardName, err := requireString(args, "board")
	if err != nil {
		return "", err
	}
	pinNumber, err := requireInt(args, "pin_number")
	if err != nil {
		return "", err
	}

	board, pin, err := gpio.GetPinInfo(boardName, pinNumber)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Board: %s\n", board.Name)
	fmt.Fprintf(&b, "Pin: %s\n", pinSummary(pin))
	if len(pin.AltFunctions) > 0 {
		fmt.Fprintf(&b, "Alt functions: %s\n", strings.Join(pin.AltFunctions, ", "))
	}
	if pin.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", pin.Notes)
	}
	return b.String(), nil
}

func handleFindPWMPins(args map[string]any) (string, error) {
	boardName, err := requireString(args, "board")
	if err != nil {
		return "", err
	}

	board, pins, err := gpio.FindPWMPins(boardName)
	if err != nil {
		return "", err
	}
	return renderPinList(board, "PWM", pins), nil
}

func handleFindADCPins(args map[string]any) (string, error) {
	boardName, err := requireString(args, "board")
	if err != nil {
		return "", err
	}

	board, pins, err := gpio.FindADCPins(boardName)
	if err != nil {
		return "", err
	}
	return renderADCPins(board, pins), nil
}

func adcPinLine(ap gpio.ADCPin) string {
	line := pinSummary(ap.Pin)
	if ap.Channel != "" {
		line += " " + ap.Channel
	}
	return line
}

// renderADCPins lists every ADC-capable pin. On ESP32, where a pin's
// ADC1/ADC2 unit determines whether it stays readable with WiFi active,
// pins are grouped into an ADC1 and an ADC2 section (each still
// ascending by pin number) rather than one flat list, so a caller sees
// the WiFi-safe pins separated from the WiFi-conflicting ones.
func renderADCPins(board knowledge.Board, pins []gpio.ADCPin) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Board: %s\n", board.Name)
	fmt.Fprintf(&b, "ADC-capable pins (%d):\n", len(pins))

	if board.ID != "ESP32" {
		for _, ap := range pins {
			fmt.Fprintf(&b, "  %s\n", adcPinLine(ap))
		}
		return b.String()
	}

	var adc1, adc2 []gpio.ADCPin
	for _, ap := range pins {
		switch ap.Unit {
		case "ADC2":
			adc2 = append(adc2, ap)
		default:
			adc1 = append(adc1, ap)
		}
	}

	fmt.Fprintf(&b, "ADC1 section (WiFi-safe):\n")
	for _, ap := range adc1 {
		fmt.Fprintf(&b, "  %s [WiFi Compatible]\n", adcPinLine(ap))
	}
	fmt.Fprintf(&b, "ADC2 section (WiFi warning):\n")
	for _, ap := range adc2 {
		fmt.Fprintf(&b, "  %s [Not usable with WiFi]\n", adcPinLine(ap))
	}
	fmt.Fprintf(&b, "ESP32 notes: ADC1 works with WiFi enabled; ADC2 cannot be read while WiFi is active.\n")
	return b.String()
}

func renderPinList(board knowledge.Board, capability string, pins []knowledge.Pin) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Board: %s\n", board.Name)
	fmt.Fprintf(&b, "%s-capable pins (%d):\n", capability, len(pins))
	for _, p := range pins {
		fmt.Fprintf(&b, "  %s\n", pinSummary(p))
	}
	return b.String()
}

func handleFindI2CPins(args map[string]any) (string, error) {
	boardName, err := requireString(args, "board")
	if err != nil {
		return "", err
	}

	board, busPins, err := gpio.FindI2CPins(boardName)
	if err != nil {
		return "", err
	}
	return renderBusPins(board, "I2C", busPins), nil
}

func handleFindSPIPins(args map[string]any) (string, error) {
	boardName, err := requireString(args, "board")
	if err != nil {
		return "", err
	}

	board, busPins, err := gpio.FindSPIPins(boardName)
	if err != nil {
		return "", err
	}
	return renderBusPins(board, "SPI", busPins), nil
}

func renderBusPins(board knowledge.Board, kind string, busPins []gpio.BusPin) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Board: %s\n", board.Name)
	if len(busPins) == 0 {
		fmt.Fprintf(&b, "No %s buses found\n", kind)
		return b.String()
	}

	currentBus := ""
	for _, bp := range busPins {
		if bp.Bus != currentBus {
			currentBus = bp.Bus
			fmt.Fprintf(&b, "%s:\n", currentBus)
		}
		fmt.Fprintf(&b, "  %s\n", pinSummary(bp.Pin))
	}
	return b.String()
}

func handleCheckPinConflict(args map[string]any) (string, error) {
	boardName, err := requireString(args, "board")
	if err != nil {
		return "", err
	}
	pins, err := requireIntSlice(args, "pin_numbers")
	if err != nil {
		return "", err
	}

	report, err := gpio.CheckPinConflict(boardName, pins)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Board: %s\n", report.Board.Name)
	fmt.Fprintf(&b, "Requested pins: %v\n", report.RequestedPins)

	anyAdvisory := false
	for _, num := range report.RequestedPins {
		advisories := report.PerPin[num]
		if len(advisories) == 0 {
			continue
		}
		anyAdvisory = true
		fmt.Fprintf(&b, "Pin %d:\n", num)
		for _, a := range advisories {
			fmt.Fprintf(&b, "  [%s] %s\n", a.Severity, a.Message)
		}
	}
	for _, a := range report.Global {
		anyAdvisory = true
		fmt.Fprintf(&b, "[%s] %s\n", a.Severity, a.Message)
	}
	if !anyAdvisory {
		fmt.Fprintf(&b, "No conflicts found\n")
	}

	if len(report.SafeAlternatives) > 0 {
		fmt.Fprintf(&b, "Safe alternatives: %v\n", report.SafeAlternatives)
	}
	return b.String(), nil
}

func handleGenerateASCIIDiagram(args map[string]any) (string, error) {
	boardName, err := requireString(args, "board")
	if err != nil {
		return "", err
	}

	_, diagram, err := gpio.GenerateASCIIDiagram(boardName)
	if err != nil {
		return "", err
	}
	return diagram, nil
}
