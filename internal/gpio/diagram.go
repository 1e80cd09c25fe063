package gpio

import (
	"fmt"
	"strings"

	"github.com/samuelf/electronics-mcp-server/internal/knowledge"
)

var flagGlyphs = map[string]string{
	"STRAPPING":      "⚠strap",
	"FLASH_RESERVED": "⚠flash",
	"INPUT_ONLY":     "ℹin-only",
	"SWD":            "⚠swd",
	"USB":            "⚠usb",
	"UART0":          "⚠uart0",
	"ADC2_WIFI":      "⚠adc2wifi",
}

func flagString(p knowledge.Pin) string {
	if len(p.Flags) == 0 {
		return ""
	}
	var parts []string
	for _, f := range p.Flags {
		if g, ok := flagGlyphs[f]; ok {
			parts = append(parts, g)
		} else {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, ",")
}

func pinRow(p knowledge.Pin) string {
	flag := flagString(p)
	if flag == "" {
		return fmt.Sprintf("%-3d %-8s", p.Number, p.Label)
	}
	return fmt.Sprintf("%-3d %-8s %s", p.Number, p.Label, flag)
}

// twoColumns prints one aligned two-column table: a header row followed
// by one row per pin, walking left and right independently since the
// two sides are rarely the same length.
func twoColumns(b *strings.Builder, leftHeader, rightHeader string, left, right []knowledge.Pin) {
	fmt.Fprintf(b, "%-28s | %s\n", leftHeader, rightHeader)
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = pinRow(left[i])
		}
		if i < len(right) {
			r = pinRow(right[i])
		}
		fmt.Fprintf(b, "%-28s | %s\n", l, r)
	}
}

// esp32Layout mirrors a DevKit board's silkscreen: pins split down the
// middle into a left and right header row.
func esp32Layout(b *strings.Builder, board knowledge.Board) {
	half := (len(board.Pins) + 1) / 2
	twoColumns(b, "Left Side", "Right Side", board.Pins[:half], board.Pins[half:])
}

// unoLayout splits the digital header from the analog-in header, the
// UNO's actual two-row pin layout, instead of an arbitrary half-split.
func unoLayout(b *strings.Builder, board knowledge.Board) {
	var digital, analog []knowledge.Pin
	for _, p := range board.Pins {
		if p.HasCapability("ADC") {
			analog = append(analog, p)
		} else {
			digital = append(digital, p)
		}
	}
	twoColumns(b, "Digital Pins", "Analog Pins & Power", digital, analog)
}

// bluePillLayout groups pins by port (PA/PB/PC), the two headers that
// flank the STM32F103 chip outline on the physical board, with the
// outline itself printed as a middle marker on the first row.
func bluePillLayout(b *strings.Builder, board knowledge.Board) {
	var portA, others []knowledge.Pin
	for _, p := range board.Pins {
		if strings.HasPrefix(p.Label, "PA") {
			portA = append(portA, p)
		} else {
			others = append(others, p)
		}
	}

	fmt.Fprintf(b, "%-28s   %-11s   %s\n", "Port A", "MCU", "Ports B/C")
	n := len(portA)
	if len(others) > n {
		n = len(others)
	}
	chipOutline := []string{"┌─────────┐", "│STM32F103│", "└─────────┘"}
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(portA) {
			l = pinRow(portA[i])
		}
		if i < len(others) {
			r = pinRow(others[i])
		}
		mid := ""
		if i < len(chipOutline) {
			mid = chipOutline[i]
		}
		fmt.Fprintf(b, "%-28s   %-11s   %s\n", l, mid, r)
	}
}

// GenerateASCIIDiagram renders a fixed-width text pinout for the board.
// It consumes only the pin database and lays it out the way that
// board's physical silkscreen does: a DevKit split header for ESP32, a
// digital/analog split for the UNO, and two port columns flanking a
// chip outline for the Blue Pill.
func GenerateASCIIDiagram(boardName string) (knowledge.Board, string, error) {
	board, err := ResolveBoard(boardName)
	if err != nil {
		return knowledge.Board{}, "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", board.Name, board.ID)
	fmt.Fprintln(&b, strings.Repeat("=", len(board.Name)+len(board.ID)+3))

	switch board.ID {
	case "ArduinoUNO":
		unoLayout(&b, board)
	case "STM32BluePill":
		bluePillLayout(&b, board)
	default:
		esp32Layout(&b, board)
	}

	return board, b.String(), nil
}
