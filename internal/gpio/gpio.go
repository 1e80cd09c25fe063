// Package gpio implements the pin capability database: lookups,
// peripheral discovery, and conflict detection across the three
// supported boards. Everything here is a read-only view over the
// tables in internal/knowledge; the package holds no mutable state.
package gpio

import (
	"sort"
	"strings"

	"github.com/samuelf/electronics-mcp-server/internal/knowledge"
	"github.com/samuelf/electronics-mcp-server/internal/mcperr"
)

// ResolveBoard looks up a board by ID or alias, returning UnknownBoard
// if none match.
func ResolveBoard(name string) (knowledge.Board, error) {
	b, ok, err := knowledge.ResolveBoard(name)
	if err != nil {
		return knowledge.Board{}, err
	}
	if !ok {
		return knowledge.Board{}, mcperr.New(mcperr.UnknownBoard, "unknown board %q", name).
			WithHint("valid boards are ESP32, ArduinoUNO, STM32BluePill")
	}
	return b, nil
}

// GetPinInfo returns the full record for one pin on a board.
func GetPinInfo(boardName string, pinNumber int) (knowledge.Board, knowledge.Pin, error) {
	board, err := ResolveBoard(boardName)
	if err != nil {
		return knowledge.Board{}, knowledge.Pin{}, err
	}
	pin, ok := board.Pin(pinNumber)
	if !ok {
		return knowledge.Board{}, knowledge.Pin{}, mcperr.New(mcperr.UnknownPin,
			"board %s has no pin %d", board.ID, pinNumber).
			WithHint("call get_pin_info with a pin number from this board's list")
	}
	return board, pin, nil
}

func sortedPins(pins []knowledge.Pin) []knowledge.Pin {
	out := append([]knowledge.Pin{}, pins...)
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// FindPWMPins returns every pin on the board with PWM capability,
// ordered by pin number.
func FindPWMPins(boardName string) (knowledge.Board, []knowledge.Pin, error) {
	board, err := ResolveBoard(boardName)
	if err != nil {
		return knowledge.Board{}, nil, err
	}
	var out []knowledge.Pin
	for _, p := range board.Pins {
		if p.HasCapability("PWM") {
			out = append(out, p)
		}
	}
	return board, sortedPins(out), nil
}

// ADCPin pairs a pin with the ADC channel and unit its alt functions
// advertise, so callers can distinguish ESP32's WiFi-safe ADC1 from
// its WiFi-conflicting ADC2 the way get_pin_info's flags already do
// per-pin for other conflicts.
type ADCPin struct {
	Pin     knowledge.Pin
	Channel string // e.g. "ADC2_CH1", "" if the alt functions don't name one
	Unit    string // "ADC1", "ADC2", or "" when the board draws no such distinction
}

// FindADCPins returns every pin on the board with ADC capability,
// ordered by pin number, annotated with its ADC channel and, where an
// alt function is named ADC1_* or ADC2_* (ESP32, STM32), its unit.
func FindADCPins(boardName string) (knowledge.Board, []ADCPin, error) {
	board, err := ResolveBoard(boardName)
	if err != nil {
		return knowledge.Board{}, nil, err
	}
	var pins []knowledge.Pin
	for _, p := range board.Pins {
		if p.HasCapability("ADC") {
			pins = append(pins, p)
		}
	}
	pins = sortedPins(pins)

	out := make([]ADCPin, len(pins))
	for i, p := range pins {
		out[i] = ADCPin{Pin: p}
		for _, fn := range p.AltFunctions {
			upper := strings.ToUpper(fn)
			switch {
			case strings.HasPrefix(upper, "ADC1_"):
				out[i].Channel, out[i].Unit = fn, "ADC1"
			case strings.HasPrefix(upper, "ADC2_"):
				out[i].Channel, out[i].Unit = fn, "ADC2"
			case out[i].Channel == "" && strings.HasPrefix(upper, "ADC"):
				out[i].Channel = fn
			}
		}
	}
	return board, out, nil
}

// BusPin pairs a pin with the bus index its I2C/SPI alt function
// belongs to, so callers can distinguish e.g. ESP32 VSPI from HSPI.
type BusPin struct {
	Pin knowledge.Pin
	Bus string
}

// FindI2CPins returns every pin carrying an I2Cn_SDA or I2Cn_SCL alt
// function, grouped by bus name, ordered by pin number within a bus.
func FindI2CPins(boardName string) (knowledge.Board, []BusPin, error) {
	board, err := ResolveBoard(boardName)
	if err != nil {
		return knowledge.Board{}, nil, err
	}
	var out []BusPin
	for _, p := range board.Pins {
		for _, fn := range p.AltFunctions {
			if bus, ok := i2cBus(fn); ok {
				out = append(out, BusPin{Pin: p, Bus: bus})
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bus != out[j].Bus {
			return out[i].Bus < out[j].Bus
		}
		return out[i].Pin.Number < out[j].Pin.Number
	})
	return board, out, nil
}

func i2cBus(fn string) (string, bool) {
	upper := strings.ToUpper(fn)
	if !strings.HasPrefix(upper, "I2C") {
		return "", false
	}
	if !strings.HasSuffix(upper, "_SDA") && !strings.HasSuffix(upper, "_SCL") {
		return "", false
	}
	bus := upper[:strings.IndexByte(upper, '_')]
	return bus, true
}

// FindSPIPins returns every pin carrying a SPIn_MOSI/MISO/SCK/CS alt
// function (SPI0_* aliases on Arduino and the ESP32 flash bus also
// match), grouped by bus, ordered by pin number within a bus.
func FindSPIPins(boardName string) (knowledge.Board, []BusPin, error) {
	board, err := ResolveBoard(boardName)
	if err != nil {
		return knowledge.Board{}, nil, err
	}
	var out []BusPin
	for _, p := range board.Pins {
		for _, fn := range p.AltFunctions {
			if bus, ok := spiBus(fn); ok {
				out = append(out, BusPin{Pin: p, Bus: bus})
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bus != out[j].Bus {
			return out[i].Bus < out[j].Bus
		}
		return out[i].Pin.Number < out[j].Pin.Number
	})
	return board, out, nil
}

var spiSuffixes = []string{"_MOSI", "_MISO", "_SCK", "_CLK", "_CS", "_CS0", "_WP", "_HD", "_D", "_Q"}

func spiBus(fn string) (string, bool) {
	upper := strings.ToUpper(fn)
	if !strings.Contains(upper, "SPI") {
		return "", false
	}
	idx := strings.IndexByte(upper, '_')
	if idx < 0 {
		return "", false
	}
	prefix, suffix := upper[:idx], upper[idx:]
	for _, s := range spiSuffixes {
		if suffix == s {
			return prefix, true
		}
	}
	return "", false
}
