package gpio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samuelf/electronics-mcp-server/internal/knowledge"
	"github.com/samuelf/electronics-mcp-server/internal/mcperr"
)

// Severity is the level of a conflict advisory.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Advisory is one flagged issue, either attached to a specific pin or
// global to the whole requested pin set.
type Advisory struct {
	Severity Severity
	Message  string
	Pin      int // -1 for a global advisory
}

// ConflictReport is the structured result of check_pin_conflict.
type ConflictReport struct {
	Board            knowledge.Board
	RequestedPins    []int
	PerPin           map[int][]Advisory
	Global           []Advisory
	SafeAlternatives []int
}

// CheckPinConflict evaluates the given pin set against the board's
// wiring rules and returns a single structured report covering every
// requested pin: an unknown pin number is the one condition that
// aborts the call outright (there is nothing to report on), while
// FLASH_RESERVED, strapping, SWD, USB, ADC2-with-WiFi, and UART0 are
// all advisories — ERROR, WARNING, or INFO severity — accumulated
// alongside each other so a caller sees every issue at once instead of
// stopping at the first one.
func CheckPinConflict(boardName string, pins []int) (ConflictReport, error) {
	board, err := ResolveBoard(boardName)
	if err != nil {
		return ConflictReport{}, err
	}

	report := ConflictReport{
		Board:         board,
		RequestedPins: append([]int{}, pins...),
		PerPin:        make(map[int][]Advisory, len(pins)),
	}
	sort.Ints(report.RequestedPins)

	resolved := make(map[int]knowledge.Pin, len(pins))
	for _, num := range pins {
		pin, ok := board.Pin(num)
		if !ok {
			return ConflictReport{}, mcperr.New(mcperr.UnknownPin, "board %s has no pin %d", board.ID, num)
		}
		resolved[num] = pin
	}

	for _, num := range report.RequestedPins {
		pin := resolved[num]
		add := func(sev Severity, format string, args ...any) {
			report.PerPin[num] = append(report.PerPin[num], Advisory{
				Severity: sev, Pin: num, Message: fmt.Sprintf(format, args...),
			})
		}

		if pin.HasFlag("FLASH_RESERVED") {
			add(SeverityError, "%s is wired to the on-module SPI flash and can never be used as GPIO", pin.Label)
		}
		if pin.HasFlag("STRAPPING") {
			add(SeverityWarning, "%s is a strapping pin; its boot-time level affects boot mode", pin.Label)
		}
		if pin.HasFlag("SWD") {
			add(SeverityWarning, "%s is an SWD programming pin; using it disables hardware debugging", pin.Label)
		}
		if pin.HasFlag("USB") {
			add(SeverityWarning, "%s is a USB data line; using it as GPIO breaks USB device functionality", pin.Label)
		}
		if pin.HasFlag("UART0") {
			add(SeverityWarning, "%s is the UART0 console line; using it conflicts with Serial/USB-serial", pin.Label)
		}
		if pin.HasFlag("INPUT_ONLY") {
			add(SeverityInfo, "%s is input-only; it cannot drive an output despite otherwise looking usable", pin.Label)
		}
	}

	// ESP32's ADC2 + WiFi conflict is board-global, not pin-local: any
	// ADC2-channel pin in the set triggers one advisory covering all of
	// them, because the radio disables the whole ADC2 unit, not just
	// individual channels.
	if board.ID == "ESP32" {
		var adc2Pins []int
		for _, num := range report.RequestedPins {
			pin := resolved[num]
			for _, fn := range pin.AltFunctions {
				if strings.HasPrefix(strings.ToUpper(fn), "ADC2_") {
					adc2Pins = append(adc2Pins, num)
					break
				}
			}
		}
		if len(adc2Pins) > 0 {
			report.Global = append(report.Global, Advisory{
				Severity: SeverityWarning,
				Pin:      -1,
				Message:  fmt.Sprintf("ADC2 pins %v cannot be read while WiFi is active on ESP32", adc2Pins),
			})
		}
	}

	// Two pins sharing the same exclusive alt function (e.g. both wired
	// as USART1_TX) is always an error: only one pin can drive a given
	// peripheral signal at a time.
	byFunction := make(map[string][]int)
	for _, num := range report.RequestedPins {
		for _, fn := range resolved[num].AltFunctions {
			byFunction[fn] = append(byFunction[fn], num)
		}
	}
	var functionNames []string
	for fn := range byFunction {
		functionNames = append(functionNames, fn)
	}
	sort.Strings(functionNames)
	for _, fn := range functionNames {
		holders := byFunction[fn]
		if len(holders) > 1 {
			report.Global = append(report.Global, Advisory{
				Severity: SeverityError,
				Pin:      -1,
				Message:  fmt.Sprintf("pins %v are all wired to the exclusive function %s; only one can drive it", holders, fn),
			})
		}
	}

	report.SafeAlternatives = safeAlternatives(board, resolved)
	return report, nil
}

func safeAlternatives(board knowledge.Board, requested map[int]knowledge.Pin) []int {
	var alts []int
	for _, p := range board.Pins {
		if _, used := requested[p.Number]; used {
			continue
		}
		if len(p.Flags) > 0 {
			continue
		}
		alts = append(alts, p.Number)
	}
	sort.Ints(alts)
	if len(alts) > 10 {
		alts = alts[:10]
	}
	return alts
}
