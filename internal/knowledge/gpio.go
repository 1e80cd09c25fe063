package knowledge

import (
	"strings"
	"sync"
)

// Pin is one electrical pin on a board.
type Pin struct {
	Number       int      `yaml:"number"`
	Label        string   `yaml:"label"`
	Capabilities []string `yaml:"capabilities"`
	AltFunctions []string `yaml:"alt_functions"`
	Flags        []string `yaml:"flags"`
	Notes        string   `yaml:"notes"`
}

// HasCapability reports whether the pin advertises the given capability
// (DIGITAL_IN, DIGITAL_OUT, PWM, ADC, DAC, TOUCH, INPUT_ONLY).
func (p Pin) HasCapability(c string) bool {
	for _, have := range p.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// HasFlag reports whether the pin carries the given conflict flag.
func (p Pin) HasFlag(f string) bool {
	for _, have := range p.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// Board is a supported microcontroller and its ordered pin list.
type Board struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Pins    []Pin    `yaml:"pins"`
}

// Pin returns the pin with the given number, if the board has one.
func (b Board) Pin(number int) (Pin, bool) {
	for _, p := range b.Pins {
		if p.Number == number {
			return p, true
		}
	}
	return Pin{}, false
}

var (
	boardsOnce sync.Once
	boards     map[string]Board
	boardOrder []string
	boardsErr  error
)

// Boards returns every known board, keyed by canonical ID, along with
// the ID order they were loaded in (ESP32, ArduinoUNO, STM32BluePill).
func Boards() (map[string]Board, []string, error) {
	boardsOnce.Do(func() {
		boards = make(map[string]Board, 3)
		files := []string{
			"data/board_esp32.yaml",
			"data/board_arduino_uno.yaml",
			"data/board_stm32_bluepill.yaml",
		}
		for _, f := range files {
			var b Board
			if err := readYAML(f, &b); err != nil {
				boardsErr = err
				return
			}
			boards[b.ID] = b
			boardOrder = append(boardOrder, b.ID)
		}
	})
	return boards, boardOrder, boardsErr
}

// ResolveBoard finds a board by ID or by any of its case-insensitive
// aliases (e.g. "Arduino UNO" for ArduinoUNO).
func ResolveBoard(name string) (Board, bool, error) {
	all, _, err := Boards()
	if err != nil {
		return Board{}, false, err
	}
	if b, ok := all[name]; ok {
		return b, true, nil
	}
	for _, b := range all {
		for _, alias := range b.Aliases {
			if strings.EqualFold(alias, name) {
				return b, true, nil
			}
		}
		if strings.EqualFold(b.ID, name) {
			return b, true, nil
		}
	}
	return Board{}, false, nil
}
