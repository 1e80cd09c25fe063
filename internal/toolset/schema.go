package toolset

import "github.com/google/jsonschema-go/jsonschema"

func stringSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func numberSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: desc}
}

func integerSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: desc}
}

func stringArraySchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: desc,
		Items:       &jsonschema.Schema{Type: "string"},
	}
}

func integerArraySchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: desc,
		Items:       &jsonschema.Schema{Type: "integer"},
	}
}

func object(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

var schemaDecodeResistorColorBands = object(map[string]*jsonschema.Schema{
	"bands": stringArraySchema("3, 4, or 5 color band names, in order: digit, digit, multiplier[, tolerance] or digit, digit, digit, multiplier, tolerance"),
}, "bands")

var schemaEncodeResistorValue = object(map[string]*jsonschema.Schema{
	"resistance_ohms":   numberSchema("resistance in ohms, e.g. 4700 for 4.7kΩ"),
	"tolerance_percent": numberSchema("tolerance percentage: 1, 2, 0.5, 0.25, 0.1, 0.05, 5, or 10 (default 5)"),
	"prefer_5band":      &jsonschema.Schema{Type: "boolean", Description: "use a 5-band precision code instead of 4-band (default false)"},
}, "resistance_ohms")

var schemaFindStandardResistor = object(map[string]*jsonschema.Schema{
	"target_ohms": numberSchema("target resistance in ohms"),
	"series":      stringSchema("standard series: E12, E24, or E96 (default E12)"),
}, "target_ohms")

var schemaCapacitiveReactance = object(map[string]*jsonschema.Schema{
	"capacitance_farads": numberSchema("capacitance in farads, e.g. 1e-6 for 1µF"),
	"frequency_hz":       numberSchema("frequency in hertz"),
	"voltage":            numberSchema("optional AC voltage, used to also report current"),
}, "capacitance_farads", "frequency_hz")

var schemaRCTimeConstant = object(map[string]*jsonschema.Schema{
	"resistance_ohms":    numberSchema("resistance in ohms"),
	"capacitance_farads": numberSchema("capacitance in farads"),
}, "resistance_ohms", "capacitance_farads")

var schemaResonantFrequency = object(map[string]*jsonschema.Schema{
	"inductance_henries": numberSchema("inductance in henries"),
	"capacitance_farads": numberSchema("capacitance in farads"),
}, "inductance_henries", "capacitance_farads")

var schemaSuggestCapacitorForFilter = object(map[string]*jsonschema.Schema{
	"resistance_ohms":  numberSchema("filter resistance in ohms"),
	"cutoff_frequency": numberSchema("target -3dB cutoff frequency in hertz"),
}, "resistance_ohms", "cutoff_frequency")

var schemaBoardOnly = object(map[string]*jsonschema.Schema{
	"board": stringSchema("board id or alias: ESP32, ArduinoUNO, or STM32BluePill"),
}, "board")

var schemaGetPinInfo = object(map[string]*jsonschema.Schema{
	"board":      stringSchema("board id or alias: ESP32, ArduinoUNO, or STM32BluePill"),
	"pin_number": integerSchema("board-addressed pin number"),
}, "board", "pin_number")

var schemaCheckPinConflict = object(map[string]*jsonschema.Schema{
	"board":       stringSchema("board id or alias: ESP32, ArduinoUNO, or STM32BluePill"),
	"pin_numbers": integerArraySchema("pin numbers the caller intends to use simultaneously"),
}, "board", "pin_numbers")
