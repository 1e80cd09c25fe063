// Package knowledge loads the read-only reference data backing the
// resistor, capacitor, and GPIO tools: color-code tables, preferred-value
// series, and per-board pin databases. Everything here is embedded at
// build time and parsed once, on first use; nothing is mutated after that.
package knowledge

import (
	"embed"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/colors.yaml data/eseries.yaml data/board_esp32.yaml data/board_arduino_uno.yaml data/board_stm32_bluepill.yaml
var dataFS embed.FS

func readYAML(path string, v any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read embedded file %s", path)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "parse embedded file %s", path)
	}
	return nil
}
