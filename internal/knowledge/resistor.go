package knowledge

import "sync"

// ColorTable holds the IEC 60062 digit, multiplier, and tolerance maps
// used to decode and encode resistor color bands.
type ColorTable struct {
	Digits      map[string]int     `yaml:"digits"`
	Multipliers map[string]float64 `yaml:"multipliers"`
	Tolerances  map[string]float64 `yaml:"tolerances"`
}

// SeriesTable holds the IEC 60063 preferred-number mantissas, each in
// the half-open interval [1.0, 10.0).
type SeriesTable struct {
	E12 []float64 `yaml:"e12"`
	E24 []float64 `yaml:"e24"`
	E96 []float64 `yaml:"e96"`
}

var (
	colorsOnce  sync.Once
	colorsTable ColorTable
	colorsErr   error

	seriesOnce  sync.Once
	seriesTable SeriesTable
	seriesErr   error
)

// Colors returns the shared color-band table, parsing the embedded YAML
// exactly once regardless of how many callers ask for it.
func Colors() (ColorTable, error) {
	colorsOnce.Do(func() {
		colorsErr = readYAML("data/colors.yaml", &colorsTable)
	})
	return colorsTable, colorsErr
}

// Series returns the shared preferred-value series table.
func Series() (SeriesTable, error) {
	seriesOnce.Do(func() {
		seriesErr = readYAML("data/eseries.yaml", &seriesTable)
	})
	return seriesTable, seriesErr
}
