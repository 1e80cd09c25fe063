// Package toolset binds the compute layers (internal/resistor,
// internal/capacitor, internal/gpio) to the MCP tool registry. It owns
// argument parsing, schema declarations, and turning a failure into the
// caller-facing text the MCP SDK wraps in an error CallToolResult — no
// handler here computes an electrical quantity itself.
package toolset

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/samuelf/electronics-mcp-server/internal/config"
	"github.com/samuelf/electronics-mcp-server/internal/mcperr"
)

// toolDef pairs one tool's schema and pure string handler for
// registration. Every handler takes parsed arguments and returns the
// text block a caller reads; domain failures are reported through
// mcperr, while argument-parsing failures are plain errors that wrap
// renders with the same leading "✗ " marker.
type toolDef struct {
	name        string
	description string
	schema      *jsonschema.Schema
	handle      func(args map[string]any) (string, error)
}

func toolDefs() []toolDef {
	return []toolDef{
		{"decode_resistor_color_bands", "Decode a resistor's color bands into resistance, tolerance, and value range.", schemaDecodeResistorColorBands, handleDecodeResistorColorBands},
		{"encode_resistor_value", "Find the color bands for a target resistance and tolerance.", schemaEncodeResistorValue, handleEncodeResistorValue},
		{"find_standard_resistor", "Snap a target resistance to the nearest E12/E24/E96 standard value.", schemaFindStandardResistor, handleFindStandardResistor},
		{"calculate_capacitive_reactance", "Compute a capacitor's reactance (and optionally current) at a given frequency.", schemaCapacitiveReactance, handleCalculateCapacitiveReactance},
		{"calculate_rc_time_constant", "Compute an RC circuit's time constant, charge milestones, and low-pass cutoff.", schemaRCTimeConstant, handleCalculateRCTimeConstant},
		{"calculate_resonant_frequency", "Compute an LC circuit's resonant frequency and characteristic impedance.", schemaResonantFrequency, handleCalculateResonantFrequency},
		{"suggest_capacitor_for_filter", "Suggest a standard E12 capacitor value for a target RC filter cutoff.", schemaSuggestCapacitorForFilter, handleSuggestCapacitorForFilter},
		{"get_pin_info", "Look up one pin's capabilities, alt functions, and wiring flags on a board.", schemaGetPinInfo, handleGetPinInfo},
		{"find_pwm_pins", "List every PWM-capable pin on a board.", schemaBoardOnly, handleFindPWMPins},
		{"find_adc_pins", "List every ADC-capable pin on a board.", schemaBoardOnly, handleFindADCPins},
		{"find_i2c_pins", "List every pin wired to an I2C bus on a board, grouped by bus.", schemaBoardOnly, handleFindI2CPins},
		{"find_spi_pins", "List every pin wired to an SPI bus on a board, grouped by bus.", schemaBoardOnly, handleFindSPIPins},
		{"check_pin_conflict", "Check a set of pins on a board for wiring conflicts and boot-time hazards.", schemaCheckPinConflict, handleCheckPinConflict},
		{"generate_pin_diagram_ascii", "Render a fixed-width ASCII pinout diagram for a board.", schemaBoardOnly, handleGenerateASCIIDiagram},
	}
}

// Server wraps the MCP SDK server with this repo's tool registry and a
// per-request logger.
type Server struct {
	mcp    *mcp.Server
	logger *slog.Logger
}

// New builds an *mcp.Server, registers all fourteen tools against it,
// and returns the wrapper ready to Serve.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	impl := &mcp.Implementation{Name: cfg.ServerName, Version: cfg.ServerVersion}
	srv := mcp.NewServer(impl, nil)

	s := &Server{mcp: srv, logger: logger}
	for _, td := range toolDefs() {
		s.mcp.AddTool(
			&mcp.Tool{Name: td.name, Description: td.description, InputSchema: td.schema},
			s.wrap(td.name, td.handle),
		)
	}
	return s
}

// Serve runs the server over stdio until ctx is canceled or the
// transport closes.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// wrap adapts a pure (args map[string]any) -> (string, error) handler
// into an mcp.ToolHandler: it assigns a correlation ID for the log
// lines this call produces, parses the request's raw arguments, and
// converts an *mcperr.Error into a caller-facing error result instead
// of letting it surface as a Go error the SDK would render generically.
func (s *Server) wrap(name string, handle func(args map[string]any) (string, error)) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reqID := ulid.Make().String()
		log := s.logger.With(slog.String("tool", name), slog.String("request_id", reqID))

		args, err := parseArguments(req)
		if err != nil {
			log.Warn("failed to parse arguments", slog.String("error", err.Error()))
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: "✗ " + err.Error()}},
			}, nil
		}

		log.Debug("tool call started")
		text, err := handle(args)
		if err != nil {
			var domainErr *mcperr.Error
			if errors.As(err, &domainErr) {
				log.Info("tool call rejected", slog.String("kind", string(domainErr.Kind)))
				return &mcp.CallToolResult{
					IsError: true,
					Content: []mcp.Content{&mcp.TextContent{Text: domainErr.Render()}},
				}, nil
			}
			log.Warn("tool call failed", slog.String("error", err.Error()))
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: "✗ " + err.Error()}},
			}, nil
		}

		log.Debug("tool call succeeded")
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}, nil
	}
}

func parseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, errors.Wrap(err, "unmarshal tool arguments")
	}
	return args, nil
}
