package toolset

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/samuelf/electronics-mcp-server/internal/config"
)

// nopLogger discards every log line, so tests exercise the wrapping
// logic without polluting test output.
func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func callToolRequest(t *testing.T, args map[string]any) *mcp.CallToolRequest {
	t.Helper()
	raw, err := json.Marshal(args)
	require.NoError(t, err)
	return &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: raw}}
}

func TestServerRegistersAllFourteenTools(t *testing.T) {
	require.Len(t, toolDefs(), 14)
}

func TestServerWrapSuccessPath(t *testing.T) {
	s := &Server{logger: nopLogger()}
	handler := s.wrap("decode_resistor_color_bands", handleDecodeResistorColorBands)

	req := callToolRequest(t, map[string]any{"bands": []any{"yellow", "violet", "red", "gold"}})
	result, err := handler(context.Background(), req)

	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	require.Contains(t, text.Text, "4.70k")
}

func TestServerWrapDomainErrorPath(t *testing.T) {
	s := &Server{logger: nopLogger()}
	handler := s.wrap("get_pin_info", handleGetPinInfo)

	req := callToolRequest(t, map[string]any{"board": "ESP32", "pin_number": float64(999)})
	result, err := handler(context.Background(), req)

	require.NoError(t, err)
	require.True(t, result.IsError)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	require.Contains(t, text.Text, "no pin 999")
}

func TestServerWrapCheckPinConflictReportsFlashReservedAsAdvisory(t *testing.T) {
	s := &Server{logger: nopLogger()}
	handler := s.wrap("check_pin_conflict", handleCheckPinConflict)

	req := callToolRequest(t, map[string]any{"board": "ESP32", "pin_numbers": []any{float64(6)}})
	result, err := handler(context.Background(), req)

	require.NoError(t, err)
	require.False(t, result.IsError)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	require.Contains(t, text.Text, "flash")
}

func TestServerWrapBadArgumentsPath(t *testing.T) {
	s := &Server{logger: nopLogger()}
	handler := s.wrap("get_pin_info", handleGetPinInfo)

	req := &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage("not json")}}
	result, err := handler(context.Background(), req)

	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestNewBuildsAllTools(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, nopLogger())
	require.NotNil(t, s.mcp)
}
