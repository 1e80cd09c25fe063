// Command electronics-mcp-server exposes fourteen deterministic
// electronics-engineering tools — resistor color-code decoding and
// encoding, capacitor/RC/LC calculations, and a GPIO pin capability
// database with conflict detection for ESP32, Arduino UNO, and STM32
// Blue Pill — over the Model Context Protocol.
//
// # Running
//
//	go run ./cmd/electronics-mcp-server
//
// The server speaks MCP over stdio; connect it to an MCP client the way
// any other stdio server is configured. It holds no state and touches
// no network or filesystem beyond its own embedded knowledge base, so
// it is safe to spawn per-session.
//
// # Layout
//
//	cmd/electronics-mcp-server  entrypoint: flags, logging, transport
//	internal/toolset            MCP tool registration and argument parsing
//	internal/resistor           color-code codec and standard-value search
//	internal/capacitor          reactance, RC, LC, and filter calculations
//	internal/gpio               board/pin database and conflict detection
//	internal/knowledge          embedded YAML tables backing the above
//	internal/render             shared SI-prefix output formatting
//	internal/mcperr             the closed set of tool failure kinds
//	internal/preferredvalues    shared E-series nearest-value snapping
package main
