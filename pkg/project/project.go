package project

// Project metadata reported to MCP clients and the CLI
const (
	Name    = "exprlab"
	Version = "0.1.0"
)
