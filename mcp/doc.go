// Package mcp hosts the unit converter in a Fluxor workflow engine and
// exposes it over MCP: the unit actions become tools, the catalog document a
// resource. It also connects to remote unit converter servers, either
// directly or as proxied workflow services.
package mcp
