// Package unitaction exposes the unit converter as a Fluxor action service.
// Its methods become MCP tools (unit-convert, unit-resolve, unit-units) and
// can equally be called from workflows or the exec command.
package unitaction
