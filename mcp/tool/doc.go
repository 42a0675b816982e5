// Package tool bridges workflow action signatures and MCP tools: canonical
// tool naming and a proxy service that exposes the tools of a remote MCP
// server as workflow actions.
package tool
