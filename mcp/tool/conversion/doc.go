// Package conversion translates between action signatures and MCP tool
// schemas: local Go types become tool metadata, remote tool schemas become
// generated struct types.
package conversion
