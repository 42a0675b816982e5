// Package context carries request scoped values for remote MCP calls.
package context
