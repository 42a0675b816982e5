// Package cmd implements the unitconv command-line interface. Each file
// registers one sub-command (convert, list-units, serve, remote, ...); the
// shared configuration, logging and service plumbing lives in shared.go.
package cmd
