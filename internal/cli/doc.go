// Package cli defines the Cobra command tree for the bmad-warp CLI. Each file
// in this package registers one top-level command (setup, agents, status,
// etc.) with the root command. Command implementations delegate to internal
// packages for the conversion itself and only handle flag parsing, settings
// resolution and output formatting.
package cli
