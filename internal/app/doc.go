// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, an optional config.yaml and .env in the
// home directory and the process environment, then builds the concrete
// stores, services and clients, exposing them via the Wire struct for commands
// to use.
package app
