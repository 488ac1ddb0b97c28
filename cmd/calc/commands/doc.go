// Package commands defines the calc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - add A B       Print A + B and record it in the history
//   - history       Show or clear recorded computations
//   - serve         Run the calculator HTTP server
//
// Operands that start with '-' must follow "--", e.g. calc add -- -2 5.
//
// # Implementation
//
// The root command resolves the home directory and configuration, builds a
// zap logger and the dependency graph (history store, arithmetic service or
// remote client) before any subcommand runs, so handlers share one app.Wire.
package commands
