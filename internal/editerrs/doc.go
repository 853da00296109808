// Package editerrs provides centralized error types for the paredit
// CLI and TUI layers.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Include structured fields for contextual information
//   - Implement Unwrap() when wrapping underlying errors
//
// The editing core itself never returns errors: structural operations
// are total and degrade to no-ops. These types exist for the outer
// surfaces, where a silent no-op must become a message the user can
// act on.
package editerrs
