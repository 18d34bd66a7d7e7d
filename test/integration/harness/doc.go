// Package harness provides utilities for integration testing the keyup CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - KEYUP_HOME: Isolated per test (temp directory)
//   - KEYUP_DEBUG: Disabled to reduce noise
package harness
