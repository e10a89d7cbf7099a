// Package harness provides utilities for integration testing the workspace
// CLI. It handles binary compilation, environment isolation, and command
// execution.
//
// Environment variables managed:
//   - WORKSPACE_HOME: Isolated per test (temp directory)
//   - WORKSPACE_DEBUG: Disabled to reduce noise
package harness
