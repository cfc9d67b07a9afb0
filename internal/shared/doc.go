// Package shared provides common utilities and test helpers used across
// the copepod codebase. It serves as a central location for
// functionality that doesn't belong to any specific parsing stage.
//
// # Structure
//
// - testutil: short-format file fixtures and a slog capture handler
//
// # Usage Guidelines
//
// This package should only contain:
//
// 1. Test utilities used by multiple packages
// 2. Generic helpers with no format-specific parsing logic
//
// It should NOT contain business logic or circular dependencies with
// other internal packages.
package shared
