// Package utils provides presentation helpers for directions results.
//
// It contains:
//   - Time formatting utilities
//   - Distance calculation and formatting
//   - Shared unit constants
package utils
