//go:build !windows

package swiftdsv

// LineEnding is the platform record delimiter used by the CSV and TSV presets.
const LineEnding = "\n"
