// # SwiftDSV: Zero-Copy Delimiter-Separated Value Scanning for Go
//
// SwiftDSV scans delimiter-separated text that is already resident in memory. Values and records are returned as substrings of the caller's buffer, so no character data is copied or allocated while scanning.
//
// # Features
//
// - Forward-only `Reader` with `NextRecord` / `NextValue` cursor semantics and literal, multi-byte value and record delimiters.
// - Indexed `Parser` that drains a Reader once and answers `Value(record, value)` in O(1) afterwards, including jagged tables.
// - `Dialect` validation that rejects empty, equal, or prefix-overlapping delimiters up front, plus `CSV` and `TSV` presets using the platform `LineEnding`.
// - Buffered `Writer` that emits DSV text and refuses values the Reader could not read back, since there is no quoting or escaping.
// - Structured errors via `ErrInvalidConfiguration`, `ErrOutOfRange`, `ErrOverflow`, `ErrEmbeddedDelimiter` and the `ConfigError`, `RangeError` and `WriteError` types.
//
// # Buffer lifetime
//
// Every value returned by a Reader or Parser shares memory with the input. For string input the garbage collector keeps the buffer alive for as long as any value is referenced. `NewReaderBytes` and `NewParserBytes` alias a byte slice without copying; the caller must not modify that slice while the Reader, Parser, or any returned value is still in use. Copy a value with `strings.Clone` to detach it.
//
// # Not supported
//
// Quoted fields, escapes, and delimiters embedded in values (RFC 4180) are out of scope. Delimiters are matched literally and greedily.
//
// # Getting Started
//
// The module path is `github.com/oleg578/swiftdsv`. See `examples/main.go` for a runnable walkthrough.
package swiftdsv
