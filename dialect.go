package swiftdsv

import (
	"fmt"
	"strings"
)

const (
	// CommaDelimiter separates values in CSV-like text.
	CommaDelimiter = ","
	// TabDelimiter separates values in TSV-like text.
	TabDelimiter = "\t"
)

var (
	// CSV splits values on commas and records on the platform line ending.
	CSV = Dialect{Value: CommaDelimiter, Record: LineEnding}
	// TSV splits values on tabs and records on the platform line ending.
	TSV = Dialect{Value: TabDelimiter, Record: LineEnding}
)

// Dialect holds the literal value and record delimiters used for scanning.
// Both are compared byte for byte with no normalisation.
type Dialect struct {
	// Value terminates a value inside a record.
	Value string
	// Record terminates a record.
	Record string
}

// Validate reports a *ConfigError when either delimiter is empty, when the
// two are equal, or when one is a prefix of the other. A prefix pair would let
// both delimiters match at the same offset.
func (d Dialect) Validate() error {
	switch {
	case d.Value == "":
		return &ConfigError{Reason: "value delimiter is empty"}
	case d.Record == "":
		return &ConfigError{Reason: "record delimiter is empty"}
	case d.Value == d.Record:
		return &ConfigError{Reason: fmt.Sprintf("value and record delimiters are both %q", d.Value)}
	case strings.HasPrefix(d.Record, d.Value):
		return &ConfigError{Reason: fmt.Sprintf("value delimiter %q is a prefix of record delimiter %q", d.Value, d.Record)}
	case strings.HasPrefix(d.Value, d.Record):
		return &ConfigError{Reason: fmt.Sprintf("record delimiter %q is a prefix of value delimiter %q", d.Record, d.Value)}
	}
	return nil
}
