package swiftdsv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a Dialect cannot be used for scanning.
	ErrInvalidConfiguration = errors.New("swiftdsv: invalid configuration")
	// ErrOutOfRange is returned when a record or value index is outside the parsed table.
	ErrOutOfRange = errors.New("swiftdsv: index out of range")
	// ErrOverflow is returned when an offset or length does not fit the 32-bit position encoding.
	ErrOverflow = errors.New("swiftdsv: position overflow")
	// ErrEmbeddedDelimiter is returned by Writer when a value would not read back unchanged.
	ErrEmbeddedDelimiter = errors.New("swiftdsv: value collides with a delimiter")
)

// ConfigError describes why a Dialect was rejected.
type ConfigError struct {
	Reason string
}

// Error formats the rejection reason.
func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%v: %s", ErrInvalidConfiguration, e.Reason)
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrInvalidConfiguration
}

// RangeError reports an out-of-range Parser lookup.
type RangeError struct {
	// Record is the requested record index.
	Record int
	// Value is the requested value index, or -1 when Record itself was out of range.
	Value int
	// Len is the number of records, or of values in Record, that the index exceeded.
	Len int

	valueIndex bool
}

func recordRangeError(record, records int) *RangeError {
	return &RangeError{Record: record, Value: -1, Len: records}
}

// Error formats the offending coordinates and the bound they exceeded.
func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	if !e.valueIndex {
		return fmt.Sprintf("%v: record %d not in [0, %d)", ErrOutOfRange, e.Record, e.Len)
	}
	return fmt.Sprintf("%v: value %d of record %d not in [0, %d)", ErrOutOfRange, e.Value, e.Record, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrOutOfRange
}

// WriteError contains location information for values the Writer refused.
type WriteError struct {
	Record int
	Value  int
	Err    error
}

// Error formats the write error with the stored record, value, and Err values.
func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("swiftdsv: write error on record %d, value %d: %v", e.Record, e.Value, e.Err)
}

// Unwrap returns the underlying Err so WriteError participates in errors.Unwrap.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
