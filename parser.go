package swiftdsv

import "fmt"

// Parser indexes every value of a DSV buffer up front so that any cell can
// be fetched by (record, value) in constant time. Records may hold differing
// numbers of values.
//
// A Parser is immutable after construction and safe for concurrent reads.
type Parser struct {
	buf string
	// records[r][v] holds the packed Position of value v in record r.
	records [][]uint64
	values  int
}

// NewParser scans buf once with a Reader configured by d and records the
// position of every value. It fails with ErrInvalidConfiguration if d is
// rejected by Validate and with ErrOverflow if buf is longer than MaxPosition.
func NewParser(buf string, d Dialect, opts ...Option) (*Parser, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := buildParser(buf, d, o.capacityHint)
	if err != nil {
		o.logger.Warn("dsv index build failed",
			"bytes", len(buf),
			"error", err,
		)
		return nil, err
	}

	o.logger.Debug("dsv index built",
		"records", len(p.records),
		"values", p.values,
		"bytes", len(buf),
		"value_delim_len", len(d.Value),
		"record_delim_len", len(d.Record),
	)
	return p, nil
}

// NewParserBytes is like NewParser but indexes buf in place. Values alias
// buf, so buf must not be modified while the Parser or any value it returned
// is in use.
func NewParserBytes(buf []byte, d Dialect, opts ...Option) (*Parser, error) {
	return NewParser(bytesToString(buf), d, opts...)
}

// NewCSVParser creates a Parser using the CSV preset.
func NewCSVParser(buf string, opts ...Option) (*Parser, error) {
	return NewParser(buf, CSV, opts...)
}

// NewTSVParser creates a Parser using the TSV preset.
func NewTSVParser(buf string, opts ...Option) (*Parser, error) {
	return NewParser(buf, TSV, opts...)
}

func buildParser(buf string, d Dialect, capacity int) (*Parser, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := checkBufferLen(len(buf)); err != nil {
		return nil, err
	}

	p := &Parser{buf: buf}
	r := newReader(buf, d)
	for r.NextRecord() {
		record := make([]uint64, 0, capacity)
		for r.NextValue() {
			offset, _ := r.Offset()
			word, err := EncodePosition(offset, len(r.Value()))
			if err != nil {
				return nil, err
			}
			record = append(record, word)
		}
		p.records = append(p.records, record)
		p.values += len(record)
		// Assume the next record is shaped like this one.
		capacity = max(len(record), 1)
	}
	return p, nil
}

// checkBufferLen rejects buffers whose offsets could not all be encoded.
func checkBufferLen(n int) error {
	if uint64(n) > MaxPosition {
		return fmt.Errorf("%w: buffer of %d bytes exceeds %d", ErrOverflow, n, uint64(MaxPosition))
	}
	return nil
}

// RecordCount returns the number of records. An empty buffer has none.
func (p *Parser) RecordCount() int {
	return len(p.records)
}

// ValueCount returns the number of values in record.
func (p *Parser) ValueCount(record int) (int, error) {
	if record < 0 || record >= len(p.records) {
		return 0, recordRangeError(record, len(p.records))
	}
	return len(p.records[record]), nil
}

// Position returns where value sits in the buffer.
func (p *Parser) Position(record, value int) (Position, error) {
	if record < 0 || record >= len(p.records) {
		return Position{}, recordRangeError(record, len(p.records))
	}
	values := p.records[record]
	if value < 0 || value >= len(values) {
		return Position{}, &RangeError{Record: record, Value: value, Len: len(values), valueIndex: true}
	}
	return DecodePosition(values[value]), nil
}

// Value returns the text of the given cell as a substring of the buffer.
func (p *Parser) Value(record, value int) (string, error) {
	pos, err := p.Position(record, value)
	if err != nil {
		return "", err
	}
	return pos.Slice(p.buf), nil
}

// Record appends every value of record to dst[:0].
func (p *Parser) Record(record int, dst []string) ([]string, error) {
	if record < 0 || record >= len(p.records) {
		return dst[:0], recordRangeError(record, len(p.records))
	}
	dst = dst[:0]
	for _, word := range p.records[record] {
		dst = append(dst, DecodePosition(word).Slice(p.buf))
	}
	return dst, nil
}

// TotalValues returns the number of values across all records.
func (p *Parser) TotalValues() int {
	return p.values
}

// Len returns the length in bytes of the indexed buffer.
func (p *Parser) Len() int {
	return len(p.buf)
}
