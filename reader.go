package swiftdsv

import "unsafe"

// delimiter is a literal byte sequence with a length-specialised match test.
type delimiter struct {
	s  string
	c0 byte
	c1 byte
}

func newDelimiter(s string) delimiter {
	d := delimiter{s: s, c0: s[0]}
	if len(s) > 1 {
		d.c1 = s[1]
	}
	return d
}

// at reports whether d occurs in buf starting at i. The caller guarantees i < len(buf).
func (d *delimiter) at(buf string, i int) bool {
	switch len(d.s) {
	case 1:
		return buf[i] == d.c0
	case 2:
		return buf[i] == d.c0 && i+1 < len(buf) && buf[i+1] == d.c1
	default:
		n := len(d.s)
		return i+n <= len(buf) && buf[i] == d.c0 && buf[i:i+n] == d.s
	}
}

// Reader walks a DSV buffer one value at a time without copying.
//
// Call NextRecord to enter a record, then NextValue until it returns false.
// Value and Offset describe the most recently produced value. A Reader is not
// safe for concurrent use, but any number of Readers may share one buffer.
type Reader struct {
	buf    string
	value  delimiter
	record delimiter

	pos      int
	inRecord bool

	cur    string
	curOff int
	hasCur bool
}

// NewReader creates a Reader over buf using the delimiters in d. It returns a
// *ConfigError wrapping ErrInvalidConfiguration if d fails Validate.
func NewReader(buf string, d Dialect) (*Reader, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return newReader(buf, d), nil
}

// NewReaderBytes is like NewReader but scans buf in place. Values alias buf,
// so buf must not be modified while the Reader or any value it produced is in use.
func NewReaderBytes(buf []byte, d Dialect) (*Reader, error) {
	return NewReader(bytesToString(buf), d)
}

// NewCSVReader creates a Reader using the CSV preset.
func NewCSVReader(buf string) *Reader {
	return newReader(buf, CSV)
}

// NewTSVReader creates a Reader using the TSV preset.
func NewTSVReader(buf string) *Reader {
	return newReader(buf, TSV)
}

// newReader skips validation; d must already be valid.
func newReader(buf string, d Dialect) *Reader {
	return &Reader{
		buf:    buf,
		value:  newDelimiter(d.Value),
		record: newDelimiter(d.Record),
	}
}

// NextRecord moves to the start of the next record, first skipping any values
// of the current record that were not read. It returns false once the buffer
// is exhausted. The current value is cleared either way.
func (r *Reader) NextRecord() bool {
	for r.inRecord {
		r.NextValue()
	}
	r.clear()
	if r.pos >= len(r.buf) {
		return false
	}
	r.inRecord = true
	return true
}

// NextValue produces the next value of the current record. It returns false,
// clearing the current value, when the record has no more values or
// NextRecord has not been called.
//
// The value ends at the earliest value delimiter, record delimiter, or the
// end of the buffer. The value delimiter is tested first at each offset.
func (r *Reader) NextValue() bool {
	if !r.inRecord {
		r.clear()
		return false
	}

	buf := r.buf
	start := r.pos
	v0, r0 := r.value.c0, r.record.c0
	for i := start; i < len(buf); i++ {
		c := buf[i]
		if c != v0 && c != r0 {
			continue
		}
		if r.value.at(buf, i) {
			r.publish(start, i)
			r.pos = i + len(r.value.s)
			return true
		}
		if r.record.at(buf, i) {
			r.publish(start, i)
			r.pos = i + len(r.record.s)
			r.inRecord = false
			return true
		}
	}

	// Neither delimiter remains: the rest of the buffer is the final value.
	r.publish(start, len(buf))
	r.pos = len(buf)
	r.inRecord = false
	return true
}

// Value returns the current value, or "" when none is published.
func (r *Reader) Value() string {
	return r.cur
}

// Offset returns the absolute byte offset of the current value in the buffer.
// ok is false when no value is published.
func (r *Reader) Offset() (offset int, ok bool) {
	if !r.hasCur {
		return 0, false
	}
	return r.curOff, true
}

// ReadRecord advances to the next record and appends all of its values to
// dst[:0]. It returns false when no records remain.
func (r *Reader) ReadRecord(dst []string) ([]string, bool) {
	dst = dst[:0]
	if !r.NextRecord() {
		return dst, false
	}
	for r.NextValue() {
		dst = append(dst, r.cur)
	}
	return dst, true
}

// ReadAll drains the reader and returns the remaining records.
func (r *Reader) ReadAll() (records [][]string) {
	for {
		record, ok := r.ReadRecord(nil)
		if !ok {
			return records
		}
		records = append(records, record)
	}
}

// Reset rewinds the reader to the beginning of its buffer.
func (r *Reader) Reset() {
	r.pos = 0
	r.inRecord = false
	r.clear()
}

func (r *Reader) publish(start, end int) {
	r.cur = r.buf[start:end]
	r.curOff = start
	r.hasCur = true
}

func (r *Reader) clear() {
	r.cur = ""
	r.curOff = 0
	r.hasCur = false
}

// bytesToString aliases b as a string without copying.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
