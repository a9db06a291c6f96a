package swiftdsv

import (
	"bufio"
	"errors"
	"io"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

var (
	errNilWriter      = errors.New("swiftdsv: writer is nil")
	errWriterNoTarget = errors.New("swiftdsv: writer destination cannot be nil")
	errNoDialect      = errors.New("swiftdsv: writer has no dialect; use NewWriter")
)

// written is a value already emitted by a Writer.
type written struct {
	value      string
	endsRecord bool
}

// Writer emits DSV text that a Reader or Parser with the same Dialect reads
// back unchanged.
//
// There is no quoting, so Write refuses any record whose values would be split
// differently on the way back in. A record with no values is written as one
// empty value, which is how it reads back.
type Writer struct {
	dst     *bufio.Writer
	dialect Dialect

	// OmitFinalTerminator leaves the last record unterminated on Flush. The
	// terminator is still written when the last record is empty, because the
	// record would otherwise vanish.
	OmitFinalTerminator bool

	// pending is set while the last record's terminator has not been written.
	pending   bool
	lastEmpty bool
	records   int
	hist      []written
	scratch   []byte

	err error
}

// NewWriter creates a Writer for d with internal buffering tuned for bulk
// writes. It panics if w is nil and returns a *ConfigError if d is invalid.
func NewWriter(w io.Writer, d Dialect) (*Writer, error) {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Writer{
		dst:     bufio.NewWriterSize(w, defaultBufferSize),
		dialect: d,
	}, nil
}

// Reset updates the underlying writer while preserving the dialect and flags.
// Any unflushed output, including a pending terminator, is discarded.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.pending = false
	w.lastEmpty = false
	clear(w.hist)
	w.hist = w.hist[:0]
	w.records = 0
	w.err = nil
}

// Write emits a single record. Its terminator is written lazily, before the
// next record or on Flush.
//
// If a value contains a delimiter, or would merge with a neighbouring
// delimiter into an earlier match, Write returns a *WriteError wrapping
// ErrEmbeddedDelimiter and writes nothing. The Writer stays usable.
func (w *Writer) Write(record []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.dialect.Value == "" {
		return errNoDialect
	}
	if w.err != nil {
		return w.err
	}

	if err := w.verify(record); err != nil {
		return err
	}

	if w.pending {
		if _, err := w.dst.WriteString(w.dialect.Record); err != nil {
			w.err = err
			return err
		}
	}
	empty := true
	for i := range record {
		if i > 0 {
			if _, err := w.dst.WriteString(w.dialect.Value); err != nil {
				w.err = err
				return err
			}
			empty = false
		}
		if record[i] != "" {
			if _, err := w.dst.WriteString(record[i]); err != nil {
				w.err = err
				return err
			}
			empty = false
		}
	}

	w.pending = true
	w.lastEmpty = empty
	w.remember(record)
	w.records++
	return nil
}

// WriteAll writes multiple records, stopping at the first error, and flushes.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes the pending terminator, unless OmitFinalTerminator applies,
// and flushes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if w.pending && (!w.OmitFinalTerminator || w.lastEmpty) {
		if _, err := w.dst.WriteString(w.dialect.Record); err != nil {
			w.err = err
			return err
		}
		w.pending = false
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first I/O error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

// verify renders the recent history, the new record and a trailing terminator
// into scratch and reads it back. Scanning restarts at every value boundary,
// so a value can only be split differently by a delimiter that starts inside
// it and runs past the end of what has been written; history keeps exactly
// the values close enough to the end for that to happen.
func (w *Writer) verify(record []string) error {
	d := w.dialect
	buf := w.scratch[:0]
	for _, h := range w.hist {
		buf = append(buf, h.value...)
		if h.endsRecord {
			buf = append(buf, d.Record...)
		} else {
			buf = append(buf, d.Value...)
		}
	}
	for i, v := range record {
		if i > 0 {
			buf = append(buf, d.Value...)
		}
		buf = append(buf, v...)
	}
	buf = append(buf, d.Record...)
	w.scratch = buf

	want := len(record)
	if want == 0 {
		// An empty record reads back as one empty value.
		want = 1
	}
	total := len(w.hist) + want
	expected := func(i int) (string, bool) {
		if i < len(w.hist) {
			return w.hist[i].value, w.hist[i].endsRecord
		}
		i -= len(w.hist)
		if i >= len(record) {
			return "", true
		}
		return record[i], i == want-1
	}
	mismatch := func(i int) error {
		i = max(i-len(w.hist), 0)
		return &WriteError{Record: w.records, Value: min(i, max(len(record)-1, 0)), Err: ErrEmbeddedDelimiter}
	}

	r := newReader(bytesToString(buf), d)
	i := 0
	for r.NextRecord() {
		for r.NextValue() {
			if i >= total {
				return mismatch(i)
			}
			value, endsRecord := expected(i)
			if r.Value() != value || r.inRecord == endsRecord {
				return mismatch(i)
			}
			i++
		}
	}
	if i != total {
		return mismatch(i)
	}
	return nil
}

// remember appends record to the history and drops values that no delimiter
// starting inside them could reach past the end of the written text.
func (w *Writer) remember(record []string) {
	if len(record) == 0 {
		w.hist = append(w.hist, written{endsRecord: true})
	}
	for i, v := range record {
		w.hist = append(w.hist, written{value: v, endsRecord: i == len(record)-1})
	}

	maxLen := max(len(w.dialect.Value), len(w.dialect.Record))
	keep := len(w.hist)
	after := len(w.dialect.Record)
	for j := len(w.hist) - 1; j >= 0 && after < maxLen; j-- {
		keep = j
		after += len(w.hist[j].value)
		if j > 0 {
			if w.hist[j-1].endsRecord {
				after += len(w.dialect.Record)
			} else {
				after += len(w.dialect.Value)
			}
		}
	}
	n := copy(w.hist, w.hist[keep:])
	clear(w.hist[n:])
	w.hist = w.hist[:n]
}
