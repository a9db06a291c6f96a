package swiftdsv

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSharedBufferConcurrentReaders(t *testing.T) {
	t.Parallel()

	d := Dialect{Value: "|", Record: "\r\n"}
	input := buildTable(d, 500, func(record int) int { return 1 + record%7 })

	want, err := NewParser(input, d)
	require.NoError(t, err)
	wantTable := parserTable(t, want)

	const workers = 8
	var g errgroup.Group
	var checked atomic.Int64
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			r, err := NewReader(input, d)
			if err != nil {
				return err
			}
			got := r.ReadAll()
			if !recordsEqual(got, wantTable) {
				return fmt.Errorf("reader saw %d records, want %d", len(got), len(wantTable))
			}

			p, err := NewParser(input, d)
			if err != nil {
				return err
			}
			if p.RecordCount() != len(wantTable) {
				return fmt.Errorf("parser saw %d records, want %d", p.RecordCount(), len(wantTable))
			}
			checked.Add(1)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int64(workers), checked.Load())
}

func TestParserConcurrentLookups(t *testing.T) {
	t.Parallel()

	d := Dialect{Value: ",", Record: "\n"}
	p, err := NewParser(buildTable(d, 200, func(int) int { return 10 }), d)
	require.NoError(t, err)

	var g errgroup.Group
	g.SetLimit(4)
	for record := 0; record < p.RecordCount(); record++ {
		g.Go(func() error {
			for value := 0; value < 10; value++ {
				got, err := p.Value(record, value)
				if err != nil {
					return err
				}
				if want := fmt.Sprintf("Value %d-%d", record, value); got != want {
					return fmt.Errorf("Value(%d, %d) = %q, want %q", record, value, got, want)
				}
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
