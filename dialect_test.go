package swiftdsv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dialect Dialect
		reason  string
	}{
		{name: "csv", dialect: CSV},
		{name: "tsv", dialect: TSV},
		{name: "multiByte", dialect: Dialect{Value: "::", Record: ";;;"}},
		{name: "sharedPrefixOnly", dialect: Dialect{Value: "<v>", Record: "<r>"}},
		{name: "emptyValue", dialect: Dialect{Record: "\n"}, reason: "value delimiter is empty"},
		{name: "emptyRecord", dialect: Dialect{Value: ","}, reason: "record delimiter is empty"},
		{name: "bothEmpty", dialect: Dialect{}, reason: "value delimiter is empty"},
		{name: "equal", dialect: Dialect{Value: ";", Record: ";"}, reason: "both"},
		{name: "valuePrefixOfRecord", dialect: Dialect{Value: "\r", Record: "\r\n"}, reason: "value delimiter \"\\r\" is a prefix"},
		{name: "recordPrefixOfValue", dialect: Dialect{Value: "\n\n", Record: "\n"}, reason: "record delimiter \"\\n\" is a prefix"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.dialect.Validate()
			if tc.reason == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Contains(t, cerr.Reason, tc.reason)
		})
	}
}

func TestPresets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ",", CSV.Value)
	assert.Equal(t, "\t", TSV.Value)
	assert.Equal(t, LineEnding, CSV.Record)
	assert.Equal(t, LineEnding, TSV.Record)
	assert.Contains(t, []string{"\n", "\r\n"}, LineEnding)
}
