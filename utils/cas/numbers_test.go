package cas

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		token   string
		want    float64
		wantErr bool
	}{
		{"1,000.00", 1000, false},
		{"(5.000)", 5, false},
		{"-250.75", 250.75, false},
		{"INR 45.67", 45.67, false},
		{"Rs.12", 12, false},
		{"abc", 0, true},
		{"", 0, true},
		{"1e400", 0, true},
		{"1" + strings.Repeat("0", 400), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			d, err := parseNumber(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.InexactFloat64())
		})
	}
}

func TestParseTrailingTriple(t *testing.T) {
	amount, units, nav, err := parseTrailingTriple([]string{"01-Apr-2024", "Purchase", "1,000.00", "10.500", "95.20"})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, amount)
	assert.Equal(t, 10.5, units)
	assert.Equal(t, 95.2, nav)

	_, _, _, err = parseTrailingTriple([]string{"1", "2"})
	assert.Error(t, err)

	_, _, _, err = parseTrailingTriple([]string{"Purchase", "1" + strings.Repeat("0", 400), "10.5", "95.2"})
	assert.ErrorContains(t, err, "out of range")
}

func TestParseSkipsOverflowingAmount(t *testing.T) {
	text := strings.Replace(fullStatement,
		"01-Apr-2024 Purchase - SIP 1,000.00 10.500 95.20",
		"01-Apr-2024 Purchase - SIP 1"+strings.Repeat("0", 400)+" 10.500 95.20", 1)

	data, err := Parse(text)
	require.NoError(t, err)

	require.NotEmpty(t, data.MutualFunds)
	for _, txn := range data.MutualFunds[0].Transactions {
		assert.NotEqual(t, "2024-04-01", txn.Date)
	}
	found := false
	for _, r := range data.SkippedRecords {
		if strings.HasPrefix(r.Text, "01-Apr-2024 Purchase - SIP 1000") {
			found = true
			assert.Contains(t, r.Reason, "out of range")
		}
	}
	assert.True(t, found, "overflowing transaction should be skipped")

	_, err = json.Marshal(data)
	assert.NoError(t, err)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-04-01", normalizeDate("01-Apr-2024"))
	assert.Equal(t, "2024-04-01", normalizeDate("01-APR-2024"))
	assert.Empty(t, normalizeDate("2024-04-01"))
}
