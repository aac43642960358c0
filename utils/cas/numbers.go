package cas

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const casDateLayout = "02-Jan-2006"

var dateTokenPattern = regexp.MustCompile(`^(\d{2}-[A-Za-z]{3}-\d{4})`)

// parseNumber converts a statement token such as "1,234.50", "(10.500)" or
// "INR 45.67" into its non-negative magnitude.
func parseNumber(token string) (decimal.Decimal, error) {
	s := strings.TrimSpace(token)
	s = strings.TrimPrefix(s, "INR")
	s = strings.TrimPrefix(s, "Rs.")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty numeric token %q", token)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("non-numeric token %q", token)
	}
	// Values outside float64 range would surface as Inf in the output.
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero, fmt.Errorf("non-numeric token %q: out of range", token)
	}
	return d.Abs(), nil
}

// parseTrailingTriple reads the last three fields as amount, units and NAV.
// This positional contract is the only place the column order is encoded.
func parseTrailingTriple(fields []string) (amount, units, nav float64, err error) {
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 trailing numbers, got %d fields", len(fields))
	}
	tail := fields[len(fields)-3:]
	vals := make([]float64, 3)
	for i, tok := range tail {
		d, perr := parseNumber(tok)
		if perr != nil {
			return 0, 0, 0, perr
		}
		vals[i] = d.InexactFloat64()
	}
	return vals[0], vals[1], vals[2], nil
}

// leadingNumbers returns up to n numeric fields of line, in order, skipping
// fields that are not numbers.
func leadingNumbers(line string, n int) []float64 {
	out := make([]float64, 0, n)
	for _, f := range strings.Fields(line) {
		if len(out) == n {
			break
		}
		f = strings.TrimSuffix(f, ":")
		if !strings.ContainsAny(f, "0123456789") || dateTokenPattern.MatchString(f) {
			continue
		}
		d, err := parseNumber(f)
		if err != nil {
			continue
		}
		out = append(out, d.InexactFloat64())
	}
	return out
}

// normalizeDate converts DD-Mon-YYYY to YYYY-MM-DD. It returns "" when the
// token is not a valid date.
func normalizeDate(s string) string {
	t, err := time.Parse(casDateLayout, strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

func round2(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
