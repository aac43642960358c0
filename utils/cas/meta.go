package cas

import (
	"path/filepath"
	"regexp"
	"time"

	"github.com/Aashish23092/cas-parser/dto"
)

// CAS_01012004-21062025_CP188509986_21062025053730617.pdf
var (
	generatedAtPattern = regexp.MustCompile(`_(\d{14}\d*)\.`)
	casIDPattern       = regexp.MustCompile(`CP(\d+)_`)
)

// extractMeta never fails; unmatched fields keep their zero value.
func extractMeta(text string, c Classification, sourceName string) dto.Meta {
	return dto.Meta{
		StatementPeriod: c.Strategy.StatementPeriod(text),
		CASType:         c.CASType,
		Issuer:          c.Issuer,
		GeneratedAt:     generatedAtFromSource(sourceName),
	}
}

// Registrars name files DDMMYYYYHHmmss followed by milliseconds; some mail
// exports reorder the date as YYYYMMDD.
var generatedAtLayouts = []string{"02012006150405", "20060102150405"}

// generatedAtFromSource reads the trailing timestamp token of the upstream
// filename, in the issuer's local time.
func generatedAtFromSource(sourceName string) string {
	if sourceName == "" {
		return ""
	}
	m := generatedAtPattern.FindStringSubmatch(filepath.Base(sourceName))
	if m == nil {
		return ""
	}
	for _, layout := range generatedAtLayouts {
		if t, err := time.Parse(layout, m[1][:14]); err == nil {
			return t.Format("2006-01-02T15:04:05")
		}
	}
	return ""
}

func casIDFromSource(sourceName string) string {
	if m := casIDPattern.FindStringSubmatch(filepath.Base(sourceName)); m != nil {
		return m[1]
	}
	return ""
}
