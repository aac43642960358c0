package cas

import (
	"strings"

	"github.com/Aashish23092/cas-parser/dto"
)

const (
	IssuerCAMS     = "CAMS"
	IssuerKFintech = "KFINTECH"
)

// detailedMarker distinguishes the full transaction statement from the
// holdings summary issued by the same registrars.
const detailedMarker = "Consolidated Account Statement"

var issuerMarkers = []struct {
	issuer  string
	markers []string
}{
	{IssuerCAMS, []string{
		"CAMS - Consolidated Account",
		"Computer Age Management Services",
		"CAMS Financial Information Services",
	}},
	{IssuerKFintech, []string{
		"KFin Technologies",
		"KFINTECH",
		"Karvy Fintech",
	}},
}

// Classification is the outcome of format detection.
type Classification struct {
	Issuer   string
	CASType  dto.CASType
	Strategy FormatStrategy
}

// Classify decides which rule-set applies to text. It must run before any
// field extraction.
func Classify(text string) (Classification, error) {
	if strings.TrimSpace(text) == "" {
		return Classification{}, ErrEmptyDocument
	}

	issuer := ""
	for _, im := range issuerMarkers {
		if containsAny(text, im.markers) {
			issuer = im.issuer
			break
		}
	}
	if issuer == "" {
		return Classification{}, ErrUnrecognizedFormat
	}

	if strings.Contains(text, detailedMarker) {
		return Classification{Issuer: issuer, CASType: dto.CASTypeFull, Strategy: fullStrategy{}}, nil
	}
	return Classification{Issuer: issuer, CASType: dto.CASTypeSummary, Strategy: summaryStrategy{}}, nil
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
