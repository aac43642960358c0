package cas

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/cas-parser/dto"
)

var (
	panPattern    = regexp.MustCompile(`PAN\s*:\s*([A-Z]{5}\d{4}[A-Z])`)
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	mobilePattern = regexp.MustCompile(`Mobile\s*:\s*(\+?\d[\d -]{8,}\d)`)

	addressIsinTail   = regexp.MustCompile(`\s*-\s*ISIN:.*$`)
	addressGrowthTail = regexp.MustCompile(`\s*-\s*Growth.*$`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// extractInvestorInfo scans around the PAN anchor. There is no "Name:" label
// in the statement; the holder's name sits on the PAN line or the one above.
func extractInvestorInfo(lines []string, text, sourceName string) dto.InvestorInfo {
	info := dto.InvestorInfo{CASID: casIDFromSource(sourceName)}

	if m := panPattern.FindStringSubmatch(text); m != nil {
		info.PAN = m[1]
	}
	info.Email = emailPattern.FindString(text)
	if m := mobilePattern.FindStringSubmatch(text); m != nil {
		info.Mobile = strings.TrimSpace(m[1])
	}

	name, nameIdx := findInvestorName(lines)
	info.Name = name
	if nameIdx >= 0 {
		info.Address = extractAddress(lines, nameIdx)
	}
	return info
}

func findInvestorName(lines []string) (string, int) {
	for i, line := range lines {
		loc := panPattern.FindStringIndex(line)
		if loc == nil || strings.HasPrefix(strings.TrimSpace(line), "Folio No") {
			continue
		}
		if before := strings.TrimSpace(line[:loc[0]]); before != "" {
			return before, i
		}
		for j := i - 1; j >= 0; j-- {
			if prev := strings.TrimSpace(lines[j]); prev != "" {
				return prev, j
			}
		}
		return "", -1
	}
	return "", -1
}

// extractAddress joins the lines between the name line and the first folio
// header, dropping separators, balance rows and the contact anchors.
func extractAddress(lines []string, nameIdx int) string {
	var parts []string
	for j := nameIdx + 1; j < len(lines); j++ {
		line := strings.TrimSpace(lines[j])
		if strings.HasPrefix(line, "Folio No") {
			break
		}
		if line == "" || isAddressNoise(line) {
			continue
		}
		parts = append(parts, line)
	}
	if len(parts) == 0 {
		return ""
	}

	address := strings.Join(parts, " ")
	address = addressIsinTail.ReplaceAllString(address, "")
	address = addressGrowthTail.ReplaceAllString(address, "")
	address = whitespaceRun.ReplaceAllString(address, " ")
	return strings.Trim(address, " ,-")
}

func isAddressNoise(line string) bool {
	if strings.HasPrefix(line, "***") || strings.HasPrefix(line, "Opening Unit") {
		return true
	}
	return panPattern.MatchString(line) ||
		strings.HasPrefix(line, "Email") ||
		strings.HasPrefix(line, "Mobile")
}
