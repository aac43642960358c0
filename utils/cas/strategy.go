package cas

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Aashish23092/cas-parser/dto"
)

// FormatStrategy holds the anchors that differ between statement layouts.
// Everything else in the pipeline is shared.
type FormatStrategy interface {
	// StatementPeriod recovers the period from the document text.
	StatementPeriod(text string) dto.StatementPeriod
	// IsBalanceLine reports whether line carries the closing unit balance.
	IsBalanceLine(line string) bool
	// FinalizeScheme fills figures the layout does not print explicitly.
	FinalizeScheme(s *dto.Scheme, balanceFound bool)
}

var (
	fullPeriodPattern    = regexp.MustCompile(`Statement\s+for\s+the\s+period\s+from\s+(\d{2}-[A-Za-z]{3}-\d{4})\s+to\s+(\d{2}-[A-Za-z]{3}-\d{4})`)
	summaryPeriodPattern = regexp.MustCompile(`Statement\s+Period\s*:\s*([^\n]+)`)
	looseDatePattern     = regexp.MustCompile(`\d{2}-[A-Za-z]{3}-\d{4}`)
)

type fullStrategy struct{}

func (fullStrategy) StatementPeriod(text string) dto.StatementPeriod {
	m := fullPeriodPattern.FindStringSubmatch(text)
	if m == nil {
		return dto.StatementPeriod{}
	}
	return dto.StatementPeriod{From: normalizeDate(m[1]), To: normalizeDate(m[2])}
}

func (fullStrategy) IsBalanceLine(line string) bool {
	return strings.Contains(line, "Closing Unit Balance")
}

func (fullStrategy) FinalizeScheme(*dto.Scheme, bool) {}

type summaryStrategy struct{}

func (summaryStrategy) StatementPeriod(text string) dto.StatementPeriod {
	m := summaryPeriodPattern.FindStringSubmatch(text)
	if m == nil {
		return dto.StatementPeriod{}
	}
	p := dto.StatementPeriod{Raw: strings.TrimSpace(m[1])}
	if dates := looseDatePattern.FindAllString(p.Raw, 2); len(dates) == 2 {
		p.From = normalizeDate(dates[0])
		p.To = normalizeDate(dates[1])
	}
	return p
}

func (summaryStrategy) IsBalanceLine(line string) bool {
	return strings.Contains(line, "Closing Unit Balance") || strings.Contains(line, "Closing Balance")
}

// FinalizeScheme derives the holding from its transactions when no balance
// line was printed: net units times the NAV of the last transaction.
func (summaryStrategy) FinalizeScheme(s *dto.Scheme, balanceFound bool) {
	if balanceFound || len(s.Transactions) == 0 {
		return
	}
	units := decimal.Zero
	for _, t := range s.Transactions {
		u := decimal.NewFromFloat(t.Units)
		switch t.Type {
		case dto.TxnPurchase, dto.TxnPurchaseSIP, dto.TxnSwitchIn, dto.TxnDividendReinvestment:
			units = units.Add(u)
		case dto.TxnRedemption, dto.TxnSwitchOut:
			units = units.Sub(u)
		}
	}
	if units.IsNegative() {
		units = decimal.Zero
	}
	last := s.Transactions[len(s.Transactions)-1]
	nav := decimal.NewFromFloat(last.NAV)
	s.Units = units.Round(3).InexactFloat64()
	s.NAV = last.NAV
	s.Value = units.Mul(nav).Round(2).InexactFloat64()
}
