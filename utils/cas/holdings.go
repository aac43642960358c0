package cas

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Aashish23092/cas-parser/dto"
)

var (
	folioPattern     = regexp.MustCompile(`Folio\s+No\s*:\s*([A-Za-z0-9/-]+(?:\s*/\s*[A-Za-z0-9-]+)?)`)
	amcLinePattern   = regexp.MustCompile(`^[A-Za-z0-9&.' ()-]*\bMutual Fund$`)
	arnPattern       = regexp.MustCompile(`ARN-(\d+)`)
	advisorPattern   = regexp.MustCompile(`Advisor\s*:\s*([A-Za-z0-9-]+)`)
	registrarPattern = regexp.MustCompile(`Registrar\s*:\s*([A-Za-z]+)`)
	isinPattern      = regexp.MustCompile(`ISIN\s*:\s*(INF[A-Z0-9]{9})`)
	rtaCodePattern   = regexp.MustCompile(`^([A-Z0-9]*\d[A-Z0-9]*)\s*-\s*(.+)$`)
	costPattern      = regexp.MustCompile(`(?:Total\s+)?Cost(?:\s+Value)?\s*:\s*(?:Rs\.|INR)?\s*([\d,]+(?:\.\d+)?)`)
)

// amcLookahead bounds the search for the AMC name after a folio header.
const amcLookahead = 4

// scanContext is the carry-forward state of the holdings scan. Updates
// return a new value; schemes copy the context that was current when their
// ISIN anchor was seen.
type scanContext struct {
	folio     string
	amc       string
	advisor   string
	registrar string
}

func (c scanContext) withFolio(folio string) scanContext   { c.folio = folio; return c }
func (c scanContext) withAMC(amc string) scanContext       { c.amc = amc; return c }
func (c scanContext) withAdvisor(adv string) scanContext   { c.advisor = adv; return c }
func (c scanContext) withRegistrar(reg string) scanContext { c.registrar = reg; return c }

// openScheme is the scheme whose line span is currently being scanned.
type openScheme struct {
	scheme       dto.Scheme
	anchorIdx    int
	balanceFound bool
}

type holdingsScanner struct {
	lines    []string
	strategy FormatStrategy
	window   int
	logger   *slog.Logger

	ctx     scanContext
	open    *openScheme
	schemes []dto.Scheme
	skipped []dto.SkippedRecord
}

// extractHoldings walks the lines once. Folio, AMC, advisor and registrar
// lines update the context; an ISIN anchor closes the open scheme and opens
// the next one; lines inside a scheme span are balance or transaction rows.
func extractHoldings(lines []string, strategy FormatStrategy, window int, logger *slog.Logger) ([]dto.Scheme, []dto.SkippedRecord) {
	s := &holdingsScanner{
		lines:    lines,
		strategy: strategy,
		window:   window,
		logger:   logger,
		schemes:  []dto.Scheme{},
	}
	for i := range lines {
		s.scanLine(i)
	}
	s.closeScheme()
	return s.schemes, s.skipped
}

func (s *holdingsScanner) scanLine(i int) {
	line := strings.TrimSpace(s.lines[i])
	if line == "" {
		return
	}

	if m := folioPattern.FindStringSubmatch(line); m != nil {
		s.ctx = s.ctx.withFolio(strings.TrimSpace(m[1]))
		if amc := s.lookaheadAMC(i); amc != "" {
			s.ctx = s.ctx.withAMC(amc)
		}
		return
	}
	if amcLinePattern.MatchString(line) {
		s.ctx = s.ctx.withAMC(line)
		return
	}

	// Advisor and registrar usually share the ISIN line, so they are
	// applied before the anchor is tested.
	if m := arnPattern.FindStringSubmatch(line); m != nil {
		s.ctx = s.ctx.withAdvisor("ARN-" + m[1])
	} else if m := advisorPattern.FindStringSubmatch(line); m != nil {
		s.ctx = s.ctx.withAdvisor(m[1])
	}
	if reg := registrarOf(line); reg != "" {
		s.ctx = s.ctx.withRegistrar(reg)
	}

	if loc := isinPattern.FindStringSubmatchIndex(line); loc != nil {
		s.closeScheme()
		s.openScheme(i, line, line[loc[2]:loc[3]], line[:loc[0]])
		return
	}

	if s.open == nil {
		return
	}
	if !s.open.balanceFound && i-s.open.anchorIdx <= s.window && s.strategy.IsBalanceLine(line) {
		s.readBalance(i, line)
		return
	}
	if dateTokenPattern.MatchString(line) {
		txn, err := parseTransaction(line)
		if err != nil {
			s.skip(i, line, err)
			return
		}
		s.open.scheme.Transactions = append(s.open.scheme.Transactions, txn)
	}
}

func (s *holdingsScanner) lookaheadAMC(i int) string {
	end := min(i+1+amcLookahead, len(s.lines))
	for j := i + 1; j < end; j++ {
		if l := strings.TrimSpace(s.lines[j]); amcLinePattern.MatchString(l) {
			return l
		}
	}
	return ""
}

func registrarOf(line string) string {
	if m := registrarPattern.FindStringSubmatch(line); m != nil {
		return strings.ToUpper(m[1])
	}
	switch {
	case strings.Contains(line, "KFINTECH"):
		return IssuerKFintech
	case strings.Contains(line, "CAMS"):
		return IssuerCAMS
	}
	return ""
}

func (s *holdingsScanner) openScheme(i int, line, isin, prefix string) {
	name := strings.Trim(strings.TrimSpace(prefix), " -(")
	if name == "" {
		name = s.previousLine(i)
	}
	rtaCode := ""
	if m := rtaCodePattern.FindStringSubmatch(name); m != nil {
		rtaCode, name = m[1], strings.TrimSpace(m[2])
	}

	s.open = &openScheme{
		anchorIdx: i,
		scheme: dto.Scheme{
			Folio: s.ctx.folio,
			AMC:   s.ctx.amc,
			Name:  name,
			ISIN:  isin,
			AdditionalInfo: dto.AdditionalInfo{
				Advisor: s.ctx.advisor,
				RTA:     s.ctx.registrar,
				RTACode: rtaCode,
			},
			Transactions: []dto.Transaction{},
		},
	}
	s.logger.Debug("scheme opened", "isin", isin, "name", name, "folio", s.ctx.folio)
}

func (s *holdingsScanner) previousLine(i int) string {
	if i == 0 {
		return ""
	}
	return strings.TrimSpace(s.lines[i-1])
}

// readBalance takes the first three numbers of the balance line as units,
// NAV and value. A cost fragment is removed first so it cannot shift them.
func (s *holdingsScanner) readBalance(i int, line string) {
	sc := &s.open.scheme
	rest := line
	var cost *float64
	if loc := costPattern.FindStringSubmatchIndex(line); loc != nil {
		if d, err := parseNumber(line[loc[2]:loc[3]]); err == nil {
			c := d.InexactFloat64()
			cost = &c
		}
		rest = line[:loc[0]] + " " + line[loc[1]:]
	}

	nums := leadingNumbers(rest, 3)
	if len(nums) < 3 {
		s.skip(i, line, fmt.Errorf("balance line has %d numbers, want 3", len(nums)))
		return
	}
	s.open.balanceFound = true
	sc.Units, sc.NAV, sc.Value = nums[0], nums[1], nums[2]

	if cost != nil {
		sc.Cost = cost
		if *cost > 0 {
			abs := round2(sc.Value - *cost)
			sc.Gain = &dto.Gain{Absolute: abs, Percentage: abs / *cost * 100}
		}
	}
}

func (s *holdingsScanner) closeScheme() {
	if s.open == nil {
		return
	}
	s.strategy.FinalizeScheme(&s.open.scheme, s.open.balanceFound)
	s.schemes = append(s.schemes, s.open.scheme)
	s.open = nil
}

func (s *holdingsScanner) skip(i int, line string, err error) {
	s.logger.Warn("skipping malformed record", "line", i+1, "text", line, "error", err)
	s.skipped = append(s.skipped, dto.SkippedRecord{LineNum: i + 1, Text: line, Reason: err.Error()})
}
