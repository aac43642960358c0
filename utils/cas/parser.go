// Package cas extracts investor, holdings and transaction data from the text
// of a CAMS or KFintech Consolidated Account Statement.
//
// Parse holds no state between calls and performs no I/O, so independent
// documents can be parsed concurrently.
package cas

import (
	"io"
	"log/slog"
	"strings"

	"github.com/Aashish23092/cas-parser/dto"
)

// DefaultBalanceWindow is how many lines after an ISIN anchor are searched
// for the closing balance row.
const DefaultBalanceWindow = 10

type options struct {
	sourceName    string
	logger        *slog.Logger
	balanceWindow int
}

type Option func(*options)

// WithSourceName passes the upstream filename, which carries the generation
// timestamp and CAS id.
func WithSourceName(name string) Option {
	return func(o *options) { o.sourceName = name }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithBalanceWindow(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.balanceWindow = n
		}
	}
}

// Parse classifies text and runs the extractors in order. It fails only with
// ErrEmptyDocument or ErrUnrecognizedFormat.
func Parse(text string, opts ...Option) (*dto.CASData, error) {
	o := options{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		balanceWindow: DefaultBalanceWindow,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c, err := Classify(text)
	if err != nil {
		return nil, err
	}

	lines := splitLines(text)
	data := &dto.CASData{
		Meta:         extractMeta(text, c, o.sourceName),
		InvestorInfo: extractInvestorInfo(lines, text, o.sourceName),
	}
	data.MutualFunds, data.SkippedRecords = extractHoldings(lines, c.Strategy, o.balanceWindow, o.logger)
	data.PortfolioSummary = summarize(data.MutualFunds)

	o.logger.Info("statement parsed",
		"issuer", c.Issuer,
		"cas_type", c.CASType,
		"schemes", data.PortfolioSummary.MutualFunds.Count,
		"skipped", len(data.SkippedRecords),
	)
	return data, nil
}

// ParsePages joins page texts in order and parses the result.
func ParsePages(pages []string, opts ...Option) (*dto.CASData, error) {
	return Parse(strings.Join(pages, "\n"), opts...)
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
