// Package export converts parsed statements into the flat shapes used for
// downloads: a generic nested map and sheet-style tables.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/Aashish23092/cas-parser/dto"
)

const (
	SheetInvestorInfo     = "Investor Info"
	SheetPortfolioSummary = "Portfolio Summary"
	SheetSchemes          = "MF Schemes"
	SheetTransactions     = "MF Transactions"
)

// Table is one sheet: a header row followed by data rows of equal width.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

type Tables struct {
	InvestorInfo     Table
	PortfolioSummary Table
	Schemes          Table
	Transactions     Table
}

// All returns the tables in sheet order.
func (t Tables) All() []Table {
	return []Table{t.InvestorInfo, t.PortfolioSummary, t.Schemes, t.Transactions}
}

// ToMap returns the statement as nested maps keyed by the JSON field names.
func ToMap(data *dto.CASData) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode statement: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode statement: %w", err)
	}
	return out, nil
}

func BuildTables(data *dto.CASData) Tables {
	inv := data.InvestorInfo
	meta := data.Meta
	summary := data.PortfolioSummary

	t := Tables{
		InvestorInfo: Table{
			Name:   SheetInvestorInfo,
			Header: []string{"Name", "PAN", "Email", "Mobile", "Address", "CAS ID", "Issuer", "CAS Type", "Period From", "Period To", "Generated At"},
			Rows: [][]any{{
				inv.Name, inv.PAN, inv.Email, inv.Mobile, inv.Address, inv.CASID,
				meta.Issuer, string(meta.CASType), meta.StatementPeriod.From, meta.StatementPeriod.To, meta.GeneratedAt,
			}},
		},
		PortfolioSummary: Table{
			Name:   SheetPortfolioSummary,
			Header: []string{"Total Value", "Mutual Fund Schemes", "Mutual Fund Value"},
			Rows:   [][]any{{summary.TotalValue, summary.MutualFunds.Count, summary.MutualFunds.TotalValue}},
		},
		Schemes: Table{
			Name:   SheetSchemes,
			Header: []string{"Folio", "AMC", "Scheme", "ISIN", "Units", "NAV", "Value", "Cost", "Gain", "Gain %", "Advisor", "RTA", "RTA Code"},
			Rows:   [][]any{},
		},
		Transactions: Table{
			Name:   SheetTransactions,
			Header: []string{"Folio", "AMC", "Scheme", "ISIN", "Date", "Description", "Type", "Amount", "Units", "NAV", "Dividend Rate"},
			Rows:   [][]any{},
		},
	}

	for _, s := range data.MutualFunds {
		var cost, gain, gainPct any = "", "", ""
		if s.Cost != nil {
			cost = *s.Cost
		}
		if s.Gain != nil {
			gain, gainPct = s.Gain.Absolute, s.Gain.Percentage
		}
		t.Schemes.Rows = append(t.Schemes.Rows, []any{
			s.Folio, s.AMC, s.Name, s.ISIN, s.Units, s.NAV, s.Value, cost, gain, gainPct,
			s.AdditionalInfo.Advisor, s.AdditionalInfo.RTA, s.AdditionalInfo.RTACode,
		})

		for _, txn := range s.Transactions {
			var rate any = ""
			if txn.DividendRate != nil {
				rate = *txn.DividendRate
			}
			t.Transactions.Rows = append(t.Transactions.Rows, []any{
				s.Folio, s.AMC, s.Name, s.ISIN, txn.Date, txn.Description, string(txn.Type),
				txn.Amount, txn.Units, txn.NAV, rate,
			})
		}
	}
	return t
}
