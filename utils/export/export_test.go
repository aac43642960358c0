package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/cas-parser/dto"
)

func ptr(v float64) *float64 { return &v }

func sampleData() *dto.CASData {
	return &dto.CASData{
		Meta: dto.Meta{
			StatementPeriod: dto.StatementPeriod{From: "2024-04-01", To: "2025-03-31"},
			CASType:         dto.CASTypeFull,
			Issuer:          "CAMS",
		},
		InvestorInfo: dto.InvestorInfo{Name: "JOHN DOE", PAN: "ABCDE1234F", Email: "john.doe@example.com"},
		MutualFunds: []dto.Scheme{
			{
				Folio: "1234567 / 89", AMC: "HDFC Mutual Fund", Name: "HDFC Top 100 Fund - Direct Growth",
				ISIN: "INF179K01YV8", Units: 120.5, NAV: 45.67, Value: 5502.83,
				Cost: ptr(5000), Gain: &dto.Gain{Absolute: 502.83, Percentage: 10.0566},
				AdditionalInfo: dto.AdditionalInfo{Advisor: "ARN-12345", RTA: "CAMS", RTACode: "B205RG"},
				Transactions: []dto.Transaction{
					{Date: "2024-04-01", Description: "Purchase - SIP", Type: dto.TxnPurchaseSIP, Amount: 1000, Units: 10.5, NAV: 95.2},
					{Date: "2024-06-15", Description: "Redemption", Type: dto.TxnRedemption, Amount: 500, Units: 5, NAV: 100},
				},
			},
			{
				Folio: "7654321", AMC: "Axis Mutual Fund", Name: "Axis Bluechip Fund - Direct Growth",
				ISIN: "INF846K01DP8", Units: 200, NAV: 55.1, Value: 11020,
				Transactions: []dto.Transaction{
					{Date: "2024-05-05", Description: "Dividend Reinvestment", Type: dto.TxnDividendReinvestment, Amount: 250, Units: 5, NAV: 50, DividendRate: ptr(1.25)},
				},
			},
		},
		PortfolioSummary: dto.PortfolioSummary{
			TotalValue:  16522.83,
			MutualFunds: dto.AssetClassSummary{Count: 2, TotalValue: 16522.83},
		},
	}
}

func TestToMap(t *testing.T) {
	m, err := ToMap(sampleData())
	require.NoError(t, err)

	inv, ok := m["investor_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "JOHN DOE", inv["name"])

	funds, ok := m["mutual_funds"].([]any)
	require.True(t, ok)
	assert.Len(t, funds, 2)

	summary := m["portfolio_summary"].(map[string]any)
	assert.Equal(t, 16522.83, summary["total_value"])
}

func TestBuildTables(t *testing.T) {
	tables := BuildTables(sampleData())

	all := tables.All()
	require.Len(t, all, 4)
	names := []string{all[0].Name, all[1].Name, all[2].Name, all[3].Name}
	assert.Equal(t, []string{SheetInvestorInfo, SheetPortfolioSummary, SheetSchemes, SheetTransactions}, names)

	for _, table := range all {
		for _, row := range table.Rows {
			assert.Len(t, row, len(table.Header), table.Name)
		}
	}

	assert.Len(t, tables.InvestorInfo.Rows, 1)
	assert.Len(t, tables.Schemes.Rows, 2)
	require.Len(t, tables.Transactions.Rows, 3)

	// folio, AMC and scheme are repeated on every transaction row
	last := tables.Transactions.Rows[2]
	assert.Equal(t, "7654321", last[0])
	assert.Equal(t, "Axis Mutual Fund", last[1])
	assert.Equal(t, "Axis Bluechip Fund - Direct Growth", last[2])
	assert.Equal(t, "DIVIDEND_REINVESTMENT", last[6])
	assert.Equal(t, 1.25, last[10])

	// absent cost and gain render as blank cells
	assert.Equal(t, "", tables.Schemes.Rows[1][7])
	assert.Equal(t, "", tables.Schemes.Rows[1][8])
}

func TestBuildTablesEmptyStatement(t *testing.T) {
	tables := BuildTables(&dto.CASData{MutualFunds: []dto.Scheme{}})

	assert.Len(t, tables.InvestorInfo.Rows, 1)
	assert.Empty(t, tables.Schemes.Rows)
	assert.Empty(t, tables.Transactions.Rows)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleData()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetInvestorInfo, SheetPortfolioSummary, SheetSchemes, SheetTransactions}, f.GetSheetList())

	rows, err := f.GetRows(SheetSchemes)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Folio", rows[0][0])
	assert.Equal(t, "INF179K01YV8", rows[1][3])
	assert.Equal(t, "5502.83", rows[1][6])

	rows, err = f.GetRows(SheetTransactions)
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	name, err := f.GetCellValue(SheetInvestorInfo, "A2")
	require.NoError(t, err)
	assert.Equal(t, "JOHN DOE", name)
}
