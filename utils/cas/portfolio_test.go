package cas

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/cas-parser/dto"
)

func TestSummarize(t *testing.T) {
	schemes := []dto.Scheme{{Value: 0.1}, {Value: 0.2}, {Value: 0}}
	ps := summarize(schemes)

	assert.Equal(t, 3, ps.MutualFunds.Count)
	assert.Equal(t, 0.3, ps.MutualFunds.TotalValue)
	assert.Equal(t, ps.MutualFunds.TotalValue, ps.TotalValue)
}

func TestSummarizeEmpty(t *testing.T) {
	ps := summarize(nil)
	assert.Zero(t, ps.TotalValue)
	assert.Zero(t, ps.MutualFunds.Count)
}

func TestSummaryStrategyDerivesValue(t *testing.T) {
	s := dto.Scheme{Transactions: []dto.Transaction{
		{Type: dto.TxnPurchase, Units: 10, NAV: 10},
		{Type: dto.TxnSwitchOut, Units: 4, NAV: 11},
		{Type: dto.TxnDividendPayout, Units: 0, NAV: 12.5},
	}}
	summaryStrategy{}.FinalizeScheme(&s, false)

	assert.Equal(t, 6.0, s.Units)
	assert.Equal(t, 12.5, s.NAV)
	assert.Equal(t, 75.0, s.Value)

	kept := dto.Scheme{Units: 1, NAV: 2, Value: 2, Transactions: s.Transactions}
	summaryStrategy{}.FinalizeScheme(&kept, true)
	assert.Equal(t, 2.0, kept.Value)
}
