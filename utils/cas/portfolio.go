package cas

import (
	"github.com/shopspring/decimal"

	"github.com/Aashish23092/cas-parser/dto"
)

// summarize recomputes the portfolio from the final scheme list. Other asset
// classes add their own summary and contribute to TotalValue here.
func summarize(schemes []dto.Scheme) dto.PortfolioSummary {
	mf := summarizeMutualFunds(schemes)
	return dto.PortfolioSummary{
		TotalValue:  mf.TotalValue,
		MutualFunds: mf,
	}
}

func summarizeMutualFunds(schemes []dto.Scheme) dto.AssetClassSummary {
	total := decimal.Zero
	for _, s := range schemes {
		total = total.Add(decimal.NewFromFloat(s.Value))
	}
	return dto.AssetClassSummary{
		Count:      len(schemes),
		TotalValue: total.InexactFloat64(),
	}
}
