package cas

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Aashish23092/cas-parser/dto"
)

var dividendRatePattern = regexp.MustCompile(`@\s*Rs\.\s*([\d,]*\.?\d+)`)

// minTransactionFields is date, at least one description word, and the
// numeric triple.
const minTransactionFields = 5

// parseTransaction reads a line that starts with a DD-Mon-YYYY date.
func parseTransaction(line string) (dto.Transaction, error) {
	fields := strings.Fields(line)
	if len(fields) < minTransactionFields {
		return dto.Transaction{}, fmt.Errorf("transaction line has %d fields, want at least %d", len(fields), minTransactionFields)
	}
	date := normalizeDate(fields[0])
	if date == "" {
		return dto.Transaction{}, fmt.Errorf("invalid transaction date %q", fields[0])
	}

	amount, units, nav, err := parseTrailingTriple(fields)
	if err != nil {
		return dto.Transaction{}, err
	}

	desc := strings.Join(fields[1:len(fields)-3], " ")
	txnType := classifyTransaction(desc)
	txn := dto.Transaction{
		Date:        date,
		Description: desc,
		Type:        txnType,
		Amount:      amount,
		Units:       units,
		NAV:         nav,
	}
	if txnType.IsDividend() {
		txn.DividendRate = dividendRate(desc)
	}
	return txn, nil
}

// transactionRules are checked in order; the first keyword found wins.
var transactionRules = []struct {
	keywords []string
	classify func(desc string) dto.TransactionType
}{
	{[]string{"purchase"}, func(desc string) dto.TransactionType {
		if containsFold(desc, "sip") || containsFold(desc, "systematic") {
			return dto.TxnPurchaseSIP
		}
		return dto.TxnPurchase
	}},
	{[]string{"redemption"}, constType(dto.TxnRedemption)},
	{[]string{"switch out", "switch-out"}, constType(dto.TxnSwitchOut)},
	{[]string{"switch in", "switch-in"}, constType(dto.TxnSwitchIn)},
	{[]string{"dividend", "idcw"}, func(desc string) dto.TransactionType {
		if containsFold(desc, "payout") || containsFold(desc, "paid") {
			return dto.TxnDividendPayout
		}
		return dto.TxnDividendReinvestment
	}},
}

func classifyTransaction(desc string) dto.TransactionType {
	for _, rule := range transactionRules {
		for _, kw := range rule.keywords {
			if containsFold(desc, kw) {
				return rule.classify(desc)
			}
		}
	}
	return dto.TxnMisc
}

func constType(t dto.TransactionType) func(string) dto.TransactionType {
	return func(string) dto.TransactionType { return t }
}

func dividendRate(desc string) *float64 {
	m := dividendRatePattern.FindStringSubmatch(desc)
	if m == nil {
		return nil
	}
	d, err := parseNumber(m[1])
	if err != nil {
		return nil
	}
	rate := d.InexactFloat64()
	return &rate
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
