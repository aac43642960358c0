package dto

// CASType distinguishes a detailed statement from a holdings summary.
type CASType string

const (
	CASTypeFull    CASType = "FULL"
	CASTypeSummary CASType = "SUMMARY"
)

// TransactionType is the classified kind of a scheme transaction
type TransactionType string

const (
	TxnPurchase             TransactionType = "PURCHASE"
	TxnPurchaseSIP          TransactionType = "PURCHASE_SIP"
	TxnRedemption           TransactionType = "REDEMPTION"
	TxnSwitchIn             TransactionType = "SWITCH_IN"
	TxnSwitchOut            TransactionType = "SWITCH_OUT"
	TxnDividendPayout       TransactionType = "DIVIDEND_PAYOUT"
	TxnDividendReinvestment TransactionType = "DIVIDEND_REINVESTMENT"
	TxnMisc                 TransactionType = "MISC"
)

// IsDividend reports whether t carries a per-unit dividend rate.
func (t TransactionType) IsDividend() bool {
	return t == TxnDividendPayout || t == TxnDividendReinvestment
}

// StatementPeriod holds the ISO from/to dates when they could be recovered,
// and the raw anchor text for the summary layout.
type StatementPeriod struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Raw  string `json:"raw,omitempty"`
}

type Meta struct {
	StatementPeriod StatementPeriod `json:"statement_period"`
	CASType         CASType         `json:"cas_type"`
	Issuer          string          `json:"issuer"`
	GeneratedAt     string          `json:"generated_at,omitempty"`
}

type InvestorInfo struct {
	Name    string `json:"name"`
	PAN     string `json:"pan,omitempty"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	CASID   string `json:"cas_id,omitempty"`
}

type Gain struct {
	Absolute   float64 `json:"absolute"`
	Percentage float64 `json:"percentage"`
}

type AdditionalInfo struct {
	Advisor string `json:"advisor,omitempty"`
	RTA     string `json:"rta,omitempty"`
	RTACode string `json:"rta_code,omitempty"`
}

type Transaction struct {
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Type         TransactionType `json:"type"`
	Amount       float64         `json:"amount"`
	Units        float64         `json:"units"`
	NAV          float64         `json:"nav"`
	DividendRate *float64        `json:"dividend_rate,omitempty"`
}

// Scheme is one mutual fund holding under a folio.
type Scheme struct {
	Folio          string         `json:"folio"`
	AMC            string         `json:"amc"`
	Name           string         `json:"name"`
	ISIN           string         `json:"isin"`
	Units          float64        `json:"units"`
	NAV            float64        `json:"nav"`
	Value          float64        `json:"value"`
	Cost           *float64       `json:"cost,omitempty"`
	Gain           *Gain          `json:"gain,omitempty"`
	AdditionalInfo AdditionalInfo `json:"additional_info"`
	Transactions   []Transaction  `json:"transactions"`
}

type AssetClassSummary struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
}

type PortfolioSummary struct {
	TotalValue  float64           `json:"total_value"`
	MutualFunds AssetClassSummary `json:"mutual_funds"`
}

// SkippedRecord describes a line that looked like a record but could not be converted.
type SkippedRecord struct {
	LineNum int    `json:"line_num"`
	Text    string `json:"text"`
	Reason  string `json:"reason"`
}

// CASData is the result of one parse. It is not modified after Parse returns.
type CASData struct {
	Meta             Meta             `json:"meta"`
	InvestorInfo     InvestorInfo     `json:"investor_info"`
	MutualFunds      []Scheme         `json:"mutual_funds"`
	PortfolioSummary PortfolioSummary `json:"portfolio_summary"`
	SkippedRecords   []SkippedRecord  `json:"skipped_records,omitempty"`
}

// CASParseInput is one document handed to the service layer.
type CASParseInput struct {
	Filename string
	Password string
	Data     []byte
}
