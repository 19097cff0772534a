package domain

// LedgerSummary aggregates all stored conversions and payouts. Totals are in
// USD cents; NULL columns count as zero.
type LedgerSummary struct {
	TotalGrossCents int64 `json:"total_gross_cents"`
	TotalFeeCents   int64 `json:"total_fee_cents"`
	TotalNetCents   int64 `json:"total_net_cents"`
	ConversionCount int64 `json:"conversion_count"`
	PayoutCount     int64 `json:"payout_count"`
}

// ActivityFeed lists the most recently created rows of each pipeline table.
type ActivityFeed struct {
	Deposits    []Deposit    `json:"deposits"`
	Conversions []Conversion `json:"conversions"`
	Payouts     []Payout     `json:"payouts"`
}

// ActivityEvent is pushed over the WebSocket stream whenever a pipeline record
// is created or changes status.
type ActivityEvent struct {
	Event  string `json:"event"`
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Status string `json:"status"`
}
