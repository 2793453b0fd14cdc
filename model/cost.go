package model

// MonthCost contains the aggregated cost for the elapsed current month.
// Amount stays a decimal string exactly as Cost Explorer reports it.
type MonthCost struct {
	Amount string
	Unit   string
}

// UsageRow represents usage quantity accumulated by one service
type UsageRow struct {
	Service string
	Amount  float64
	Unit    string
}
