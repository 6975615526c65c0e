package tradingeconomics

// IndicatorRow is one row of the provider's country indicator payload.
// LatestValue and PreviousValue stay pointers so a missing number is
// distinguishable from zero.
type IndicatorRow struct {
	Country           string   `json:"Country"`
	Category          string   `json:"Category"`
	Title             string   `json:"Title"`
	LatestValue       *float64 `json:"LatestValue"`
	LatestValueDate   string   `json:"LatestValueDate"`
	PreviousValue     *float64 `json:"PreviousValue"`
	PreviousValueDate string   `json:"PreviousValueDate"`
	Source            string   `json:"Source"`
	Unit              string   `json:"Unit"`
	URL               string   `json:"URL"`
	CategoryGroup     string   `json:"CategoryGroup"`
	Frequency         string   `json:"Frequency"`
}
