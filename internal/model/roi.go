package model

// Market is the target market enum for the ROI calculator
type Market string

const (
	MarketEU   Market = "eu"
	MarketUK   Market = "uk"
	MarketBoth Market = "both"
)

// Approach is the respondent's current compliance approach
type Approach string

const (
	ApproachNone         Approach = "none"
	ApproachSpreadsheets Approach = "spreadsheets"
	ApproachConsultant   Approach = "consultant"
	ApproachInhouse      Approach = "inhouse"
)

// TeamSize is the team-size context used for rate and salary lookups
type TeamSize string

const (
	TeamFounder   TeamSize = "founder"
	TeamSmall     TeamSize = "small"
	TeamDedicated TeamSize = "dedicated"
)

// ROIInputs are the five calculator inputs
type ROIInputs struct {
	SkuCount        int      `json:"skuCount"` // product styles per year, >= 1
	HoursPerProduct float64  `json:"hoursPerProduct"`
	Market          Market   `json:"market"`
	Approach        Approach `json:"approach"`
	TeamSize        TeamSize `json:"teamSize"`
}

// ROIResults is the full cost comparison. Monetary fields are annual GBP,
// rounded to whole pounds at the output boundary.
type ROIResults struct {
	EnvrtCost          int    `json:"envrtCost"`
	EnvrtPlan          string `json:"envrtPlan"`
	EnvrtPlanPrice     string `json:"envrtPlanPrice"`
	ConsultantCost     int    `json:"consultantCost"`
	InhouseCost        int    `json:"inhouseCost"`
	MaxSaving          int    `json:"maxSaving"`
	SavingVsConsultant int    `json:"savingVsConsultant"`
	SavingVsInhouse    int    `json:"savingVsInhouse"`
	HoursSaved         int    `json:"hoursSaved"`
	DaysSaved          int    `json:"daysSaved"`
}

// ROILead is the ROI lead-capture request body: identity, the five inputs
// and the full results record, flattened the way the calculator submits it.
type ROILead struct {
	FirstName        string  `json:"firstName"`
	BrandName        string  `json:"brandName"`
	Email            string  `json:"email"`
	MarketingConsent bool    `json:"marketingConsent"`
	SkuCount         int     `json:"skuCount"`
	HoursPerProduct  float64 `json:"hoursPerProduct"`
	Market           string  `json:"market"`
	Approach         string  `json:"approach"`
	TeamSize         string  `json:"teamSize"`
	ROIResults
}
