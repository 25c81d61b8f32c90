package service

import (
	"math"

	"envrt-site/internal/model"
)

// planTier is one platform pricing level, selected by style count
type planTier struct {
	maxSkus int // inclusive upper bound; 0 = unbounded
	monthly float64
	name    string
	price   string
}

// Pricing and rate tables. Kept as data so the "fail open" lookup behavior
// stays visible; monetary figures are annual GBP unless noted.
var (
	planTiers = []planTier{
		{maxSkus: 25, monthly: 149, name: "Starter", price: "£149/mo"},
		{maxSkus: 100, monthly: 495, name: "Growth", price: "£495/mo"},
		{maxSkus: 0, monthly: 1295, name: "Pro", price: "£1,295/mo"},
	}

	consultantDayRates = map[model.TeamSize]float64{
		model.TeamFounder:   500,
		model.TeamSmall:     650,
		model.TeamDedicated: 800,
	}

	inhouseSalaries = map[model.TeamSize]float64{
		model.TeamFounder:   43000,
		model.TeamSmall:     55000,
		model.TeamDedicated: 67000,
	}
)

const (
	consultantBaseDays     = 5.0
	consultantDaysPerStyle = 1.5

	// Uplift applied when a brand targets both the EU and UK regimes
	dualMarketMultiplier = 1.3

	// Assumed hours per product per year after platform adoption
	postAdoptionHours = 1.0
)

// ROIService computes the platform-vs-alternatives cost comparison.
// CalculateROI is pure and total; inputs are clamped, never rejected.
type ROIService struct{}

// NewROIService creates a new ROI service
func NewROIService() *ROIService {
	return &ROIService{}
}

// CalculateROI maps the five calculator inputs to annual costs, savings and
// time saved. Internal computation keeps full precision; rounding to whole
// pounds/hours happens only at the output boundary.
func (s *ROIService) CalculateROI(inputs model.ROIInputs) model.ROIResults {
	skuCount := inputs.SkuCount
	if skuCount < 1 {
		skuCount = 1
	}
	hoursPerProduct := inputs.HoursPerProduct
	if hoursPerProduct < 0 {
		hoursPerProduct = 0
	}

	plan := selectPlan(skuCount)
	envrtCost := plan.monthly * 12

	marketMultiplier := 1.0
	if inputs.Market == model.MarketBoth {
		marketMultiplier = dualMarketMultiplier
	}
	consultantDays := consultantBaseDays + float64(skuCount)*consultantDaysPerStyle
	consultantCost := consultantDays * consultantDayRates[inputs.TeamSize] * marketMultiplier

	inhouseCost := inhouseSalaries[inputs.TeamSize]

	savingVsConsultant := math.Max(0, consultantCost-envrtCost)
	savingVsInhouse := math.Max(0, inhouseCost-envrtCost)
	maxSaving := math.Max(savingVsConsultant, savingVsInhouse)

	hoursSaved := math.Max(0, (hoursPerProduct-postAdoptionHours)*float64(skuCount))
	daysSaved := int(math.Round(hoursSaved / 8))

	return model.ROIResults{
		EnvrtCost:          int(math.Round(envrtCost)),
		EnvrtPlan:          plan.name,
		EnvrtPlanPrice:     plan.price,
		ConsultantCost:     int(math.Round(consultantCost)),
		InhouseCost:        int(math.Round(inhouseCost)),
		MaxSaving:          int(math.Round(maxSaving)),
		SavingVsConsultant: int(math.Round(savingVsConsultant)),
		SavingVsInhouse:    int(math.Round(savingVsInhouse)),
		HoursSaved:         int(math.Round(hoursSaved)),
		DaysSaved:          daysSaved,
	}
}

func selectPlan(skuCount int) planTier {
	for _, tier := range planTiers {
		if tier.maxSkus == 0 || skuCount <= tier.maxSkus {
			return tier
		}
	}
	return planTiers[len(planTiers)-1]
}
