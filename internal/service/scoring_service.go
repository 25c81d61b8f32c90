package service

import (
	"math"
	"sort"

	"envrt-site/internal/model"
)

// Scoring lookup tables. Values not present contribute 0, so partially
// completed answer sets score without erroring. No answer subtracts points.
var (
	supplyChainPoints = map[string]map[string]int{
		"q6":  {"none": 0, "tier1": 10, "tier1-2": 20, "tier3+": 30},
		"q7":  {"difficult": 0, "could-obtain": 6, "some": 12, "all": 20},
		"q8":  {"no": 0, "final-only": 6, "most": 13, "all": 20},
		"q10": {"none": 0, "ad-hoc": 4, "informal-most": 9, "formal-all": 15},
	}
	productDataPoints = map[string]map[string]int{
		"q11": {"no": 0, "some": 9, "most": 17, "all": 25},
		"q12": {"none": 0, "scattered": 8, "spreadsheets": 17, "dedicated": 25},
		"q13": {"none": 0, "some-research": 7, "self-calc": 15, "verified": 25},
		"q14": {"new": 0, "explored": 8, "pilot": 17, "already": 25},
	}
	regulatoryPoints = map[string]map[string]int{
		"q17": {"no-awareness": 0, "heard": 8, "general-sense": 18, "know-specifics": 28},
		"q18": {"none": 0, "independent": 7, "informal": 13, "active-support": 20},
		"q20": {"new": 0, "heard": 6, "concerned": 13, "reviewed": 20},
	}
	infrastructurePoints = map[string]map[string]int{
		"q21": {"none": 0, "mixed": 8, "spreadsheets": 12, "erp": 22, "plm": 30},
		"q22": {"informal": 8, "outsourced": 12, "spreadsheets": 18, "dedicated": 30},
		"q23": {"nobody": 0, "founder": 7, "part-role": 13, "dedicated": 20},
		"q24": {"not-applicable": 0, "not-sure": 5, "24-36": 13, "12-24": 20, "under-12": 20},
	}

	// q9: 5 pts per recognised certification, capped at 15
	recognisedCerts = []string{"gots", "grs", "oeko-tex", "bsci-smeta", "bluesign"}

	// q16: 8 pts per recognised regulation, capped at 32
	recognisedRegs = []string{"espr", "green-claims", "dmcca", "textile-labelling"}
)

// Overall score weights
const (
	weightSupplyChain    = 0.30
	weightProductData    = 0.30
	weightRegulatory     = 0.20
	weightInfrastructure = 0.20
)

// ScoringService computes DPP readiness scores and the report narrative.
// All methods are pure and total over their inputs.
type ScoringService struct{}

// NewScoringService creates a new scoring service
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// CalculateScores maps a quiz answer set to the four dimension scores, the
// weighted overall score and the green claims risk flag.
func (s *ScoringService) CalculateScores(answers model.Answers) model.Scores {
	// Dimension 1: Supply Chain Traceability (q6-q10)
	sc := tablePoints(supplyChainPoints, answers, "q6", "q7", "q8", "q10")
	sc += cappedCount(answers.List("q9"), recognisedCerts, 5, 15)
	supplyChain := clampScore(sc)

	// Dimension 2: Product Data Completeness (q11-q15)
	pd := tablePoints(productDataPoints, answers, "q11", "q12", "q13", "q14")
	if answers.Str("q15") == "prominently" {
		pd += 5
	}
	productData := clampScore(pd)

	// Dimension 3: Regulatory Awareness (q16-q20)
	ra := cappedCount(answers.List("q16"), recognisedRegs, 8, 32)
	ra += tablePoints(regulatoryPoints, answers, "q17", "q18", "q20")
	regulatory := clampScore(ra)

	// Dimension 4: Data Infrastructure (q21-q25)
	di := tablePoints(infrastructurePoints, answers, "q21", "q22", "q23", "q24")
	infrastructure := clampScore(di)

	overall := int(math.Round(
		float64(supplyChain)*weightSupplyChain +
			float64(productData)*weightProductData +
			float64(regulatory)*weightRegulatory +
			float64(infrastructure)*weightInfrastructure))

	makingClaims := answers.Str("q19") == "regularly" || answers.Str("q19") == "occasionally"
	noVerifiedData := answers.Str("q13") == "none" || answers.Str("q13") == "some-research"

	return model.Scores{
		SupplyChain:     supplyChain,
		ProductData:     productData,
		Regulatory:      regulatory,
		Infrastructure:  infrastructure,
		Overall:         overall,
		GreenClaimsFlag: makingClaims && noVerifiedData,
	}
}

// BuildReport computes scores and the full narrative in one pass
func (s *ScoringService) BuildReport(answers model.Answers) model.AssessmentReport {
	scores := s.CalculateScores(answers)
	return model.AssessmentReport{
		Scores:       scores,
		Band:         s.Band(scores.Overall),
		TimelineRisk: s.TimelineRisk(answers),
		Actions:      s.RecommendedActions(scores),
	}
}

// Band buckets the overall score into one of five named bands. Boundaries
// are inclusive on the upper end of each bucket.
func (s *ScoringService) Band(overall int) model.Band {
	switch {
	case overall <= 25:
		return model.Band{
			Label:    "CRITICAL EXPOSURE",
			Headline: "Your brand has significant compliance gaps that require immediate attention.",
			Summary: "Based on your responses, your brand currently has limited visibility across your supply chain, " +
				"incomplete product data and insufficient compliance infrastructure to meet incoming DPP requirements. " +
				"Without action, you face real legal and commercial risk as ESPR deadlines approach.",
		}
	case overall <= 45:
		return model.Band{
			Label:    "EARLY STAGE",
			Headline: "You’ve begun the compliance journey, but there’s substantial ground to cover.",
			Summary: "Your brand has some foundations in place but significant gaps remain, particularly in supply chain " +
				"traceability and structured product data. The good news is that brands at your stage typically achieve " +
				"full compliance readiness within 3-6 months with the right tooling.",
		}
	case overall <= 65:
		return model.Band{
			Label:    "DEVELOPING",
			Headline: "You’re further along than most SME brands, but key gaps remain.",
			Summary: "Your brand has meaningful data infrastructure and some regulatory awareness, but you’re likely " +
				"missing the systematic product-level data and supplier connectivity needed for full DPP generation. " +
				"This is solvable, but requires structured action in the next 6-12 months.",
		}
	case overall <= 80:
		return model.Band{
			Label:    "COMPLIANCE READY",
			Headline: "Strong foundations. Now it’s about formalising and scaling.",
			Summary: "Your brand is well positioned relative to most SMEs in fashion. Your supply chain visibility and " +
				"product data are reasonably mature. The priority now is consolidating that data into a compliant DPP " +
				"format and ensuring you have systems that can scale as your product range grows.",
		}
	default:
		return model.Band{
			Label:    "ADVANCED",
			Headline: "You’re ahead of the curve. Let’s make sure it stays that way.",
			Summary: "Your compliance infrastructure is strong. The focus for your brand should be on automating DPP " +
				"generation at scale, maintaining data accuracy as your supplier base evolves and staying ahead of " +
				"regulatory updates as ESPR implementation develops.",
		}
	}
}

// TimelineRisk selects the timeline narrative. Priority order: explicit
// deadline awareness, then EU market exposure, then UK-only, else generic.
func (s *ScoringService) TimelineRisk(answers model.Answers) string {
	awareness := answers.Str("q17")
	markets := answers.List("q2")
	inEU := contains(markets, "eu")
	inUK := contains(markets, "uk")

	if awareness == "know-specifics" || awareness == "general-sense" {
		return "You’re aware of your compliance window. The priority now is ensuring your data infrastructure can " +
			"actually deliver compliant DPPs within that timeline, not just track toward it."
	}
	if inEU {
		return "Products sold into the EU in your category are subject to ESPR Digital Product Passport requirements. " +
			"Based on current implementation timelines, your deadline window is approaching. Brands that begin data " +
			"collection now have a significant advantage over those waiting for final regulatory clarity."
	}
	if inUK && !inEU {
		return "While UK DMCCA timelines differ from EU ESPR, the direction of travel is identical. Brands building " +
			"DPP infrastructure now will be positioned for both regimes without duplicating effort."
	}
	return "Digital Product Passport requirements are being adopted globally, starting with the EU and UK. Brands that " +
		"build compliance infrastructure now will be positioned to meet requirements as they extend to additional markets."
}

// Per-dimension action thresholds; regulatory triggers earlier because
// deadline awareness gates everything else.
const (
	actionThreshold           = 40
	regulatoryActionThreshold = 50
	maxActions                = 5
)

var generalActions = map[string]string{
	"supplyChain": "Strengthen supplier relationships by establishing formal data-sharing agreements and gradually " +
		"extending your traceability to deeper supply chain tiers.",
	"productData": "Consolidate your product-level data into a single, structured format that can serve as the " +
		"foundation for DPP generation as requirements crystallise.",
	"regulatory": "Stay informed on evolving ESPR and DMCCA requirements by subscribing to industry updates and " +
		"engaging with trade bodies relevant to your product categories.",
	"infrastructure": "Assess whether your current data management systems can scale to support the volume and " +
		"granularity of data required for compliant Digital Product Passports.",
}

// RecommendedActions returns 1-5 actions in deterministic order: the risk
// action first when flagged, then targeted actions for weak dimensions, then
// generic advice for the lowest-scoring dimensions, deduped.
func (s *ScoringService) RecommendedActions(scores model.Scores) []string {
	actions := []string{}

	if scores.GreenClaimsFlag {
		actions = append(actions, "Audit all public-facing sustainability claims immediately and either substantiate "+
			"them with verified data or remove them before 2026 enforcement begins.")
	}
	if scores.SupplyChain < actionThreshold {
		actions = append(actions, "Map your full supply chain to at least Tier 2, documenting country of origin and "+
			"material sources for your top 20 styles. This is the foundational data layer for any DPP.")
	}
	if scores.ProductData < actionThreshold {
		actions = append(actions, "Establish a central product data record (even a structured spreadsheet) capturing "+
			"weight, material composition, care instructions and country of origin for every active style. This is "+
			"your DPP raw material.")
	}
	if scores.Regulatory < regulatoryActionThreshold {
		actions = append(actions, "Commission a formal regulatory briefing for your specific product categories and "+
			"markets. Understanding your exact deadlines is the prerequisite for any compliance strategy.")
	}
	if scores.Infrastructure < actionThreshold {
		actions = append(actions, "Your current tooling cannot support DPP generation at scale. Evaluate dedicated "+
			"compliance platforms before investing further in manual processes that will need replacing.")
	}

	dims := []struct {
		key   string
		score int
	}{
		{"supplyChain", scores.SupplyChain},
		{"productData", scores.ProductData},
		{"regulatory", scores.Regulatory},
		{"infrastructure", scores.Infrastructure},
	}
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].score < dims[j].score })

	for _, dim := range dims {
		if len(actions) >= maxActions {
			break
		}
		action := generalActions[dim.key]
		if !contains(actions, action) {
			actions = append(actions, action)
		}
	}

	if len(actions) > maxActions {
		actions = actions[:maxActions]
	}
	return actions
}

func tablePoints(table map[string]map[string]int, answers model.Answers, questionIDs ...string) int {
	total := 0
	for _, id := range questionIDs {
		total += table[id][answers.Str(id)]
	}
	return total
}

// cappedCount awards perItem points for each selected value that appears in
// the recognised list, capped at ceiling.
func cappedCount(selected, recognised []string, perItem, ceiling int) int {
	count := 0
	for _, v := range selected {
		if contains(recognised, v) {
			count++
		}
	}
	pts := count * perItem
	if pts > ceiling {
		return ceiling
	}
	return pts
}

// clampScore rounds and clamps a dimension total to [0,100]. Contributions
// are non-negative, so only the upper bound needs enforcing.
func clampScore(points int) int {
	if points > 100 {
		return 100
	}
	return points
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
