package service

import "envrt-site/internal/model"

// Questionnaire returns the assessment definition: five sections, q1-q25.
// Served to the client; the scoring tables key off the same question IDs.
func (s *ScoringService) Questionnaire() []model.Section {
	return questionnaire
}

var questionnaire = []model.Section{
	{
		ID:          "business-profile",
		Title:       "Tell us about your brand",
		Description: "This helps us calibrate your regulatory exposure and timeline risk accurately.",
		Questions: []model.Question{
			{
				ID: "q1", Type: model.QuestionTypeSingle,
				Text: "How many new styles do you release per year?",
				Options: []model.QuestionOption{
					{Label: "Under 10", Value: "under10"},
					{Label: "10-25", Value: "10-25"},
					{Label: "26-75", Value: "26-75"},
					{Label: "76-150", Value: "76-150"},
					{Label: "150+", Value: "150+"},
				},
			},
			{
				ID: "q2", Type: model.QuestionTypeMulti,
				Text: "Which markets do you primarily sell into?",
				Hint: "Select all that apply",
				Options: []model.QuestionOption{
					{Label: "United Kingdom", Value: "uk"},
					{Label: "European Union", Value: "eu"},
					{Label: "United States", Value: "us"},
					{Label: "Rest of World", Value: "row"},
				},
			},
			{
				ID: "q3", Type: model.QuestionTypeMulti,
				Text: "What product categories do you sell?",
				Hint: "Select all that apply",
				Options: []model.QuestionOption{
					{Label: "Womenswear", Value: "womenswear"},
					{Label: "Menswear", Value: "menswear"},
					{Label: "Childrenswear", Value: "childrenswear"},
					{Label: "Footwear", Value: "footwear"},
					{Label: "Accessories", Value: "accessories"},
					{Label: "Homeware", Value: "homeware"},
					{Label: "Activewear", Value: "activewear"},
				},
			},
			{
				ID: "q4", Type: model.QuestionTypeSingle,
				Text: "What size best describes your brand?",
				Options: []model.QuestionOption{
					{Label: "Startup or emerging", Value: "under250k"},
					{Label: "Small (under 20 employees)", Value: "250k-1m"},
					{Label: "Growing (20-50 employees)", Value: "1m-5m"},
					{Label: "Established (50-200 employees)", Value: "5m-20m"},
					{Label: "Enterprise (200+)", Value: "20m+"},
				},
			},
			{
				ID: "q5", Type: model.QuestionTypeSingle,
				Text: "How would you describe your current sustainability position?",
				Options: []model.QuestionOption{
					{Label: "Just getting started", Value: "starting"},
					{Label: "We have some initiatives but no formal strategy", Value: "some-initiatives"},
					{Label: "We have a sustainability strategy but lack data infrastructure", Value: "strategy-no-data"},
					{Label: "We are actively reporting on sustainability metrics", Value: "actively-reporting"},
				},
			},
		},
	},
	{
		ID:          "supply-chain",
		Title:       "Supply chain traceability",
		Description: "DPPs require verified data at every stage of production. This is where most brands fall short.",
		Questions: []model.Question{
			{
				ID: "q6", Type: model.QuestionTypeSingle,
				Text: "How many tiers of your supply chain can you currently trace?",
				Options: []model.QuestionOption{
					{Label: "We know our direct manufacturer only (Tier 1)", Value: "tier1"},
					{Label: "We know Tier 1 and fabric suppliers (Tier 2)", Value: "tier1-2"},
					{Label: "We can trace to raw material sources (Tier 3+)", Value: "tier3+"},
					{Label: "We have no formal supply chain mapping", Value: "none"},
				},
			},
			{
				ID: "q7", Type: model.QuestionTypeSingle,
				Text: "Do you have material composition data at fibre level for your products?",
				Options: []model.QuestionOption{
					{Label: "Yes, for all products", Value: "all"},
					{Label: "Yes, for some products", Value: "some"},
					{Label: "No, but we could obtain it", Value: "could-obtain"},
					{Label: "No, and it would be difficult to obtain", Value: "difficult"},
				},
			},
			{
				ID: "q8", Type: model.QuestionTypeSingle,
				Text: "Do you know the country of origin for each stage of your production process?",
				Options: []model.QuestionOption{
					{Label: "Yes, for all stages", Value: "all"},
					{Label: "Yes, for most stages", Value: "most"},
					{Label: "Only for final manufacturing", Value: "final-only"},
					{Label: "No", Value: "no"},
				},
			},
			{
				ID: "q9", Type: model.QuestionTypeMulti,
				Text: "How many of your key suppliers hold recognised certifications?",
				Hint: "Select all that apply",
				Options: []model.QuestionOption{
					{Label: "GOTS (Global Organic Textile Standard)", Value: "gots"},
					{Label: "GRS (Global Recycled Standard)", Value: "grs"},
					{Label: "Oeko-Tex", Value: "oeko-tex"},
					{Label: "BSCI or SMETA audit", Value: "bsci-smeta"},
					{Label: "Bluesign", Value: "bluesign"},
					{Label: "None of the above", Value: "none"},
					{Label: "I don’t know", Value: "dont-know"},
				},
			},
			{
				ID: "q10", Type: model.QuestionTypeSingle,
				Text: "Do you have documented supplier agreements that include data-sharing obligations?",
				Options: []model.QuestionOption{
					{Label: "Yes, formal agreements with all key suppliers", Value: "formal-all"},
					{Label: "Informal agreements with most", Value: "informal-most"},
					{Label: "Ad hoc - varies by supplier", Value: "ad-hoc"},
					{Label: "No formal agreements", Value: "none"},
				},
			},
		},
	},
	{
		ID:          "product-data",
		Title:       "Product data completeness",
		Description: "A DPP requires specific product-level data. Most brands don’t yet collect this systematically.",
		Questions: []model.Question{
			{
				ID: "q11", Type: model.QuestionTypeSingle,
				Text: "Do you currently record the weight per garment for your products?",
				Options: []model.QuestionOption{
					{Label: "Yes, for all products", Value: "all"},
					{Label: "Yes, for most", Value: "most"},
					{Label: "Only for some", Value: "some"},
					{Label: "No", Value: "no"},
				},
			},
			{
				ID: "q12", Type: model.QuestionTypeSingle,
				Text: "Do you hold structured care and composition labelling data in a central system?",
				Options: []model.QuestionOption{
					{Label: "Yes, in a dedicated system", Value: "dedicated"},
					{Label: "Yes, in spreadsheets", Value: "spreadsheets"},
					{Label: "It exists but is scattered across documents", Value: "scattered"},
					{Label: "No central record", Value: "none"},
				},
			},
			{
				ID: "q13", Type: model.QuestionTypeSingle,
				Text: "Do you have any existing lifecycle assessment (LCA) data or carbon footprint calculations for your products?",
				Options: []model.QuestionOption{
					{Label: "Yes, verified third-party LCA data", Value: "verified"},
					{Label: "Yes, self-calculated estimates", Value: "self-calc"},
					{Label: "We’ve done some research but have no formal data", Value: "some-research"},
					{Label: "No", Value: "none"},
				},
			},
			{
				ID: "q14", Type: model.QuestionTypeSingle,
				Text: "Have you ever generated anything resembling a Digital Product Passport or sustainability data sheet for a product?",
				Options: []model.QuestionOption{
					{Label: "Yes, we produce these already", Value: "already"},
					{Label: "We’ve done a pilot for one or two products", Value: "pilot"},
					{Label: "We’ve explored it but not produced anything", Value: "explored"},
					{Label: "No, this would be new to us", Value: "new"},
				},
			},
			{
				ID: "q15", Type: model.QuestionTypeSingle,
				Text: "Do you currently provide end-of-life guidance (repair, resale, recycling instructions) on your products?",
				Options: []model.QuestionOption{
					{Label: "Yes, prominently", Value: "prominently"},
					{Label: "Yes, but minimally", Value: "minimally"},
					{Label: "We plan to but haven’t yet", Value: "planned"},
					{Label: "No", Value: "no"},
				},
			},
		},
	},
	{
		ID:          "regulatory-awareness",
		Title:       "Compliance knowledge",
		Description: "Understanding which regulations apply to you, and when, is the foundation of any compliance strategy.",
		Questions: []model.Question{
			{
				ID: "q16", Type: model.QuestionTypeMulti,
				Text: "Which of the following regulations are you aware of?",
				Hint: "Select all that apply",
				Options: []model.QuestionOption{
					{Label: "EU ESPR (Ecodesign for Sustainable Products Regulation)", Value: "espr"},
					{Label: "EU Green Claims Directive", Value: "green-claims"},
					{Label: "UK DMCCA (Digital Markets, Competition and Consumers Act sustainability provisions)", Value: "dmcca"},
					{Label: "EU Textile Labelling Regulation updates", Value: "textile-labelling"},
					{Label: "None of the above", Value: "none"},
				},
			},
			{
				ID: "q17", Type: model.QuestionTypeSingle,
				Text: "Do you know which ESPR product category deadlines apply to your products?",
				Options: []model.QuestionOption{
					{Label: "Yes, I know our specific deadlines", Value: "know-specifics"},
					{Label: "I have a general sense but not specifics", Value: "general-sense"},
					{Label: "I’ve heard about ESPR but don’t know our deadlines", Value: "heard"},
					{Label: "No awareness of deadlines", Value: "no-awareness"},
				},
			},
			{
				ID: "q18", Type: model.QuestionTypeSingle,
				Text: "Have you received formal guidance on DPP compliance from a trade body, consultant or legal advisor?",
				Options: []model.QuestionOption{
					{Label: "Yes, we have active legal/consultant support", Value: "active-support"},
					{Label: "We’ve had informal conversations", Value: "informal"},
					{Label: "We’ve read about it independently", Value: "independent"},
					{Label: "No guidance received", Value: "none"},
				},
			},
			{
				ID: "q19", Type: model.QuestionTypeSingle,
				Text: "Has your brand made any public sustainability claims (e.g. “sustainable”, “eco-friendly”, “carbon neutral”) in marketing?",
				Options: []model.QuestionOption{
					{Label: "Yes, regularly", Value: "regularly"},
					{Label: "Yes, occasionally", Value: "occasionally"},
					{Label: "We avoid making such claims", Value: "avoid"},
					{Label: "No", Value: "no"},
				},
			},
			{
				ID: "q20", Type: model.QuestionTypeSingle,
				Text: "Have you reviewed your marketing materials against upcoming green claims legislation?",
				Options: []model.QuestionOption{
					{Label: "Yes, we have fully reviewed and updated our claims", Value: "reviewed"},
					{Label: "We have started reviewing", Value: "concerned"},
					{Label: "It is on our to-do list", Value: "heard"},
					{Label: "Not yet", Value: "new"},
				},
			},
		},
	},
	{
		ID:          "infrastructure",
		Title:       "Your current infrastructure",
		Description: "The tools and processes you currently use determine how quickly you can become compliant.",
		Questions: []model.Question{
			{
				ID: "q21", Type: model.QuestionTypeSingle,
				Text: "How do you currently manage product data?",
				Options: []model.QuestionOption{
					{Label: "Dedicated PLM or PDM system", Value: "plm"},
					{Label: "ERP with product data module", Value: "erp"},
					{Label: "Spreadsheets (Excel or Google Sheets)", Value: "spreadsheets"},
					{Label: "A mix of spreadsheets and shared documents", Value: "mixed"},
					{Label: "No structured system", Value: "none"},
				},
			},
			{
				ID: "q22", Type: model.QuestionTypeSingle,
				Text: "How do you currently manage sustainability or compliance data?",
				Options: []model.QuestionOption{
					{Label: "Dedicated sustainability platform", Value: "dedicated"},
					{Label: "Manual tracking in spreadsheets", Value: "spreadsheets"},
					{Label: "We don’t track this formally", Value: "informal"},
					{Label: "We outsource this to a consultant", Value: "outsourced"},
				},
			},
			{
				ID: "q23", Type: model.QuestionTypeSingle,
				Text: "How many people in your organisation are responsible for sustainability or compliance?",
				Options: []model.QuestionOption{
					{Label: "Dedicated full-time role(s)", Value: "dedicated"},
					{Label: "Part of someone’s wider role", Value: "part-role"},
					{Label: "The founder handles it", Value: "founder"},
					{Label: "Nobody currently owns this", Value: "nobody"},
				},
			},
			{
				ID: "q24", Type: model.QuestionTypeSingle,
				Text: "What is your anticipated timeline for needing to be DPP-compliant?",
				Options: []model.QuestionOption{
					{Label: "We need to be compliant within 12 months", Value: "under-12"},
					{Label: "12-24 months", Value: "12-24"},
					{Label: "24-36 months", Value: "24-36"},
					{Label: "We’re not sure", Value: "not-sure"},
					{Label: "We don’t think it applies to us", Value: "not-applicable"},
				},
			},
			{
				ID: "q25", Type: model.QuestionTypeMulti, MaxSelect: 2,
				Text: "What is your primary barrier to DPP readiness right now?",
				Hint: "Select up to two",
				Options: []model.QuestionOption{
					{Label: "We don’t know where to start", Value: "dont-know-start"},
					{Label: "We lack supplier data", Value: "lack-supplier-data"},
					{Label: "We don’t have internal resource", Value: "lack-resource"},
					{Label: "Cost concerns", Value: "cost"},
					{Label: "We didn’t know this was required", Value: "unaware"},
					{Label: "We’re waiting for clearer regulatory guidance", Value: "waiting-guidance"},
				},
			},
		},
	},
}
