package relevance

// personaCategory describes one reader persona: the substrings that trigger
// it in the persona string, plus tiered keyword lists with fixed weights.
// The tables are static configuration, never mutated at runtime.
type personaCategory struct {
	name     string
	triggers []string
	high     []string
	medium   []string
	low      []string

	highWeight   float64
	mediumWeight float64
	lowWeight    float64
}

// jobCategory describes one job-to-be-done family: trigger substrings in the
// job string and a flat per-keyword bonus.
type jobCategory struct {
	name     string
	triggers []string
	keywords []string
	weight   float64
}

func defaultPersonaCategories() []personaCategory {
	return []personaCategory{
		{
			name:     "phd researcher",
			triggers: []string{"researcher", "phd"},
			high: []string{
				"methodology", "dataset", "benchmark", "performance",
				"algorithm", "evaluation", "experimental", "validation",
				"comparative", "analysis", "research", "study",
				"literature", "hypothesis",
			},
			medium: []string{
				"approach", "framework", "model", "technique", "method",
				"results", "findings", "discussion", "related work",
				"references",
			},
			low: []string{
				"introduction", "background", "overview", "summary",
				"conclusion",
			},
			highWeight: 20, mediumWeight: 10, lowWeight: 5,
		},
		{
			name:     "investment analyst",
			triggers: []string{"analyst", "investment"},
			high: []string{
				"revenue", "financial", "market", "investment", "roi",
				"growth", "profitability", "cash flow", "valuation",
				"risk", "forecast",
			},
			medium: []string{
				"strategy", "performance", "trends", "analysis",
				"competition", "industry", "outlook", "metrics",
			},
			low: []string{
				"overview", "summary", "background", "introduction",
			},
			highWeight: 20, mediumWeight: 10, lowWeight: 5,
		},
		{
			name:     "undergraduate student",
			triggers: []string{"student", "undergraduate"},
			high: []string{
				"concept", "definition", "principle", "theory",
				"mechanism", "example", "application", "practice",
				"exercise", "tutorial",
			},
			medium: []string{
				"overview", "introduction", "summary", "explanation",
				"illustration", "demonstration",
			},
			low: []string{
				"advanced", "research", "detailed analysis", "methodology",
			},
			highWeight: 20, mediumWeight: 10, lowWeight: 5,
		},
		{
			name:     "travel planner",
			triggers: []string{"travel planner"},
			high: []string{
				"itinerary", "destination", "activities", "accommodation",
				"sightseeing", "group travel", "tour", "excursion",
				"schedule", "attractions",
			},
			medium: []string{
				"plan", "route", "budget", "logistics", "recommendations",
				"travel tips",
			},
			low: []string{
				"introduction", "overview", "summary", "background",
			},
			highWeight: 30, mediumWeight: 15, lowWeight: 5,
		},
	}
}

func defaultJobCategories() []jobCategory {
	return []jobCategory{
		{
			name:     "literature review",
			triggers: []string{"literature review"},
			keywords: []string{
				"methodology", "approach", "study", "research",
				"analysis", "literature", "references",
			},
			weight: 20,
		},
		{
			name:     "financial analysis",
			triggers: []string{"revenue", "financial"},
			keywords: []string{
				"revenue", "profit", "income", "financial", "market",
				"investment", "forecast",
			},
			weight: 20,
		},
		{
			name:     "exam preparation",
			triggers: []string{"exam", "study"},
			keywords: []string{
				"concept", "principle", "definition", "example",
				"theory", "tutorial",
			},
			weight: 20,
		},
		{
			name:     "trip planning",
			triggers: []string{"trip", "travel"},
			keywords: []string{
				"itinerary", "destination", "schedule", "accommodation",
				"activities",
			},
			weight: 25,
		},
	}
}
