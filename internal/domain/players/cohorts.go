package players

import "sort"

// overAgeYears is the number of most-senior cohorts classified as over-age
// (fuori quota) by league rules.
const overAgeYears = 2

// CohortRules classifies birth years against the set of cohorts the league
// admits. The two most senior admitted years count as over-age.
type CohortRules struct {
	years   []string
	overAge map[string]bool
}

// NewCohortRules builds classification rules from the admitted birth years.
func NewCohortRules(years []string) CohortRules {
	sorted := make([]string, len(years))
	copy(sorted, years)
	sort.Strings(sorted)

	over := make(map[string]bool, overAgeYears)
	for i := 0; i < len(sorted) && i < overAgeYears; i++ {
		over[sorted[i]] = true
	}
	return CohortRules{years: sorted, overAge: over}
}

// Recognized reports whether the birth year is admitted at all.
func (c CohortRules) Recognized(year string) bool {
	for _, y := range c.years {
		if y == year {
			return true
		}
	}
	return false
}

// OverAge reports whether the birth year falls in the over-age cohorts.
func (c CohortRules) OverAge(year string) bool {
	return c.overAge[year]
}

// Years returns the admitted birth years, most senior first.
func (c CohortRules) Years() []string {
	out := make([]string, len(c.years))
	copy(out, c.years)
	return out
}
