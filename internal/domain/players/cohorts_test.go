package players

import "testing"

func TestCohortRulesMarksTwoMostSeniorAsOverAge(t *testing.T) {
	rules := NewCohortRules([]string{"2010", "2008", "2006", "2009", "2007"})

	for _, year := range []string{"2006", "2007"} {
		if !rules.OverAge(year) {
			t.Fatalf("expected %s to be over-age", year)
		}
	}
	for _, year := range []string{"2008", "2009", "2010"} {
		if rules.OverAge(year) {
			t.Fatalf("expected %s to be in quota", year)
		}
	}
}

func TestCohortRulesRecognized(t *testing.T) {
	rules := NewCohortRules([]string{"2006", "2007", "2008"})

	if !rules.Recognized("2008") {
		t.Fatalf("expected 2008 to be admitted")
	}
	if rules.Recognized("2005") || rules.Recognized("") {
		t.Fatalf("expected unlisted years to be rejected")
	}
}

func TestCohortRulesYearsSortedSeniorFirst(t *testing.T) {
	rules := NewCohortRules([]string{"2008", "2006", "2007"})

	years := rules.Years()
	want := []string{"2006", "2007", "2008"}
	for i, y := range want {
		if years[i] != y {
			t.Fatalf("years[%d] = %s, want %s", i, years[i], y)
		}
	}
}
