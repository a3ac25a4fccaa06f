// Package eligibility runs the fixed Rights battery that turns a submitted
// Rights answer set into benefit recommendations.
package eligibility

import (
	"regexp"
	"strconv"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// Rule is one independent predicate of the battery.
type Rule struct {
	ID     string
	Title  string
	Reason string
	Match  func(domain.AnswerSet) bool
}

const (
	incomeSupportCeiling  = 5000
	rentAssistanceCeiling = 7000
	daycareMaxAge         = 3
	disabilityThreshold   = 40
	pensionAge            = 67
)

var singleParentStatuses = []string{"Single", "Divorced", "Widowed", "Separated"}

// battery order is output order.
var battery = []Rule{
	{
		ID:     "unemployment_benefits",
		Title:  "Unemployment benefits",
		Reason: "Currently unemployed",
		Match:  equals("employment_status_now", "Unemployed"),
	},
	{
		ID:     "income_support",
		Title:  "Income support",
		Reason: "Household income below the income support ceiling",
		Match:  below("monthly_income_gross", incomeSupportCeiling),
	},
	{
		ID:     "daycare_subsidy",
		Title:  "Daycare subsidy",
		Reason: "Has a child under the age of 3",
		Match:  anyIntBelow("children_ages", daycareMaxAge),
	},
	{
		ID:     "single_parent_allowance",
		Title:  "Single parent allowance",
		Reason: "Raising children without a partner",
		Match: all(
			equals("marital_status", singleParentStatuses...),
			above("num_children", 0),
		),
	},
	{
		ID:     "disability_allowance",
		Title:  "Disability allowance",
		Reason: "Recognised disability of 40% or more",
		Match:  atLeast("disability_percentage", disabilityThreshold),
	},
	{
		ID:     "rent_assistance",
		Title:  "Rent assistance",
		Reason: "Renting on a low household income",
		Match: all(
			equals("housing_status", "Renting"),
			below("monthly_income_gross", rentAssistanceCeiling),
		),
	},
	{
		ID:     "public_housing",
		Title:  "Public housing",
		Reason: "Currently without stable housing",
		Match:  equals("housing_status", "Homeless"),
	},
	{
		ID:     "debt_counseling",
		Title:  "Debt counseling",
		Reason: "Has outstanding debts",
		Match:  equals("has_debts", "Yes"),
	},
	{
		ID:     "immigrant_absorption",
		Title:  "Immigrant absorption basket",
		Reason: "Recently immigrated",
		Match:  equals("is_new_immigrant", "Yes"),
	},
	{
		ID:     "old_age_pension",
		Title:  "Old-age pension",
		Reason: "Reached pension age",
		Match:  atLeast("age", pensionAge),
	},
	{
		ID:     "caregiver_support",
		Title:  "Caregiver support",
		Reason: "Caring for a dependent family member",
		Match:  equals("is_caregiver", "Yes"),
	},
	{
		ID:     "maternity_benefits",
		Title:  "Maternity benefits",
		Reason: "Pregnant or expecting a child",
		Match:  equals("is_pregnant", "Yes"),
	},
}

// Rules returns the battery in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(battery))
	copy(out, battery)
	return out
}

// Evaluate runs every rule against answers and returns the recommendations
// that fire, in battery order. It never returns nil.
func Evaluate(answers domain.AnswerSet) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(battery))
	for _, r := range battery {
		if r.Match(answers) {
			recs = append(recs, domain.Recommendation{ID: r.ID, Title: r.Title, Reason: r.Reason})
		}
	}
	return recs
}

func equals(field string, values ...string) func(domain.AnswerSet) bool {
	return func(a domain.AnswerSet) bool {
		v := a.Get(field)
		for _, want := range values {
			if v.Contains(want) {
				return true
			}
		}
		return false
	}
}

func threshold(field string, cmp func(float64) bool) func(domain.AnswerSet) bool {
	return func(a domain.AnswerSet) bool {
		n, ok := a.Get(field).Float()
		return ok && cmp(n)
	}
}

func below(field string, limit float64) func(domain.AnswerSet) bool {
	return threshold(field, func(n float64) bool { return n < limit })
}

func above(field string, limit float64) func(domain.AnswerSet) bool {
	return threshold(field, func(n float64) bool { return n > limit })
}

func atLeast(field string, limit float64) func(domain.AnswerSet) bool {
	return threshold(field, func(n float64) bool { return n >= limit })
}

func all(preds ...func(domain.AnswerSet) bool) func(domain.AnswerSet) bool {
	return func(a domain.AnswerSet) bool {
		for _, p := range preds {
			if !p(a) {
				return false
			}
		}
		return true
	}
}

var intPattern = regexp.MustCompile(`\d+`)

// parseInts pulls every run of digits out of free text such as
// "2, 5 and 11".
func parseInts(s string) []int {
	var out []int
	for _, m := range intPattern.FindAllString(s, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func anyIntBelow(field string, limit int) func(domain.AnswerSet) bool {
	return func(a domain.AnswerSet) bool {
		v := a.Get(field)
		if v.IsNone() {
			return false
		}
		for _, n := range parseInts(v.String()) {
			if n < limit {
				return true
			}
		}
		return false
	}
}
