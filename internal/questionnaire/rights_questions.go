package questionnaire

import "github.com/alexanderramin/caseflow/internal/domain"

var yesNo = []string{"Yes", "No"}

var rightsDefs = []Def{
	// Employment & Income
	{Section: "employment_income", Field: "employment_status_now", Label: "Current employment status", Kind: domain.InputSelect,
		Options: []string{"Employed", "Unemployed", "Self-employed", "Student", "Retired", "Unable to work"}},
	{Section: "employment_income", Field: "employer_name", Label: "Employer name", Kind: domain.InputText},
	{Section: "employment_income", Field: "monthly_income_gross", Label: "Gross monthly household income (₪)", Kind: domain.InputNumber},
	{Section: "employment_income", Field: "income_sources", Label: "Sources of income", Kind: domain.InputMultiSelect,
		Options: []string{"Salary", "Pension", "National Insurance", "Alimony", "Family support", "None"}},

	// Family
	{Section: "family", Field: "marital_status", Label: "Marital status", Kind: domain.InputSelect,
		Options: []string{"Single", "Married", "Divorced", "Widowed", "Separated"}},
	{Section: "family", Field: "num_children", Label: "Number of children under 18", Kind: domain.InputNumber},
	{Section: "family", Field: "children_ages", Label: "Children's ages (comma-separated)", Kind: domain.InputText},
	{Section: "family", Field: "is_pregnant", Label: "Pregnant or expecting a child", Kind: domain.InputYesNo, Options: yesNo},
	{Section: "family", Field: "is_caregiver", Label: "Caring for a dependent family member", Kind: domain.InputYesNo, Options: yesNo},

	// Health & Disability
	{Section: "health", Field: "age", Label: "Age", Kind: domain.InputNumber},
	{Section: "health", Field: "disability_percentage", Label: "Recognised disability percentage", Kind: domain.InputNumber},
	{Section: "health", Field: "chronic_conditions", Label: "Chronic conditions", Kind: domain.InputTextarea},

	// Housing
	{Section: "housing", Field: "housing_status", Label: "Housing situation", Kind: domain.InputSelect,
		Options: []string{"Owner", "Renting", "Public housing", "Living with family", "Homeless"}},
	{Section: "housing", Field: "monthly_rent", Label: "Monthly rent (₪)", Kind: domain.InputNumber},

	// Finances & Status
	{Section: "finances", Field: "has_debts", Label: "Outstanding debts", Kind: domain.InputYesNo, Options: yesNo},
	{Section: "finances", Field: "debt_details", Label: "Debt details", Kind: domain.InputTextarea},
	{Section: "finances", Field: "is_new_immigrant", Label: "Immigrated within the last 10 years", Kind: domain.InputYesNo, Options: yesNo},
	{Section: "finances", Field: "years_in_country", Label: "Years in the country", Kind: domain.InputNumber},
	{Section: "finances", Field: "current_benefits", Label: "Benefits currently received", Kind: domain.InputMultiSelect,
		Options: []string{"Unemployment", "Income support", "Disability", "Child allowance", "Old-age pension", "Rent assistance", "None"}},
	{Section: "finances", Field: "additional_notes", Label: "Additional notes", Kind: domain.InputTextarea},
}
