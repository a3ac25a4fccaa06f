package questionnaire

import "github.com/alexanderramin/caseflow/internal/domain"

// careerAliases maps Career rule keywords to the field they inspect.
var careerAliases = Aliases{
	"unemployed": "current_status",
}

var careerDefs = []Def{
	// Current situation
	{Section: "current_situation", Field: "current_status", Label: "Current employment situation", Kind: domain.InputSelect,
		Options: []string{"Employed", "Unemployed", "Student", "Career change", "Returning to work"}},
	{Section: "current_situation", Field: "unemployment_duration_months", Label: "Months without work", Kind: domain.InputNumber,
		Rule: "If unemployed"},
	{Section: "current_situation", Field: "reason_for_leaving", Label: "Reason for leaving last job", Kind: domain.InputTextarea,
		Rule: "If unemployed → Explore re-entry barriers"},

	// Skills & experience
	{Section: "skills_experience", Field: "education_level", Label: "Highest education", Kind: domain.InputSelect,
		Options: []string{"None", "High school", "Vocational", "Bachelor", "Master", "Doctorate"}},
	{Section: "skills_experience", Field: "years_experience", Label: "Years of work experience", Kind: domain.InputNumber,
		Annotation: "If <2 → Goal: Gain entry-level experience through an internship or volunteering"},
	{Section: "skills_experience", Field: "field_of_experience", Label: "Main field of experience", Kind: domain.InputText},
	{Section: "skills_experience", Field: "skills", Label: "Key skills", Kind: domain.InputMultiSelect,
		Options: []string{"Communication", "Computer", "Management", "Technical", "Sales", "Customer service", "Languages"}},
	{Section: "skills_experience", Field: "has_cv", Label: "Has an up-to-date CV", Kind: domain.InputYesNo, Options: yesNo},

	// Goals
	{Section: "goals", Field: "desired_field", Label: "Desired field of work", Kind: domain.InputText},
	{Section: "goals", Field: "job_search_hours_weekly", Label: "Hours per week spent job searching", Kind: domain.InputNumber,
		Annotation: "If <5 → Goal: Build a weekly job-search routine"},

	// Confidence & barriers
	{Section: "confidence_barriers", Field: "confidence_level", Label: "Confidence in finding work (1-5)", Kind: domain.InputNumber,
		Annotation: "If <4 → Goal: Strengthen confidence"},
	{Section: "confidence_barriers", Field: "motivation_level", Label: "Motivation level (1-5)", Kind: domain.InputNumber,
		Annotation: "If <3 → Goal: Explore motivation and personal values"},
	{Section: "confidence_barriers", Field: "barriers", Label: "Barriers to employment", Kind: domain.InputMultiSelect,
		Options: []string{"Childcare", "Transportation", "Health", "Language", "Age", "Criminal record", "None"}},
	{Section: "confidence_barriers", Field: "career_notes", Label: "Counselor notes", Kind: domain.InputTextarea},
}
