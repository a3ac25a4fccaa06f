package completion

import "github.com/alexanderramin/caseflow/internal/domain"

// Section is a named group of record fields scored together.
type Section struct {
	Name       string
	Title      string
	Required   bool
	Viewpoints []domain.Viewpoint
	Fields     []string
}

// AppliesTo reports whether the section counts under vp.
func (s Section) AppliesTo(vp domain.Viewpoint) bool {
	for _, v := range s.Viewpoints {
		if v == vp {
			return true
		}
	}
	return false
}

var allViewpoints = []domain.Viewpoint{
	domain.ViewpointSocialWorker,
	domain.ViewpointCareerCounselor,
	domain.ViewpointEmotionalTherapist,
	domain.ViewpointGeneral,
}

var sections = []Section{
	{
		Name:       "personal_info",
		Title:      "Personal information",
		Required:   true,
		Viewpoints: allViewpoints,
		Fields:     []string{"firstName", "lastName", "idNumber", "dateOfBirth", "phone", "email", "address"},
	},
	{
		Name:       "rights_assessment",
		Title:      "Rights assessment",
		Required:   true,
		Viewpoints: []domain.Viewpoint{domain.ViewpointSocialWorker, domain.ViewpointGeneral},
		Fields: []string{
			"employment_status_now", "monthly_income_gross", "marital_status", "num_children", "age",
			"disability_percentage", "housing_status", "has_debts", "is_new_immigrant", "current_benefits",
		},
	},
	{
		Name:       "career_assessment",
		Title:      "Career assessment",
		Required:   true,
		Viewpoints: []domain.Viewpoint{domain.ViewpointCareerCounselor, domain.ViewpointGeneral},
		Fields: []string{
			"current_status", "education_level", "years_experience", "skills",
			"desired_field", "confidence_level", "motivation_level", "barriers",
		},
	},
	{
		Name:       "emotional_assessment",
		Title:      "Emotional assessment",
		Required:   true,
		Viewpoints: []domain.Viewpoint{domain.ViewpointEmotionalTherapist, domain.ViewpointGeneral},
		Fields:     []string{"reason", "mood_rating", "sleep_quality", "has_trauma", "previous_therapy", "therapy_goals"},
	},
	{
		Name:       "case_summary",
		Title:      "Case summary",
		Required:   false,
		Viewpoints: allViewpoints,
		Fields:     []string{"caseSummary", "mainConcerns", "goals"},
	},
}

// Sections returns the scored sections in display order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}
