package questionnaire

import "github.com/alexanderramin/caseflow/internal/domain"

var lowerYesNo = []string{"yes", "no"}

var emotionalDefs = []Def{
	// Referral
	{Section: "referral", Field: "reason", Label: "Reasons for seeking support", Kind: domain.InputMultiSelect,
		Options: []string{"Anxiety", "Depression", "Loneliness", "Lack of support", "Grief", "Trauma", "Family conflict", "Stress"}},
	{Section: "referral", Field: "reason_details", Label: "Describe what brought you here", Kind: domain.InputTextarea,
		Rule: "reason=*"},
	{Section: "referral", Field: "loneliness_frequency", Label: "How often do you feel alone?", Kind: domain.InputSelect,
		Options: []string{"Rarely", "Sometimes", "Often", "Always"}, Rule: "reason=Loneliness,Lack of support"},
	{Section: "referral", Field: "support_network", Label: "Who can you turn to?", Kind: domain.InputMultiSelect,
		Options: []string{"Family", "Friends", "Community", "Religious community", "None"}, Rule: "reason=Loneliness,Lack of support"},
	{Section: "referral", Field: "grief_loss_description", Label: "Tell us about the loss", Kind: domain.InputTextarea,
		Rule: "reason=Grief"},

	// Current state
	{Section: "current_state", Field: "mood_rating", Label: "Overall mood this week (1-10)", Kind: domain.InputNumber},
	{Section: "current_state", Field: "sleep_quality", Label: "Sleep quality", Kind: domain.InputSelect,
		Options: []string{"Good", "Fair", "Poor"}},
	{Section: "current_state", Field: "self_harm_thoughts", Label: "Thoughts of self-harm", Kind: domain.InputSelect,
		Options: []string{"Never", "In the past", "Currently"}},
	{Section: "current_state", Field: "safety_plan", Label: "Safety plan", Kind: domain.InputTextarea,
		Rule: "self_harm_thoughts=In the past,Currently"},

	// History
	{Section: "history", Field: "has_trauma", Label: "Experienced a traumatic event", Kind: domain.InputYesNo, Options: lowerYesNo},
	{Section: "history", Field: "trauma_description", Label: "Describe the event, as much as you are comfortable", Kind: domain.InputTextarea,
		Rule: "has_trauma=yes"},
	{Section: "history", Field: "trauma_prior_treatment", Label: "Received treatment for it before", Kind: domain.InputYesNo,
		Options: lowerYesNo, Rule: "has_trauma=yes"},
	{Section: "history", Field: "previous_therapy", Label: "Been in therapy before", Kind: domain.InputYesNo, Options: lowerYesNo},
	{Section: "history", Field: "previous_therapy_details", Label: "Previous therapy details", Kind: domain.InputTextarea,
		Rule: "previous_therapy=yes"},
	{Section: "history", Field: "takes_medication", Label: "Currently taking psychiatric medication", Kind: domain.InputYesNo, Options: lowerYesNo},
	{Section: "history", Field: "medication_details", Label: "Medication and dosage", Kind: domain.InputText,
		Rule: "takes_medication=yes"},

	// Support
	{Section: "support", Field: "therapy_goals", Label: "What would you like to achieve?", Kind: domain.InputTextarea},
}
