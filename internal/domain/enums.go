package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownDomain    = errors.New("unknown form domain")
	ErrUnknownViewpoint = errors.New("unknown viewpoint")
)

// FormDomain identifies one of the three independent intake questionnaires.
type FormDomain string

const (
	DomainRights    FormDomain = "rights"
	DomainCareer    FormDomain = "career"
	DomainEmotional FormDomain = "emotional"
)

// FormDomains lists the questionnaires in display order.
var FormDomains = []FormDomain{DomainRights, DomainCareer, DomainEmotional}

// ParseFormDomain accepts the canonical name case-insensitively.
func ParseFormDomain(s string) (FormDomain, error) {
	d := FormDomain(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range FormDomains {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want rights, career or emotional)", ErrUnknownDomain, s)
}

// Viewpoint is the role-based lens used to select which sections count
// toward completion.
type Viewpoint string

const (
	ViewpointSocialWorker       Viewpoint = "social_worker"
	ViewpointCareerCounselor    Viewpoint = "career_counselor"
	ViewpointEmotionalTherapist Viewpoint = "emotional_therapist"
	ViewpointGeneral            Viewpoint = "general"
)

// Viewpoints is the canonical set of known viewpoints, in display order.
var Viewpoints = []Viewpoint{
	ViewpointSocialWorker,
	ViewpointCareerCounselor,
	ViewpointEmotionalTherapist,
	ViewpointGeneral,
}

// Valid reports whether v is one of the known viewpoints.
func (v Viewpoint) Valid() bool {
	for _, known := range Viewpoints {
		if v == known {
			return true
		}
	}
	return false
}

// ParseViewpoint accepts the canonical name, case-insensitively, with
// dashes allowed in place of underscores.
func ParseViewpoint(s string) (Viewpoint, error) {
	v := Viewpoint(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownViewpoint, s)
	}
	return v, nil
}

type CaseStatus string

const (
	CaseActive   CaseStatus = "active"
	CaseClosed   CaseStatus = "closed"
	CaseArchived CaseStatus = "archived"
)

// CaseStatuses lists the lifecycle states a case can be in.
var CaseStatuses = []CaseStatus{CaseActive, CaseClosed, CaseArchived}

func (s CaseStatus) Valid() bool {
	for _, known := range CaseStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// InputKind is the declared input widget of a question. It is advisory:
// answers are never validated against it.
type InputKind string

const (
	InputText        InputKind = "text"
	InputTextarea    InputKind = "textarea"
	InputNumber      InputKind = "number"
	InputDate        InputKind = "date"
	InputSelect      InputKind = "select"
	InputMultiSelect InputKind = "multiselect"
	InputYesNo       InputKind = "yesno"
)

// Enumerable reports whether the kind presents a fixed option list.
func (k InputKind) Enumerable() bool {
	return k == InputSelect || k == InputMultiSelect || k == InputYesNo
}
