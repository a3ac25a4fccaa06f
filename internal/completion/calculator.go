// Package completion scores how much of a merged case record has been
// filled in, from the perspective of a particular professional role.
package completion

import (
	"fmt"
	"math"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// SectionProgress is the score of one applicable section.
type SectionProgress struct {
	Title      string `json:"title"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Required   bool   `json:"required"`
}

// Result is the completion of a record under one viewpoint.
type Result struct {
	Viewpoint                   domain.Viewpoint           `json:"viewpoint"`
	OverallPercentage           int                        `json:"overall_percentage"`
	PerSection                  map[string]SectionProgress `json:"per_section"`
	SectionOrder                []string                   `json:"section_order"`
	AllRequiredSectionsComplete bool                       `json:"all_required_sections_complete"`
	TotalFields                 int                        `json:"total_fields"`
	CompletedFields             int                        `json:"completed_fields"`
}

// Calculate scores record under vp. An unknown viewpoint is a caller bug
// and panics; parse user input with domain.ParseViewpoint first.
func Calculate(record domain.AnswerSet, vp domain.Viewpoint) Result {
	if !vp.Valid() {
		panic(fmt.Sprintf("completion: unknown viewpoint %q", string(vp)))
	}
	return calculate(sections, record, vp)
}

// CalculateAll runs Calculate once per known viewpoint.
func CalculateAll(record domain.AnswerSet) map[domain.Viewpoint]Result {
	out := make(map[domain.Viewpoint]Result, len(domain.Viewpoints))
	for _, vp := range domain.Viewpoints {
		out[vp] = Calculate(record, vp)
	}
	return out
}

func calculate(secs []Section, record domain.AnswerSet, vp domain.Viewpoint) Result {
	res := Result{
		Viewpoint:                   vp,
		PerSection:                  make(map[string]SectionProgress),
		AllRequiredSectionsComplete: true,
	}

	counted := map[string]bool{}
	for _, s := range secs {
		if !s.AppliesTo(vp) {
			continue
		}
		done := 0
		for _, f := range s.Fields {
			filled := record.Get(f).Filled()
			if filled {
				done++
			}
			if !counted[f] {
				counted[f] = true
				res.TotalFields++
				if filled {
					res.CompletedFields++
				}
			}
		}

		p := SectionProgress{
			Title:      s.Title,
			Completed:  done,
			Total:      len(s.Fields),
			Percentage: percent(done, len(s.Fields)),
			Required:   s.Required,
		}
		res.PerSection[s.Name] = p
		res.SectionOrder = append(res.SectionOrder, s.Name)
		if s.Required && p.Percentage < 100 {
			res.AllRequiredSectionsComplete = false
		}
	}

	res.OverallPercentage = percent(res.CompletedFields, res.TotalFields)
	return res
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
