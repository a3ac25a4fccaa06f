package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/questionnaire"
)

// FormatQuestions renders questions grouped by section. Conditional
// questions show their rule in dim text.
func FormatQuestions(d domain.FormDomain, views []contract.QuestionView) string {
	var b strings.Builder
	b.WriteString(Header(string(d)+" questionnaire") + "\n")

	section := ""
	for _, q := range views {
		if q.Section != section {
			section = q.Section
			b.WriteString("\n" + StyleBlue.Render(SectionTitle(section)) + "\n")
		}
		line := fmt.Sprintf("  %-32s %s", q.Field, q.Label)
		if q.Answered {
			line = StyleGreen.Render("✔") + line[1:] + "  " + Bold(FormatValue(q.Answer))
		}
		b.WriteString(line)
		if q.Condition != "" {
			b.WriteString("  " + Dim("if "+q.Condition))
		}
		if len(q.Options) > 0 && !q.Answered {
			b.WriteString("  " + Dim("["+strings.Join(q.Options, " | ")+"]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatForm renders a questionnaire view with its answered count.
func FormatForm(f *contract.FormView) string {
	var b strings.Builder
	b.WriteString(FormatQuestions(f.Domain, f.Visible))

	status := StyleYellow.Render("in progress")
	if f.Completed {
		status = StyleGreen.Render("submitted")
	}
	fmt.Fprintf(&b, "\n%s answered of %d visible, %d hidden, %s\n",
		Bold(fmt.Sprint(f.AnsweredCount())), len(f.Visible), f.Hidden, status)

	if len(f.Goals) > 0 {
		b.WriteString("\n" + FormatGoals(f.Goals))
	}
	return b.String()
}

// FormatAnswer summarizes the effect of one answer change.
func FormatAnswer(field string, resp *contract.AnswerResponse) string {
	var b strings.Builder
	v := resp.Form.Answers.Get(field)
	if v.IsNone() {
		fmt.Fprintf(&b, "Cleared %s\n", Bold(field))
	} else {
		fmt.Fprintf(&b, "Set %s = %s\n", Bold(field), FormatValue(v))
	}
	for _, f := range resp.Revealed {
		b.WriteString(StyleGreen.Render("  + "+f) + "\n")
	}
	for _, f := range resp.Hidden {
		b.WriteString(StyleDim.Render("  - "+f) + "\n")
	}
	return b.String()
}

func FormatRecommendations(recs []domain.Recommendation) string {
	if len(recs) == 0 {
		return Dim("No recommendations. Submit the rights questionnaire to generate them.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Recommended rights") + "\n")
	for i, r := range recs {
		fmt.Fprintf(&b, "%2d. %s\n    %s\n", i+1, Bold(r.Title), Dim(r.Reason))
	}
	return b.String()
}

func FormatGoals(goals []questionnaire.Goal) string {
	if len(goals) == 0 {
		return Dim("No career goals suggested yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Suggested goals") + "\n")
	for _, g := range goals {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleYellow.Render("→"), g.Action, Dim("("+g.Label+")"))
	}
	return b.String()
}

// SectionTitle turns a snake_case section name into a sentence-case title.
func SectionTitle(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
