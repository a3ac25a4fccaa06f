package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/completion"
	"github.com/alexanderramin/caseflow/internal/contract"
)

const barWidth = 20

// FormatResult renders one viewpoint's completion, section by section.
func FormatResult(r completion.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(ViewpointLabel(r.Viewpoint)), RenderProgress(r.OverallPercentage, barWidth))

	for _, name := range r.SectionOrder {
		s := r.PerSection[name]
		marker := " "
		if s.Required {
			marker = StyleRed.Render("*")
		}
		fmt.Fprintf(&b, "  %s %-24s %s  %s\n",
			marker, s.Title, RenderCompactBar(s.Percentage, 10, false),
			Dim(fmt.Sprintf("%d/%d", s.Completed, s.Total)))
	}

	if r.AllRequiredSectionsComplete {
		b.WriteString("  " + StyleGreen.Render("All required sections complete") + "\n")
	} else {
		b.WriteString("  " + StyleYellow.Render("Required sections incomplete") + "\n")
	}
	return b.String()
}

// FormatProgress renders every result in resp.
func FormatProgress(resp *contract.ProgressResponse) string {
	var b strings.Builder
	b.WriteString(Header("Progress: "+resp.CaseName) + "\n")
	for i, r := range resp.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatResult(r))
	}
	if len(resp.Submitted) > 0 {
		names := make([]string, len(resp.Submitted))
		for i, d := range resp.Submitted {
			names[i] = string(d)
		}
		b.WriteString("\n" + Dim("Submitted: "+strings.Join(names, ", ")) + "\n")
	}
	return b.String()
}

// FormatBoard renders the board as a plain table, for non-interactive use.
func FormatBoard(resp *contract.BoardResponse) string {
	if len(resp.Rows) == 0 {
		return Dim("No open cases.") + "\n"
	}
	rows := make([][]string, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		req := StyleYellow.Render("no")
		if r.RequiredComplete {
			req = StyleGreen.Render("yes")
		}
		rows = append(rows, []string{
			TruncID(r.CaseID),
			r.CaseName,
			RenderProgress(r.OverallPercentage, 12),
			req,
		})
	}
	return Header("Board: "+ViewpointLabel(resp.Viewpoint)) + "\n" +
		RenderTable([]string{"ID", "NAME", "COMPLETION", "REQUIRED"}, rows)
}
