package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// FormatCaseList renders the case table used by `case list`.
func FormatCaseList(cases []*domain.Case, now time.Time) string {
	if len(cases) == 0 {
		return Dim("No cases found.") + "\n"
	}
	rows := make([][]string, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.FullName()),
			StatusPill(c.Status),
			HumanTimestamp(c.UpdatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "NAME", "STATUS", "UPDATED"}, rows)
}

// FormatCaseDetail renders the identity and summary of one case.
func FormatCaseDetail(c *domain.Case) string {
	var b strings.Builder
	b.WriteString(Header(c.FullName()) + "\n")

	dob := ""
	if c.DateOfBirth != nil {
		dob = c.DateOfBirth.Format("2006-01-02")
	}
	b.WriteString(RenderKeyValues([][2]string{
		{"ID", c.ID},
		{"Status", StatusPill(c.Status)},
		{"ID number", c.IDNumber},
		{"Born", dob},
		{"Phone", c.Phone},
		{"Email", c.Email},
		{"Address", c.Address},
		{"Opened", c.CreatedAt.Format("2006-01-02 15:04")},
	}))

	for _, block := range []struct{ title, text string }{
		{"Summary", c.CaseSummary},
		{"Main concerns", c.MainConcerns},
		{"Goals", c.Goals},
	} {
		if block.text == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", StyleBlue.Render(block.title), block.text)
	}
	return b.String()
}
