package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PercentStyle colors a completion percentage: red below a third, yellow
// below two thirds, green otherwise.
func PercentStyle(pct int) lipgloss.Style {
	switch {
	case pct < 33:
		return StyleRed
	case pct < 66:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// StatusPill returns a colored indicator for a case status.
func StatusPill(status domain.CaseStatus) string {
	switch status {
	case domain.CaseActive:
		return StyleGreen.Render("● Active")
	case domain.CaseClosed:
		return StyleYellow.Render("○ Closed")
	case domain.CaseArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// DomainBadge returns a capitalized, purple label for a questionnaire.
func DomainBadge(d domain.FormDomain) string {
	if d == "" {
		return StyleDim.Render("--")
	}
	s := string(d)
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// ViewpointLabel turns social_worker into "Social worker".
func ViewpointLabel(vp domain.Viewpoint) string {
	return SectionTitle(string(vp))
}
