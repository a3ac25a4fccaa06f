package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampPercent(pct int) int {
	return min(max(pct, 0), 100)
}

func bar(pct, width int) (string, string) {
	width = max(width, 2)
	filled := clampPercent(pct) * width / 100
	return strings.Repeat(filledBlock, filled), strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a bar like [████░░░░]  45% for a 0-100 percentage,
// colored by PercentStyle.
func RenderProgress(pct, width int) string {
	full, empty := bar(pct, width)
	return fmt.Sprintf("[%s] %3d%%", PercentStyle(clampPercent(pct)).Render(full+empty), clampPercent(pct))
}

// RenderCompactBar renders the bar alone, without brackets or label. A dim
// bar ignores the percentage color.
func RenderCompactBar(pct, width int, dim bool) string {
	full, empty := bar(pct, width)
	if dim {
		return StyleDim.Render(full + empty)
	}
	return PercentStyle(clampPercent(pct)).Render(full) + StyleDim.Render(empty)
}
