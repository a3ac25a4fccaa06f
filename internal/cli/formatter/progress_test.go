package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/caseflow/internal/completion"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   int
		width int
		dim   bool
	}{
		{"0% normal", 0, 10, false},
		{"50% normal", 50, 10, false},
		{"100% normal", 100, 10, false},
		{"50% dimmed", 50, 10, true},
		{"over 100% clamps", 150, 10, false},
		{"negative clamps", -5, 10, false},
		{"tiny width clamps to 2", 50, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.pct, tt.width, tt.dim)
			assert.NotEmpty(t, got)
			assert.NotContains(t, got, "[")
			assert.NotContains(t, got, "%")
		})
	}
}

func TestRenderCompactBarBlocks(t *testing.T) {
	bar0 := RenderCompactBar(0, 4, true)
	assert.Equal(t, 4, strings.Count(bar0, emptyBlock))
	assert.NotContains(t, bar0, filledBlock)

	bar100 := RenderCompactBar(100, 4, true)
	assert.Equal(t, 4, strings.Count(bar100, filledBlock))

	half := RenderCompactBar(50, 4, true)
	assert.Equal(t, 2, strings.Count(half, filledBlock))
	assert.Equal(t, 2, strings.Count(half, emptyBlock))
}

func TestRenderProgress_Label(t *testing.T) {
	assert.Contains(t, RenderProgress(45, 10), " 45%")
	assert.Contains(t, RenderProgress(250, 10), "100%")
	assert.Contains(t, RenderProgress(-1, 10), "  0%")
}

func TestPercentStyle_Thresholds(t *testing.T) {
	assert.Equal(t, StyleRed.GetForeground(), PercentStyle(32).GetForeground())
	assert.Equal(t, StyleYellow.GetForeground(), PercentStyle(33).GetForeground())
	assert.Equal(t, StyleGreen.GetForeground(), PercentStyle(66).GetForeground())
}

func TestFormatResult_ListsSectionsInOrder(t *testing.T) {
	r := completion.Result{
		Viewpoint:         domain.ViewpointSocialWorker,
		OverallPercentage: 40,
		SectionOrder:      []string{"personal_info", "rights_assessment"},
		PerSection: map[string]completion.SectionProgress{
			"personal_info":     {Title: "Personal information", Completed: 7, Total: 7, Percentage: 100, Required: true},
			"rights_assessment": {Title: "Rights assessment", Completed: 0, Total: 20, Percentage: 0, Required: true},
		},
	}
	out := FormatResult(r)

	assert.Contains(t, out, "Social worker")
	assert.Contains(t, out, "7/7")
	assert.Contains(t, out, "0/20")
	assert.Less(t, strings.Index(out, "Personal information"), strings.Index(out, "Rights assessment"))
	assert.Contains(t, out, "Required sections incomplete")
}
