package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"older", now.AddDate(0, 0, -10), "Jan 28, 2026"},
		{"future", now.AddDate(0, 1, 0), "Mar 7, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestamp(tt.input, now))
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Contains(t, FormatValue(domain.None()), "-")
	assert.Contains(t, FormatValue(domain.Text("   ")), "-")
	assert.Equal(t, "Yes", FormatValue(domain.Bool(true)))
	assert.Equal(t, "No", FormatValue(domain.Bool(false)))
	assert.Equal(t, "a, b", FormatValue(domain.List("a", "b")))
	assert.Equal(t, "4500", FormatValue(domain.Number(4500)))
}

func TestViewpointLabel(t *testing.T) {
	assert.Equal(t, "Career counselor", ViewpointLabel(domain.ViewpointCareerCounselor))
	assert.Equal(t, "General", ViewpointLabel(domain.ViewpointGeneral))
}

func TestRenderKeyValues_SkipsEmpty(t *testing.T) {
	out := RenderKeyValues([][2]string{{"Phone", ""}, {"Email", "dana@example.org"}})
	assert.NotContains(t, out, "Phone")
	assert.Contains(t, out, "dana@example.org")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"long cell", "x"}, {"s", "y"}})
	assert.Contains(t, out, "long cell  x")
	assert.Contains(t, out, "s          y")
}

func TestRenderTable_HeaderAndSeparator(t *testing.T) {
	out := RenderTable([]string{"Name", "%"}, [][]string{{"Omer Katz", "80"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name       %", lines[0])
	assert.Equal(t, strings.Repeat("─", 9)+"  "+strings.Repeat("─", 2), lines[1])
	assert.Equal(t, "Omer Katz  80", lines[2])

	assert.Empty(t, RenderTable(nil, nil))
}
