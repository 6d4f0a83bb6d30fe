package formatter

import (
	"fmt"
	"strings"

	"github.com/harmonialabs/harmonia/internal/contract"
)

// FormatCriticalDays formats detected critical days with their factors and
// suggested actions.
func FormatCriticalDays(days []contract.CriticalDay) string {
	if len(days) == 0 {
		return RenderBox("Critical Days", StyleGreen.Render("No critical days detected.")+"\n")
	}

	var b strings.Builder
	for i, d := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			Bold(d.Date),
			SeverityBadge(d.Severity),
			Dim(fmt.Sprintf("%d appointments, %s", d.EventCount, FormatHours(d.TotalHours)))))
		for _, f := range d.Factors {
			b.WriteString("  " + StyleYellow.Render(f) + "\n")
		}
		if len(d.SuggestedActions) > 0 {
			b.WriteString(indent(BulletList(d.SuggestedActions), "  ") + "\n")
		}
	}

	return RenderBox("Critical Days", b.String())
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
