package formatter

import (
	"fmt"
	"strings"

	"github.com/harmonialabs/harmonia/internal/contract"
)

// FormatBlockSuggestions formats time-block suggestions grouped by urgency.
func FormatBlockSuggestions(set *contract.BlockSuggestionSet) string {
	total := len(set.Immediate) + len(set.Planned) + len(set.Preventive) + len(set.Recovery)
	if total == 0 {
		return RenderBox("Block Suggestions", StyleGreen.Render("No blocks needed right now.")+"\n")
	}

	var b strings.Builder
	writeGroup(&b, StyleRed.Render("IMMEDIATE"), set.Immediate)
	writeGroup(&b, StyleYellow.Render("PLANNED"), set.Planned)
	writeGroup(&b, StyleBlue.Render("PREVENTIVE"), set.Preventive)
	writeGroup(&b, StylePurple.Render("RECOVERY"), set.Recovery)

	return RenderBox("Block Suggestions", b.String())
}

func writeGroup(b *strings.Builder, label string, blocks []contract.BlockSuggestion) {
	if len(blocks) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(label + "\n")
	for _, blk := range blocks {
		b.WriteString(fmt.Sprintf("  %s %02d:00–%02d:00  %s\n",
			Bold(blk.Date), blk.StartHour, blk.EndHour, Dim(blk.Reason)))
	}
}
