package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders a 0-100 score bar like [████░░░░] 45.
// The bar is colored green >=70, yellow 50-69, red <50, matching the
// score level bands.
func RenderScoreBar(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := score * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if score < 50 {
		style = StyleRed
	} else if score < 70 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d", style.Render(bar), score)
}
