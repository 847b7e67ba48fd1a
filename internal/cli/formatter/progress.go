package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timbang/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% in the color of status.
// The fill is clamped to [0, 1]; the percentage label is not.
func RenderProgress(pct float64, width int, status domain.ProgressStatus) string {
	if width < 2 {
		width = 2
	}
	fill := pct
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	filled := int(fill * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", ProgressColor(status).Render(bar), pct*100)
}

// ratio returns current/target, or 0 without a target.
func ratio(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target
}
