package formatter

import (
	"fmt"
	"strings"
)

const (
	stepDone    = "●"
	stepPending = "○"
)

// RenderSteps renders a survey progress indicator like "●●○○  2/4".
// Completed steps (including the current one) are filled and accented.
func RenderSteps(current, total int) string {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	dots := StyleGreen.Render(strings.Repeat(stepDone, current)) +
		StyleDim.Render(strings.Repeat(stepPending, total-current))
	return fmt.Sprintf("%s  %s", dots, Dim(fmt.Sprintf("%d/%d", current, total)))
}
