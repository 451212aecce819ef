package formatter

import (
	"fmt"
	"strings"

	"github.com/sspots/fitfinder/internal/contract"
)

// RenderRoutine renders a generated weekly routine for the TUI result
// screen. The shareable plain-text card lives in the export package.
func RenderRoutine(r *contract.Routine) string {
	var b strings.Builder

	b.WriteString(Header(r.PlanRange))
	b.WriteString("\n\n")

	if r.Subtitle != "" {
		b.WriteString("  " + StyleFg.Render(r.Subtitle) + "\n")
	}
	if r.Focus != "" {
		b.WriteString("  " + Dim("목표") + "  " + StyleYellow.Render(r.Focus) + "\n")
	}

	stats := []string{fmt.Sprintf("주 %d회", r.TargetSessions), fmt.Sprintf("총 %d분", r.TotalMinutes)}
	if r.EstimatedCalories > 0 {
		stats = append(stats, fmt.Sprintf("약 %dkcal", r.EstimatedCalories))
	}
	b.WriteString("  " + Dim(strings.Join(stats, " · ")) + "\n\n")

	for _, slot := range r.Schedule {
		day := slot.DayKo
		if slot.DayEn != "" {
			day += " " + slot.DayEn
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleGreen.Render(day), StyleFg.Render(slot.Time)))

		line := "    " + Bold(slot.Place)
		if slot.Type != "" {
			line += " " + Badge(slot.Type)
		}
		b.WriteString(line + "\n")

		meta := make([]string, 0, 2)
		if slot.DistanceWalk != "" {
			meta = append(meta, slot.DistanceWalk)
		}
		if slot.Tag != "" {
			meta = append(meta, slot.Tag)
		}
		if len(meta) > 0 {
			b.WriteString("    " + Dim(strings.Join(meta, " · ")) + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
