// Package export renders a generated weekly routine into a shareable
// fixed-width card and writes it to disk, standing in for the original's
// render-offscreen-and-rasterize export path.
package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sspots/fitfinder/internal/contract"
)

// CardWidth is the fixed inner width of the exported card, mirroring the
// fixed raster width of the original export.
const CardWidth = 56

// RenderCard lays out the routine as a plain-text card. Styling is done with
// lipgloss but without color so the result pastes cleanly anywhere.
func RenderCard(r *contract.Routine) string {
	var b strings.Builder

	rule := strings.Repeat("─", CardWidth)

	b.WriteString(rule + "\n")
	if r.PlanRange != "" {
		b.WriteString(center(r.PlanRange) + "\n")
	}
	b.WriteString(center("Weekly Workout Recap") + "\n")
	if r.Subtitle != "" {
		b.WriteString(center(r.Subtitle) + "\n")
	}
	b.WriteString(rule + "\n")

	b.WriteString(fmt.Sprintf("목표  %s\n", r.Focus))
	b.WriteString(fmt.Sprintf("주 %d회 · 총 %d분", r.TargetSessions, r.TotalMinutes))
	if r.EstimatedCalories > 0 {
		b.WriteString(fmt.Sprintf(" · 약 %dkcal", r.EstimatedCalories))
	}
	b.WriteString("\n" + rule + "\n")

	for _, slot := range r.Schedule {
		b.WriteString(renderSlot(slot))
	}

	b.WriteString(rule + "\n")
	return b.String()
}

func renderSlot(s contract.RoutineSlot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%s)  %s\n", s.DayKo, s.DayEn, s.Time))
	b.WriteString(fmt.Sprintf("  [%s] %s\n", s.Type, s.Place))

	var tags []string
	if s.DistanceWalk != "" {
		tags = append(tags, s.DistanceWalk)
	}
	if s.Tag != "" {
		tags = append(tags, s.Tag)
	}
	if len(tags) > 0 {
		b.WriteString("  " + strings.Join(tags, " · ") + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func center(s string) string {
	return lipgloss.PlaceHorizontal(CardWidth, lipgloss.Center, s)
}
