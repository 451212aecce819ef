package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sspots/fitfinder/internal/contract"
)

// FormatDistance renders a distance in kilometers as "850m" below 1km
// and "1.2km" above.
func FormatDistance(km float64) string {
	if km < 0 {
		km = 0
	}
	if km < 1 {
		return fmt.Sprintf("%.0fm", km*1000)
	}
	return fmt.Sprintf("%.1fkm", km)
}

// FormatSchedule joins weekdays and a start time into "월·수·금 07:00".
func FormatSchedule(weekday []string, startTime string) string {
	parts := make([]string, 0, 2)
	if len(weekday) > 0 {
		parts = append(parts, strings.Join(weekday, "·"))
	}
	if startTime != "" {
		parts = append(parts, startTime)
	}
	return strings.Join(parts, " ")
}

// RenderProgramRow renders one two-line entry of the program feed.
// The first line carries the name and category badge, the second the
// facility, schedule and distance.
func RenderProgramRow(p contract.ProgramSummary, selected bool) string {
	marker := "  "
	name := StyleFg.Render(p.ProgramName)
	if selected {
		marker = StyleGreen.Render("▸ ")
		name = Bold(p.ProgramName)
	}

	first := marker + name
	if p.Category != "" {
		first += " " + Badge(p.Category)
	}
	if p.SubCategory != "" && p.SubCategory != p.Category {
		first += " " + Dim(p.SubCategory)
	}

	meta := make([]string, 0, 3)
	if p.Facility != "" {
		meta = append(meta, p.Facility)
	}
	if sched := FormatSchedule(p.Weekday, p.StartTime); sched != "" {
		meta = append(meta, sched)
	}
	meta = append(meta, FormatDistance(p.Distance))

	second := "    " + Dim(strings.Join(meta, " · "))
	return first + "\n" + second
}

// RenderProgramTable renders programs as an aligned table for headless
// output. Columns are padded to the widest visible cell.
func RenderProgramTable(items []contract.ProgramSummary) string {
	headers := []string{"프로그램", "종목", "시설", "일정", "거리"}
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			p.ProgramName,
			p.Category,
			p.Facility,
			FormatSchedule(p.Weekday, p.StartTime),
			FormatDistance(p.Distance),
		})
	}
	return renderAligned(headers, rows)
}

// renderAligned pads columns to their widest visible cell, with a header
// separator line. Widths use lipgloss.Width so ANSI sequences in cells
// don't skew alignment.
func renderAligned(headers []string, rows [][]string) string {
	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+colGap))
		}
	}
	b.WriteString("\n")
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
