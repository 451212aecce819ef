package formatter

import (
	"fmt"
	"strings"

	"github.com/sspots/fitfinder/internal/contract"
)

// transportLabel maps a transport type code to its Korean label.
func transportLabel(transportType string) string {
	switch strings.ToUpper(transportType) {
	case "SUBWAY":
		return "지하철"
	case "BUS":
		return "버스"
	case "WALK":
		return "도보"
	default:
		return transportType
	}
}

// RenderProgramDetail renders the full detail screen body for a program.
func RenderProgramDetail(d *contract.ProgramDetail) string {
	var b strings.Builder

	b.WriteString(Header(d.ProgramName))
	b.WriteString("\n\n")

	if d.Category != "" {
		b.WriteString("  " + Badge(d.Category))
		if d.SubCategory != "" && d.SubCategory != d.Category {
			b.WriteString(" " + Dim(d.SubCategory))
		}
		b.WriteString("\n")
	}
	if d.ProgramTarget != "" {
		b.WriteString("  " + Dim("대상") + "  " + StyleFg.Render(d.ProgramTarget) + "\n")
	}
	if sched := FormatSchedule(d.Weekday, d.StartTime); sched != "" {
		b.WriteString("  " + Dim("일정") + "  " + StyleFg.Render(sched) + "\n")
	}
	if d.Price > 0 {
		b.WriteString("  " + Dim("가격") + "  " + StyleFg.Render(fmt.Sprintf("%d원", d.Price)) + "\n")
	} else {
		b.WriteString("  " + Dim("가격") + "  " + StyleGreen.Render("무료") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + Bold(d.Facility) + "\n")
	if d.FacilityAddress != "" {
		b.WriteString("  " + Dim(d.FacilityAddress) + "\n")
	}

	if len(d.TransportData) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + StyleHeader.Render("가는 길") + "\n")
		for _, t := range d.TransportData {
			line := fmt.Sprintf("  %s %s",
				StyleBlue.Render(transportLabel(t.TransportType)),
				StyleFg.Render(t.TransportName))
			if t.TransportTime > 0 {
				line += " " + Dim(fmt.Sprintf("%d분", t.TransportTime))
			}
			b.WriteString(line + "\n")
		}
	}

	if d.ReservationURL != "" {
		b.WriteString("\n")
		b.WriteString("  " + Dim("예약") + "  " + StyleBlue.Underline(true).Render(d.ReservationURL) + "\n")
	}

	return b.String()
}
