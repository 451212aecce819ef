package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sspots/fitfinder/internal/contract"
)

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "850m", FormatDistance(0.85))
	assert.Equal(t, "0m", FormatDistance(0))
	assert.Equal(t, "1.2km", FormatDistance(1.23))
	assert.Equal(t, "12.0km", FormatDistance(12.04))
	assert.Equal(t, "0m", FormatDistance(-3))
}

func TestFormatSchedule(t *testing.T) {
	assert.Equal(t, "월·수·금 07:00", FormatSchedule([]string{"월", "수", "금"}, "07:00"))
	assert.Equal(t, "화", FormatSchedule([]string{"화"}, ""))
	assert.Equal(t, "19:00", FormatSchedule(nil, "19:00"))
	assert.Equal(t, "", FormatSchedule(nil, ""))
}

func TestRenderProgramRow(t *testing.T) {
	p := contract.ProgramSummary{
		ProgramID:   1,
		ProgramName: "성인 자유수영",
		Weekday:     []string{"월", "수"},
		StartTime:   "06:00",
		Category:    "수영",
		Facility:    "시립수영장",
		Distance:    0.4,
	}

	row := RenderProgramRow(p, false)
	assert.Contains(t, row, "성인 자유수영")
	assert.Contains(t, row, "[수영]")
	assert.Contains(t, row, "시립수영장")
	assert.Contains(t, row, "400m")
	assert.NotContains(t, row, "▸")

	selected := RenderProgramRow(p, true)
	assert.Contains(t, selected, "▸")
}

func TestRenderProgramTable(t *testing.T) {
	out := RenderProgramTable([]contract.ProgramSummary{
		{ProgramName: "필라테스 입문", Category: "필라테스", Facility: "구민체육센터", Distance: 2.1},
	})

	assert.Contains(t, out, "프로그램")
	assert.Contains(t, out, "필라테스 입문")
	assert.Contains(t, out, "2.1km")

	// Header separator line present.
	assert.Contains(t, out, "─")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}
