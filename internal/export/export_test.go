package export

import (
	"os"
	"strings"
	"testing"

	"github.com/sspots/fitfinder/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoutine() *contract.Routine {
	return &contract.Routine{
		PlanRange:         "10.6 - 10.12",
		Subtitle:          "수영 중심 주간 플랜",
		Focus:             "체지방 감량",
		TargetSessions:    3,
		TotalMinutes:      180,
		EstimatedCalories: 1500,
		Schedule: []contract.RoutineSlot{
			{DayKo: "월", DayEn: "MON", Time: "19:00", Place: "구민 체육센터", Type: "수영", DistanceWalk: "도보 10분", Tag: "유산소"},
			{DayKo: "수", DayEn: "WED", Time: "19:00", Place: "구민 체육센터", Type: "수영", DistanceWalk: "도보 10분", Tag: "유산소"},
		},
	}
}

func TestRenderCard_ContainsPlanSummary(t *testing.T) {
	card := RenderCard(sampleRoutine())

	assert.Contains(t, card, "Weekly Workout Recap")
	assert.Contains(t, card, "10.6 - 10.12")
	assert.Contains(t, card, "체지방 감량")
	assert.Contains(t, card, "주 3회 · 총 180분")
	assert.Contains(t, card, "약 1500kcal")
	assert.Contains(t, card, "월 (MON)  19:00")
	assert.Contains(t, card, "[수영] 구민 체육센터")
	assert.Contains(t, card, "도보 10분 · 유산소")
}

func TestRenderCard_OmitsZeroCalories(t *testing.T) {
	r := sampleRoutine()
	r.EstimatedCalories = 0
	assert.NotContains(t, RenderCard(r), "kcal")
}

func TestRenderCard_NoANSIEscapes(t *testing.T) {
	card := RenderCard(sampleRoutine())
	assert.False(t, strings.Contains(card, "\x1b["), "exported card must be plain text")
}

func TestFileExporter_WritesCard(t *testing.T) {
	dir := t.TempDir()
	e := &FileExporter{Dir: dir}

	path, err := e.Export(sampleRoutine())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Weekly Workout Recap")
}
