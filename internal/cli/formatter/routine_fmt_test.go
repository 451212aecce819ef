package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sspots/fitfinder/internal/contract"
)

func TestRenderRoutine(t *testing.T) {
	r := &contract.Routine{
		PlanRange:         "1월 6일 ~ 1월 12일",
		Subtitle:          "수영 중심 주간 루틴",
		Focus:             "체력 향상",
		TargetSessions:    3,
		TotalMinutes:      180,
		EstimatedCalories: 1200,
		Schedule: []contract.RoutineSlot{
			{DayKo: "월", DayEn: "Mon", Time: "07:00", Place: "시립수영장", Type: "수영", DistanceWalk: "도보 8분", Tag: "#아침수영"},
		},
	}

	out := RenderRoutine(r)
	assert.Contains(t, out, "1월 6일 ~ 1월 12일")
	assert.Contains(t, out, "주 3회")
	assert.Contains(t, out, "총 180분")
	assert.Contains(t, out, "약 1200kcal")
	assert.Contains(t, out, "시립수영장")
	assert.Contains(t, out, "도보 8분 · #아침수영")
}

func TestRenderRoutineOmitsZeroCalories(t *testing.T) {
	r := &contract.Routine{PlanRange: "이번 주", TargetSessions: 2, TotalMinutes: 90}
	out := RenderRoutine(r)
	assert.NotContains(t, out, "kcal")
}

func TestRenderProgramDetail(t *testing.T) {
	d := &contract.ProgramDetail{
		ProgramName:     "아침 요가",
		ProgramTarget:   "성인",
		Weekday:         []string{"화", "목"},
		StartTime:       "07:00",
		Price:           30000,
		ReservationURL:  "https://reserve.example.com/42",
		Category:        "요가",
		Facility:        "구민체육센터",
		FacilityAddress: "서울특별시 중구 세종대로 110",
		TransportData: []contract.Transport{
			{TransportType: "SUBWAY", TransportName: "2호선 시청역", TransportTime: 5},
			{TransportType: "WALK", TransportName: "정문까지", TransportTime: 3},
		},
	}

	out := RenderProgramDetail(d)
	assert.Contains(t, out, "아침 요가")
	assert.Contains(t, out, "화·목 07:00")
	assert.Contains(t, out, "30000원")
	assert.Contains(t, out, "지하철")
	assert.Contains(t, out, "2호선 시청역")
	assert.Contains(t, out, "https://reserve.example.com/42")
}

func TestRenderProgramDetailFreePrice(t *testing.T) {
	d := &contract.ProgramDetail{ProgramName: "공원 걷기", Facility: "근린공원"}
	out := RenderProgramDetail(d)
	assert.Contains(t, out, "무료")
}

func TestRenderSteps(t *testing.T) {
	out := RenderSteps(2, 4)
	assert.Contains(t, out, "2/4")

	// Clamped to the step range.
	assert.Contains(t, RenderSteps(9, 4), "4/4")
	assert.Contains(t, RenderSteps(0, 4), "1/4")
}
