package domain

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// DisplayName returns the Korean label the remote recommend endpoint and the
// UI use.
func (g Gender) DisplayName() string {
	switch g {
	case GenderMale:
		return "남성"
	case GenderFemale:
		return "여성"
	default:
		return ""
	}
}

type AgeGroup string

const (
	AgeToddler    AgeGroup = "영유아"
	AgeElementary AgeGroup = "초등학생"
	AgeMiddle     AgeGroup = "중학생"
	AgeHigh       AgeGroup = "고등학생"
	AgeAdult      AgeGroup = "성인"
	AgeSenior     AgeGroup = "시니어"
)

// AgeGroups lists the selectable age groups in survey order.
var AgeGroups = []AgeGroup{
	AgeToddler, AgeElementary, AgeMiddle, AgeHigh, AgeAdult, AgeSenior,
}

// Weekdays is the canonical 7-day ordering used by the day filter and the
// search payload.
var Weekdays = []string{"월", "화", "수", "목", "금", "토", "일"}

// TimeSlots is the canonical set of hourly start-time tokens accepted by the
// time filter, earliest first.
var TimeSlots = []string{
	"05:00", "06:00", "07:00", "08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
	"21:00", "22:00",
}

// SportCategories lists the selectable favorite sports in survey order.
var SportCategories = []string{
	"수영", "헬스", "요가", "필라테스",
	"탁구", "배드민턴", "농구", "축구",
	"테니스", "댄스", "클라이밍", "태권도",
	"복싱", "검도", "주짓수", "기타",
}
