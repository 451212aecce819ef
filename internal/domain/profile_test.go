package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeProfile() *Profile {
	p := NewProfile()
	p.SetGender(GenderMale)
	p.SetAgeGroup(AgeAdult)
	p.SetLocation(37.5, 127.0)
	p.SetFavorites([]string{"수영"})
	return p
}

func TestProfile_CompleteRequiresAllFourAnswers(t *testing.T) {
	p := NewProfile()
	assert.False(t, p.Complete())

	p.SetGender(GenderFemale)
	assert.False(t, p.Complete())

	p.SetAgeGroup(AgeElementary)
	assert.False(t, p.Complete())

	p.SetLocation(37.4, 126.9)
	assert.False(t, p.Complete())

	p.SetFavorites([]string{"농구", "축구"})
	assert.True(t, p.Complete())
}

func TestProfile_ZeroLocationIsUnset(t *testing.T) {
	p := completeProfile()
	assert.True(t, p.Complete())

	p.SetLocation(0, 0)
	assert.False(t, p.Complete())

	// Either axis alone being zero is still a real coordinate.
	p.SetLocation(0, 126.9)
	assert.True(t, p.Complete())
}

func TestProfile_EmptyFavoritesIncomplete(t *testing.T) {
	p := completeProfile()
	p.SetFavorites(nil)
	assert.False(t, p.Complete())

	p.SetFavorites([]string{})
	assert.False(t, p.Complete())
}

func TestProfile_FiltersDoNotGateCompleteness(t *testing.T) {
	p := completeProfile()
	p.SetWeekday([]string{"월", "수"})
	p.SetStartTime([]string{"15:00"})
	assert.True(t, p.Complete())

	p.ClearFilters()
	assert.True(t, p.Complete())
	assert.Nil(t, p.Weekday())
	assert.Nil(t, p.StartTime())
}

func TestProfile_EmptyFilterMeansAbsent(t *testing.T) {
	p := completeProfile()
	p.SetWeekday([]string{})
	assert.Nil(t, p.Weekday())

	p.SetStartTime(nil)
	assert.Nil(t, p.StartTime())
}

func TestProfile_ResetAlwaysIncomplete(t *testing.T) {
	p := completeProfile()
	p.SetWeekday([]string{"토", "일"})
	p.Reset()

	assert.False(t, p.Complete())
	assert.Equal(t, Gender(""), p.Gender())
	assert.Equal(t, AgeGroup(""), p.AgeGroup())
	assert.True(t, p.Location().IsZero())
	assert.Nil(t, p.Favorites())
	assert.Nil(t, p.Weekday())
}

func TestProfile_SettersAreLastWriteWins(t *testing.T) {
	p := completeProfile()
	p.SetGender(GenderFemale)
	assert.Equal(t, GenderFemale, p.Gender())

	p.SetFavorites([]string{"요가"})
	assert.Equal(t, []string{"요가"}, p.Favorites())
}

func TestProfile_FavoritesCopiedOnReadAndWrite(t *testing.T) {
	in := []string{"탁구", "배드민턴"}
	p := completeProfile()
	p.SetFavorites(in)

	in[0] = "mutated"
	assert.Equal(t, []string{"탁구", "배드민턴"}, p.Favorites())

	out := p.Favorites()
	out[1] = "mutated"
	assert.Equal(t, []string{"탁구", "배드민턴"}, p.Favorites())
}

func TestGender_DisplayName(t *testing.T) {
	assert.Equal(t, "남성", GenderMale.DisplayName())
	assert.Equal(t, "여성", GenderFemale.DisplayName())
	assert.Equal(t, "", Gender("").DisplayName())
}
