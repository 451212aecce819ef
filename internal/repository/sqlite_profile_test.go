package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sspots/fitfinder/internal/db"
	"github.com/sspots/fitfinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func savedProfile() *domain.Profile {
	p := domain.NewProfile()
	p.SetGender(domain.GenderFemale)
	p.SetAgeGroup(domain.AgeElementary)
	p.SetLocation(37.3449, 126.9686)
	p.SetFavorites([]string{"농구", "수영"})
	return p
}

func TestProfileRepo_SaveAndGetRoundTrip(t *testing.T) {
	repo := NewSQLiteProfileRepo(testDB(t))
	ctx := context.Background()

	p := savedProfile()
	p.SetWeekday([]string{"월", "수"})
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GenderFemale, got.Gender())
	assert.Equal(t, domain.AgeElementary, got.AgeGroup())
	assert.Equal(t, 37.3449, got.Location().Lat)
	assert.Equal(t, []string{"농구", "수영"}, got.Favorites())
	assert.Equal(t, []string{"월", "수"}, got.Weekday())
	assert.Nil(t, got.StartTime())
	assert.True(t, got.Complete())
}

func TestProfileRepo_AbsentFiltersStayAbsent(t *testing.T) {
	repo := NewSQLiteProfileRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, savedProfile()))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got.Weekday())
	assert.Nil(t, got.StartTime())
}

func TestProfileRepo_SaveReplaces(t *testing.T) {
	repo := NewSQLiteProfileRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, savedProfile()))

	p := savedProfile()
	p.SetGender(domain.GenderMale)
	p.SetFavorites([]string{"헬스"})
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GenderMale, got.Gender())
	assert.Equal(t, []string{"헬스"}, got.Favorites())
}

func TestProfileRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteProfileRepo(testDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_Clear(t *testing.T) {
	repo := NewSQLiteProfileRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, savedProfile()))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	// Clearing an already-empty table is fine.
	assert.NoError(t, repo.Clear(ctx))
}
