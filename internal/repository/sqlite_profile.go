package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sspots/fitfinder/internal/db"
	"github.com/sspots/fitfinder/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// A single row keyed 'default' holds the saved profile.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT gender, age_group, latitude, longitude, favorites, weekday, start_time
		FROM saved_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var (
		gender, ageGroup   string
		lat, lng           float64
		favorites          sql.NullString
		weekday, startTime sql.NullString
	)
	err := row.Scan(&gender, &ageGroup, &lat, &lng, &favorites, &weekday, &startTime)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("saved profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning saved profile: %w", err)
	}

	favs, err := unmarshalStrings(favorites)
	if err != nil {
		return nil, fmt.Errorf("decoding favorites: %w", err)
	}
	days, err := unmarshalStrings(weekday)
	if err != nil {
		return nil, fmt.Errorf("decoding weekday filter: %w", err)
	}
	times, err := unmarshalStrings(startTime)
	if err != nil {
		return nil, fmt.Errorf("decoding start-time filter: %w", err)
	}

	p := domain.NewProfile()
	p.SetGender(domain.Gender(gender))
	p.SetAgeGroup(domain.AgeGroup(ageGroup))
	p.SetLocation(lat, lng)
	p.SetFavorites(favs)
	p.SetWeekday(days)
	p.SetStartTime(times)
	return p, nil
}

func (r *SQLiteProfileRepo) Save(ctx context.Context, p *domain.Profile) error {
	favorites, err := marshalStrings(p.Favorites())
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	weekday, err := marshalStrings(p.Weekday())
	if err != nil {
		return fmt.Errorf("encoding weekday filter: %w", err)
	}
	startTime, err := marshalStrings(p.StartTime())
	if err != nil {
		return fmt.Errorf("encoding start-time filter: %w", err)
	}

	loc := p.Location()
	query := `INSERT OR REPLACE INTO saved_profile
		(id, gender, age_group, latitude, longitude, favorites, weekday, start_time, updated_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		string(p.Gender()),
		string(p.AgeGroup()),
		loc.Lat,
		loc.Lng,
		favorites,
		weekday,
		startTime,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saved_profile WHERE id = 'default'`); err != nil {
		return fmt.Errorf("clearing saved profile: %w", err)
	}
	return nil
}
