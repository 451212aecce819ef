package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sspots/fitfinder/internal/contract"
	"github.com/sspots/fitfinder/internal/db"
)

// SQLiteRoutineRepo implements RoutineRepo using a SQLite database.
type SQLiteRoutineRepo struct {
	db db.DBTX
}

// NewSQLiteRoutineRepo creates a new SQLiteRoutineRepo.
func NewSQLiteRoutineRepo(conn db.DBTX) *SQLiteRoutineRepo {
	return &SQLiteRoutineRepo{db: conn}
}

func (r *SQLiteRoutineRepo) Add(ctx context.Context, routine *contract.Routine) (*RoutineRecord, error) {
	schedule, err := json.Marshal(routine.Schedule)
	if err != nil {
		return nil, fmt.Errorf("encoding schedule: %w", err)
	}

	rec := &RoutineRecord{
		ID:        uuid.NewString(),
		CreatedAt: nowUTC(),
		Routine:   *routine,
	}

	query := `INSERT INTO routine_history
		(id, plan_range, subtitle, focus, target_sessions, total_minutes, estimated_calories, schedule, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		routine.PlanRange,
		routine.Subtitle,
		routine.Focus,
		routine.TargetSessions,
		routine.TotalMinutes,
		routine.EstimatedCalories,
		string(schedule),
		rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting routine: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRoutineRepo) ListRecent(ctx context.Context, limit int) ([]*RoutineRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT id, plan_range, subtitle, focus, target_sessions, total_minutes,
		estimated_calories, schedule, created_at
		FROM routine_history ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing routines: %w", err)
	}
	defer rows.Close()

	var out []*RoutineRecord
	for rows.Next() {
		var (
			rec      RoutineRecord
			schedule string
		)
		err := rows.Scan(
			&rec.ID,
			&rec.Routine.PlanRange,
			&rec.Routine.Subtitle,
			&rec.Routine.Focus,
			&rec.Routine.TargetSessions,
			&rec.Routine.TotalMinutes,
			&rec.Routine.EstimatedCalories,
			&schedule,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning routine: %w", err)
		}
		if err := json.Unmarshal([]byte(schedule), &rec.Routine.Schedule); err != nil {
			return nil, fmt.Errorf("decoding schedule: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
