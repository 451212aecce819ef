package repository

import (
	"context"
	"errors"

	"github.com/sspots/fitfinder/internal/contract"
	"github.com/sspots/fitfinder/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProfileRepo persists the single saved survey profile so a returning user
// can resume where they left off.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
	Clear(ctx context.Context) error
}

// RoutineRecord is a generated routine stored with its creation time.
type RoutineRecord struct {
	ID        string
	CreatedAt string // RFC3339
	Routine   contract.Routine
}

// RoutineRepo keeps a history of generated weekly routines.
type RoutineRepo interface {
	Add(ctx context.Context, r *contract.Routine) (*RoutineRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*RoutineRecord, error)
}
