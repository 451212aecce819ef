package cli

import (
	"github.com/sspots/fitfinder/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// The survey profile every view reads and writes. It is the single
	// source of truth for search filters.
	Profile *domain.Profile

	// Display label for the chosen location (resolved address or a
	// fallback description). The coordinate itself lives in Profile.
	LocationLabel string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
