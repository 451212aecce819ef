package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sspots/fitfinder/internal/contract"
)

// Exporter persists a routine card for sharing outside the app.
type Exporter interface {
	// Export writes the routine and returns the path to the written file.
	Export(r *contract.Routine) (string, error)
}

// FileExporter writes routine cards into a directory as timestamped
// text files.
type FileExporter struct {
	Dir string
}

// NewFileExporter creates a FileExporter. An empty dir defaults to
// ~/.fitfinder/routines.
func NewFileExporter(dir string) (*FileExporter, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".fitfinder", "routines")
	}
	return &FileExporter{Dir: dir}, nil
}

func (e *FileExporter) Export(r *contract.Routine) (string, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	name := fmt.Sprintf("routine-%s.txt", time.Now().Format("20060102-150405"))
	path := filepath.Join(e.Dir, name)

	if err := os.WriteFile(path, []byte(RenderCard(r)), 0644); err != nil {
		return "", fmt.Errorf("writing routine card: %w", err)
	}
	return path, nil
}
