package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/sspots/fitfinder/internal/api"
	"github.com/sspots/fitfinder/internal/cli"
	"github.com/sspots/fitfinder/internal/db"
	"github.com/sspots/fitfinder/internal/export"
	"github.com/sspots/fitfinder/internal/geo"
	"github.com/sspots/fitfinder/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.fitfinder/fitfinder.db
	dbPath := os.Getenv("FITFINDER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".fitfinder", "fitfinder.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire the API client with optional call logging.
	apiCfg := api.LoadConfig()
	var observer api.Observer = api.NoopObserver{}
	if apiCfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}
	client := api.NewClient(apiCfg, observer)

	// Address search goes through Kakao when a key is configured and
	// degrades to the static default location otherwise.
	var maps geo.MapProvider = geo.StaticProvider{}
	if kakaoCfg := geo.LoadKakaoConfig(); kakaoCfg.AppKey != "" {
		maps = geo.NewKakaoProvider(kakaoCfg)
	}

	exporter, err := export.NewFileExporter(os.Getenv("FITFINDER_EXPORT_DIR"))
	if err != nil {
		return fmt.Errorf("preparing export directory: %w", err)
	}

	app := &cli.App{
		Client:   client,
		Maps:     maps,
		Profiles: repository.NewSQLiteProfileRepo(database),
		Routines: repository.NewSQLiteRoutineRepo(database),
		Exporter: exporter,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
