package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sspots/fitfinder/internal/api"
	"github.com/sspots/fitfinder/internal/contract"
	"github.com/sspots/fitfinder/internal/db"
	"github.com/sspots/fitfinder/internal/export"
	"github.com/sspots/fitfinder/internal/geo"
	"github.com/sspots/fitfinder/internal/repository"
	"github.com/sspots/fitfinder/internal/teatest"
)

// fakeClient is a programmable api.Client for TUI tests. Search responses
// are served page by page in order; every request body is recorded.
type fakeClient struct {
	pages     [][]contract.ProgramSummary
	searchErr error

	detail    *contract.ProgramDetail
	detailErr error

	routine    *contract.Routine
	routineErr error

	searchCalls    int
	searchRequests []contract.SearchRequest
	detailCalls    int
	routineCalls   int
}

func (f *fakeClient) SearchPrograms(ctx context.Context, req contract.SearchRequest, cursor *api.PageCursor) ([]contract.ProgramSummary, error) {
	f.searchCalls++
	f.searchRequests = append(f.searchRequests, req)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.searchCalls-1 < len(f.pages) {
		return f.pages[f.searchCalls-1], nil
	}
	return nil, nil
}

func (f *fakeClient) ProgramDetail(ctx context.Context, programID int) (*contract.ProgramDetail, error) {
	f.detailCalls++
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeClient) GenerateRoutine(ctx context.Context, req contract.RoutineRequest) (*contract.Routine, error) {
	f.routineCalls++
	if f.routineErr != nil {
		return nil, f.routineErr
	}
	return f.routine, nil
}

// lastSearchRequest returns the most recent recorded search body.
func (f *fakeClient) lastSearchRequest(t *testing.T) contract.SearchRequest {
	t.Helper()
	require.NotEmpty(t, f.searchRequests)
	return f.searchRequests[len(f.searchRequests)-1]
}

// testDB opens an in-memory SQLite database for repository wiring.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

// newTestApp builds an App over the fake client, in-memory repositories,
// the static map provider, and a temp-dir exporter.
func newTestApp(t *testing.T, client *fakeClient) *App {
	t.Helper()

	database := testDB(t)
	exporter, err := export.NewFileExporter(t.TempDir())
	require.NoError(t, err)

	return &App{
		Client:   client,
		Maps:     geo.StaticProvider{},
		Profiles: repository.NewSQLiteProfileRepo(database),
		Routines: repository.NewSQLiteRoutineRepo(database),
		Exporter: exporter,
	}
}

// makePrograms builds n sequential program summaries starting at firstID.
func makePrograms(firstID, n int) []contract.ProgramSummary {
	out := make([]contract.ProgramSummary, n)
	for i := range out {
		out[i] = contract.ProgramSummary{
			ProgramID:   firstID + i,
			ProgramName: "프로그램",
			Category:    "수영",
			Facility:    "시립수영장",
			Distance:    0.5 + float64(i)*0.1,
		}
	}
	return out
}

// TestDriver wraps teatest.Driver with appModel inspection helpers.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and drains
// Init() (which loads the saved profile synchronously).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// State returns the shared state threaded through all views.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Push places a view on the stack directly, bypassing menu navigation.
func (d *TestDriver) Push(v View) {
	d.Send(pushViewMsg{view: v})
}
