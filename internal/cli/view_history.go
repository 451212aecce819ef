package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/repository"
)

// historyLimit caps how many past routines the view loads.
const historyLimit = 20

// historyLoadedMsg carries the loaded routine records.
type historyLoadedMsg struct {
	records []*repository.RoutineRecord
	err     error
}

// historyView lists previously generated routines; the selected one is
// rendered in full below the list.
type historyView struct {
	state   *SharedState
	records []*repository.RoutineRecord
	cursor  int
	loading bool
	err     error
	open    bool
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state, loading: true}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "루틴 기록" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "펼치기")),
	}
}

func (v *historyView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		records, err := app.Routines.ListRecent(context.Background(), historyLimit)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		v.loading = false
		v.records = msg.records
		v.err = msg.err
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
				v.open = false
			}
		case "down", "j":
			if v.cursor < len(v.records)-1 {
				v.cursor++
				v.open = false
			}
		case "enter":
			v.open = !v.open
		}
	}
	return v, nil
}

func (v *historyView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("기록을 불러오는 중...") + "\n")
		return b.String()
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render(v.err.Error()) + "\n")
		return b.String()
	case len(v.records) == 0:
		b.WriteString("  " + formatter.Dim("아직 생성한 루틴이 없어요.") + "\n")
		return b.String()
	}

	for i, rec := range v.records {
		marker := "  "
		label := formatter.StyleFg.Render(rec.Routine.PlanRange)
		if i == v.cursor {
			marker = formatter.StyleGreen.Render("▸ ")
			label = formatter.Bold(rec.Routine.PlanRange)
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s\n", marker, label, formatter.Dim(historyDate(rec.CreatedAt))))
	}

	if v.open && v.cursor < len(v.records) {
		b.WriteString("\n")
		b.WriteString(formatter.RenderRoutine(&v.records[v.cursor].Routine))
	}

	return b.String()
}

// historyDate shortens an RFC3339 timestamp to its date part.
func historyDate(createdAt string) string {
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		return t.Format("2006-01-02")
	}
	return createdAt
}
