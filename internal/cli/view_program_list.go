package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/contract"
	"github.com/sspots/fitfinder/internal/feed"
)

// nearEndWindow is how many rows from the bottom of the loaded list the
// cursor may get before the next page is requested.
const nearEndWindow = 3

// programRowHeight is the rendered height of one feed entry.
const programRowHeight = 2

// programsMsg carries the outcome of one search fetch back to the list.
type programsMsg struct {
	fetch feed.Fetch
	items []contract.ProgramSummary
	err   error
}

// programListView is the infinitely scrolling program feed. All fetch
// sequencing lives in feed.Controller; the view only executes the fetches
// it is handed and feeds outcomes back.
type programListView struct {
	state   *SharedState
	ctrl    *feed.Controller
	trigger *feed.ContinuationTrigger

	cursor int
	top    int // first visible row
}

func newProgramListView(state *SharedState) *programListView {
	return &programListView{
		state:   state,
		ctrl:    feed.NewController(state.Profile),
		trigger: feed.NewContinuationTrigger(),
	}
}

func (v *programListView) ID() ViewID    { return ViewProgramList }
func (v *programListView) Title() string { return "프로그램" }

func (v *programListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "상세")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "요일")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "시간")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "AI 루틴")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "새로고침")),
	}
}

func (v *programListView) Init() tea.Cmd {
	return v.beginReset()
}

func (v *programListView) beginReset() tea.Cmd {
	v.cursor = 0
	v.top = 0
	v.trigger.Rearm()
	f, ok := v.ctrl.BeginReset()
	if !ok {
		return nil
	}
	return v.searchCmd(f)
}

func (v *programListView) searchCmd(f feed.Fetch) tea.Cmd {
	client := v.state.App.Client
	return func() tea.Msg {
		items, err := client.SearchPrograms(context.Background(), f.Request, f.Cursor)
		return programsMsg{fetch: f, items: items, err: err}
	}
}

// maybeFetchMore asks the controller for a continuation when the cursor
// has just entered the near-end window.
func (v *programListView) maybeFetchMore() tea.Cmd {
	nearEnd := len(v.ctrl.Items()) > 0 && v.cursor >= len(v.ctrl.Items())-nearEndWindow
	if !v.trigger.Observe(nearEnd) {
		return nil
	}
	f, ok := v.ctrl.BeginMore()
	if !ok {
		return nil
	}
	return v.searchCmd(f)
}

func (v *programListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case programsMsg:
		if !v.ctrl.Apply(msg.fetch, msg.items, msg.err) {
			return v, nil // superseded fetch
		}
		if n := len(v.ctrl.Items()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		// A grown list moves the boundary, so the trigger may fire again.
		v.trigger.Rearm()
		return v, v.maybeFetchMore()

	case filtersChangedMsg:
		return v, v.beginReset()

	case tea.KeyMsg:
		items := v.ctrl.Items()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
			// Leaving the boundary re-arms the trigger.
			if len(items) > 0 && v.cursor < len(items)-nearEndWindow {
				v.trigger.Observe(false)
			}
		case "down", "j":
			if v.cursor < len(items)-1 {
				v.cursor++
			}
			return v, v.maybeFetchMore()
		case "enter":
			if v.cursor < len(items) {
				return v, pushView(newProgramDetailView(v.state, items[v.cursor].ProgramID, items[v.cursor].ProgramName))
			}
		case "d":
			return v, pushView(newDayFilterView(v.state))
		case "t":
			return v, pushView(newTimeFilterView(v.state))
		case "a":
			return v, pushView(newRoutineView(v.state))
		case "r":
			return v, v.beginReset()
		case "g":
			if v.ctrl.ErrorMessage() == feed.IncompleteMessage {
				return v, replaceView(newGenderStepView(v.state))
			}
		}
	}
	return v, nil
}

func (v *programListView) visibleRows() int {
	rows := (v.state.ContentHeight() - 4) / programRowHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (v *programListView) View() string {
	var b strings.Builder

	b.WriteString("\n  " + v.renderFilterBar() + "\n\n")

	switch {
	case v.ctrl.Loading():
		b.WriteString("  " + formatter.Dim("프로그램을 찾는 중...") + "\n")
		return b.String()

	case v.ctrl.Phase() == feed.PhaseEmpty:
		b.WriteString("  " + formatter.StyleYellow.Render(feed.EmptyMessage) + "\n")
		return b.String()

	case v.ctrl.Phase() == feed.PhaseErrored:
		b.WriteString("  " + formatter.StyleRed.Render(v.ctrl.ErrorMessage()) + "\n")
		if v.ctrl.ErrorMessage() == feed.IncompleteMessage {
			b.WriteString("\n  " + formatter.Dim("g: 설문 하러 가기") + "\n")
		} else {
			b.WriteString("\n  " + formatter.Dim("r: 다시 시도") + "\n")
		}
		return b.String()
	}

	items := v.ctrl.Items()
	rows := v.visibleRows()
	if v.cursor < v.top {
		v.top = v.cursor
	}
	if v.cursor >= v.top+rows {
		v.top = v.cursor - rows + 1
	}
	end := min(v.top+rows, len(items))

	for i := v.top; i < end; i++ {
		b.WriteString(formatter.RenderProgramRow(items[i], i == v.cursor) + "\n")
	}

	switch {
	case v.ctrl.LoadingMore():
		b.WriteString("\n  " + formatter.Dim("더 불러오는 중...") + "\n")
	case v.ctrl.Exhausted() && len(items) > 0:
		note := "마지막 프로그램까지 봤어요"
		if msg := v.ctrl.ErrorMessage(); msg != "" {
			note = msg
		}
		b.WriteString("\n  " + formatter.Dim(note) + "\n")
	}

	return b.String()
}

// renderFilterBar summarizes the profile driving the current feed.
func (v *programListView) renderFilterBar() string {
	p := v.state.Profile

	parts := []string{}
	if v.state.LocationLabel != "" {
		parts = append(parts, formatter.StyleGreen.Render("● ")+formatter.Dim(v.state.LocationLabel))
	}
	if favs := p.Favorites(); len(favs) > 0 {
		parts = append(parts, formatter.Dim(strings.Join(favs, "·")))
	}
	if wd := p.Weekday(); len(wd) > 0 {
		parts = append(parts, formatter.StyleYellow.Render(fmt.Sprintf("요일 %s", strings.Join(wd, "·"))))
	}
	if ts := p.StartTime(); len(ts) > 0 {
		parts = append(parts, formatter.StyleYellow.Render(fmt.Sprintf("시간 %d개", len(ts))))
	}
	if len(parts) == 0 {
		return formatter.Dim("필터 없음")
	}
	return strings.Join(parts, formatter.Dim("  |  "))
}
