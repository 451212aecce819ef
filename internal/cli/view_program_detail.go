package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sspots/fitfinder/internal/api"
	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/contract"
)

// detailLoadedMsg carries a fetched program detail.
type detailLoadedMsg struct {
	programID int
	detail    *contract.ProgramDetail
	err       error
}

// programDetailView shows the full record of one program, including how
// to get there and where to book.
type programDetailView struct {
	state     *SharedState
	programID int
	name      string

	detail  *contract.ProgramDetail
	loading bool
	errMsg  string
}

func newProgramDetailView(state *SharedState, programID int, name string) *programDetailView {
	return &programDetailView{
		state:     state,
		programID: programID,
		name:      name,
		loading:   true,
	}
}

func (v *programDetailView) ID() ViewID    { return ViewProgramDetail }
func (v *programDetailView) Title() string { return v.name }

func (v *programDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "다시 불러오기")),
	}
}

func (v *programDetailView) Init() tea.Cmd {
	return v.load()
}

func (v *programDetailView) load() tea.Cmd {
	client := v.state.App.Client
	id := v.programID
	return func() tea.Msg {
		d, err := client.ProgramDetail(context.Background(), id)
		return detailLoadedMsg{programID: id, detail: d, err: err}
	}
}

func (v *programDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.programID != v.programID {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.errMsg = api.UserMessage(msg.err)
			return v, nil
		}
		v.errMsg = ""
		v.detail = msg.detail
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			v.errMsg = ""
			return v, v.load()
		}
	}
	return v, nil
}

func (v *programDetailView) View() string {
	switch {
	case v.loading:
		return "\n  " + formatter.Dim("상세 정보를 불러오는 중...") + "\n"
	case v.errMsg != "":
		return "\n  " + formatter.StyleRed.Render(v.errMsg) + "\n\n  " + formatter.Dim("r: 다시 시도") + "\n"
	case v.detail == nil:
		return ""
	}
	return "\n" + formatter.RenderProgramDetail(v.detail)
}
