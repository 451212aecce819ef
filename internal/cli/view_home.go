package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/domain"
	"github.com/sspots/fitfinder/internal/repository"
)

// savedProfileMsg carries the persisted survey profile, if any.
type savedProfileMsg struct {
	profile *domain.Profile
	err     error
}

// homeMenuItem is one selectable entry on the home screen.
type homeMenuItem struct {
	label  string
	hint   string
	action func(v *homeView) tea.Cmd
}

// homeView is the entry screen: start the survey, resume a saved one,
// or browse routine history.
type homeView struct {
	state  *SharedState
	cursor int
	saved  *domain.Profile
	err    error
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "선택")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "종료")),
	}
}

func (v *homeView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		p, err := app.Profiles.Get(context.Background())
		if errors.Is(err, repository.ErrNotFound) {
			return savedProfileMsg{}
		}
		return savedProfileMsg{profile: p, err: err}
	}
}

func (v *homeView) menu() []homeMenuItem {
	items := []homeMenuItem{
		{
			label: "설문 시작하기",
			hint:  "4단계 설문으로 맞춤 프로그램 찾기",
			action: func(v *homeView) tea.Cmd {
				v.state.Profile.Reset()
				v.state.LocationLabel = ""
				return pushView(newGenderStepView(v.state))
			},
		},
	}

	if v.saved != nil && v.saved.Complete() {
		items = append(items, homeMenuItem{
			label: "저장된 설문으로 보기",
			hint:  "지난 설문 결과로 바로 프로그램 탐색",
			action: func(v *homeView) tea.Cmd {
				*v.state.Profile = *v.saved
				v.state.LocationLabel = ""
				return pushView(newProgramListView(v.state))
			},
		})
	}

	items = append(items,
		homeMenuItem{
			label: "루틴 기록",
			hint:  "생성했던 주간 운동 루틴 다시 보기",
			action: func(v *homeView) tea.Cmd {
				return pushView(newHistoryView(v.state))
			},
		},
		homeMenuItem{
			label: "종료",
			action: func(v *homeView) tea.Cmd {
				return func() tea.Msg { return quitMsg{} }
			},
		},
	)
	return items
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedProfileMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.saved = msg.profile
		return v, nil

	case tea.KeyMsg:
		items := v.menu()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(items)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(items) {
				return v, items[v.cursor].action(v)
			}
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("내 주변 공공체육 프로그램 찾기") + "\n\n")

	for i, item := range v.menu() {
		marker := "  "
		label := formatter.StyleFg.Render(item.label)
		if i == v.cursor {
			marker = formatter.StyleGreen.Render("▸ ")
			label = formatter.Bold(item.label)
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", marker, label))
		if item.hint != "" {
			b.WriteString("      " + formatter.Dim(item.hint) + "\n")
		}
	}

	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render(v.err.Error()) + "\n")
	}

	return b.String()
}
