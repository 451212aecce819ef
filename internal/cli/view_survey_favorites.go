package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/domain"
)

// favoritesColumns is the grid width of the sport picker.
const favoritesColumns = 4

// profileSavedMsg reports the outcome of persisting the finished survey.
type profileSavedMsg struct{ err error }

// favoritesStepView is the final survey step: pick one or more favorite
// sports. Completing it persists the profile and opens the program feed.
type favoritesStepView struct {
	state    *SharedState
	cursor   int
	selected map[string]bool
	errMsg   string
}

func newFavoritesStepView(state *SharedState) *favoritesStepView {
	selected := make(map[string]bool)
	for _, f := range state.Profile.Favorites() {
		selected[f] = true
	}
	return &favoritesStepView{state: state, selected: selected}
}

func (v *favoritesStepView) ID() ViewID    { return ViewSurveyFavorites }
func (v *favoritesStepView) Title() string { return "관심 종목" }

func (v *favoritesStepView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "선택")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "완료")),
	}
}

func (v *favoritesStepView) Init() tea.Cmd { return nil }

// chosen returns the selected sports in canonical order.
func (v *favoritesStepView) chosen() []string {
	var out []string
	for _, s := range domain.SportCategories {
		if v.selected[s] {
			out = append(out, s)
		}
	}
	return out
}

func (v *favoritesStepView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		// A save failure is not fatal; the feed still works this session.
		return v, replaceView(newProgramListView(v.state))

	case tea.KeyMsg:
		n := len(domain.SportCategories)
		switch msg.String() {
		case "up", "k":
			if v.cursor-favoritesColumns >= 0 {
				v.cursor -= favoritesColumns
			}
		case "down", "j":
			if v.cursor+favoritesColumns < n {
				v.cursor += favoritesColumns
			}
		case "left", "h":
			if v.cursor > 0 {
				v.cursor--
			}
		case "right", "l":
			if v.cursor < n-1 {
				v.cursor++
			}
		case " ":
			sport := domain.SportCategories[v.cursor]
			v.selected[sport] = !v.selected[sport]
			v.errMsg = ""
		case "enter":
			chosen := v.chosen()
			if len(chosen) == 0 {
				v.errMsg = "관심 종목을 한 개 이상 선택해 주세요."
				return v, nil
			}
			v.state.Profile.SetFavorites(chosen)
			return v, v.saveProfile()
		}
	}
	return v, nil
}

// saveProfile persists the completed survey so the next launch can resume.
func (v *favoritesStepView) saveProfile() tea.Cmd {
	app := v.state.App
	snapshot := *v.state.Profile
	return func() tea.Msg {
		err := app.Profiles.Save(context.Background(), &snapshot)
		return profileSavedMsg{err: err}
	}
}

func (v *favoritesStepView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.RenderSteps(4, surveySteps) + "\n\n")
	b.WriteString("  " + formatter.Bold("관심 있는 종목을 모두 골라 주세요") + "\n\n")

	for i, sport := range domain.SportCategories {
		if i%favoritesColumns == 0 {
			b.WriteString("  ")
		}

		check := "○"
		label := formatter.StyleFg.Render(sport)
		if v.selected[sport] {
			check = formatter.StyleGreen.Render("●")
			label = formatter.StyleGreen.Render(sport)
		}
		cell := fmt.Sprintf("%s %s", check, label)
		if i == v.cursor {
			cell = formatter.Bold("[") + cell + formatter.Bold("]")
		} else {
			cell = " " + cell + " "
		}
		b.WriteString(cell + "  ")

		if (i+1)%favoritesColumns == 0 || i == len(domain.SportCategories)-1 {
			b.WriteString("\n")
		}
	}

	if n := len(v.chosen()); n > 0 {
		b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d개 선택됨", n)) + "\n")
	}
	if v.errMsg != "" {
		b.WriteString("\n  " + formatter.StyleRed.Render(v.errMsg) + "\n")
	}

	return b.String()
}
