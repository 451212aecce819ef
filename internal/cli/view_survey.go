package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/domain"
)

// surveySteps is the number of screens in the onboarding survey.
const surveySteps = 4

// surveySelectView is a single-choice survey step: pick one option,
// write it into the profile, advance to the next step.
type surveySelectView struct {
	state    *SharedState
	id       ViewID
	titleStr string
	question string
	step     int
	options  []string
	cursor   int

	apply func(p *domain.Profile, choice string)
	next  func(state *SharedState) View
}

func newGenderStepView(state *SharedState) *surveySelectView {
	options := []string{domain.GenderMale.DisplayName(), domain.GenderFemale.DisplayName()}
	v := &surveySelectView{
		state:    state,
		id:       ViewSurveyGender,
		titleStr: "설문",
		question: "성별을 선택해 주세요",
		step:     1,
		options:  options,
		apply: func(p *domain.Profile, choice string) {
			if choice == domain.GenderFemale.DisplayName() {
				p.SetGender(domain.GenderFemale)
			} else {
				p.SetGender(domain.GenderMale)
			}
		},
		next: func(state *SharedState) View { return newAgeStepView(state) },
	}
	v.preselect(state.Profile.Gender().DisplayName())
	return v
}

func newAgeStepView(state *SharedState) *surveySelectView {
	options := make([]string, len(domain.AgeGroups))
	for i, g := range domain.AgeGroups {
		options[i] = string(g)
	}
	v := &surveySelectView{
		state:    state,
		id:       ViewSurveyAge,
		titleStr: "연령대",
		question: "연령대를 선택해 주세요",
		step:     2,
		options:  options,
		apply: func(p *domain.Profile, choice string) {
			p.SetAgeGroup(domain.AgeGroup(choice))
		},
		next: func(state *SharedState) View { return newLocationStepView(state) },
	}
	v.preselect(string(state.Profile.AgeGroup()))
	return v
}

// preselect moves the cursor to a previously chosen option so re-entering
// the survey keeps earlier answers visible.
func (v *surveySelectView) preselect(choice string) {
	for i, opt := range v.options {
		if opt == choice {
			v.cursor = i
			return
		}
	}
}

func (v *surveySelectView) ID() ViewID    { return v.id }
func (v *surveySelectView) Title() string { return v.titleStr }

func (v *surveySelectView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "이동")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "다음")),
	}
}

func (v *surveySelectView) Init() tea.Cmd { return nil }

func (v *surveySelectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.options)-1 {
				v.cursor++
			}
		case "enter":
			v.apply(v.state.Profile, v.options[v.cursor])
			return v, pushView(v.next(v.state))
		}
	}
	return v, nil
}

func (v *surveySelectView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.RenderSteps(v.step, surveySteps) + "\n\n")
	b.WriteString("  " + formatter.Bold(v.question) + "\n\n")

	for i, opt := range v.options {
		marker := "  "
		label := formatter.StyleFg.Render(opt)
		if i == v.cursor {
			marker = formatter.StyleGreen.Render("▸ ")
			label = formatter.Bold(opt)
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", marker, label))
	}

	return b.String()
}
