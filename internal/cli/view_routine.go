package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sspots/fitfinder/internal/api"
	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/contract"
)

type routinePhase int

const (
	routineInput routinePhase = iota
	routineLoading
	routineResult
)

// routineMsg carries one generation outcome. seq guards against a result
// arriving after the user restarted the dialog.
type routineMsg struct {
	seq     int
	routine *contract.Routine
	err     error
}

// routineSavedMsg reports the shareable card export.
type routineSavedMsg struct {
	path string
	err  error
}

// routineView drives the AI weekly routine dialog: collect height and
// weight, generate, then show the plan with save and retry actions.
type routineView struct {
	state *SharedState
	phase routinePhase

	form   *huh.Form
	height string
	weight string

	seq     int
	spin    spinner.Model
	routine *contract.Routine
	errMsg  string

	savedPath string
	saveErr   error
}

func newRoutineView(state *SharedState) *routineView {
	v := &routineView{state: state}
	v.form = v.newForm()

	v.spin = spinner.New()
	v.spin.Spinner = spinner.Dot
	v.spin.Style = formatter.StyleGreen
	return v
}

func (v *routineView) newForm() *huh.Form {
	v.height = ""
	v.weight = ""
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("키 (cm)").
			Value(&v.height).
			Validate(validateMeasurement(90, 230)),
		huh.NewInput().
			Title("몸무게 (kg)").
			Value(&v.weight).
			Validate(validateMeasurement(20, 250)),
	))
}

// validateMeasurement accepts whole numbers inside a plausible range.
func validateMeasurement(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("숫자로 입력해 주세요")
		}
		if n < lo || n > hi {
			return errors.New("값을 다시 확인해 주세요")
		}
		return nil
	}
}

func (v *routineView) ID() ViewID    { return ViewRoutine }
func (v *routineView) Title() string { return "AI 루틴" }

// capturesInput reports whether raw keys must reach the embedded form.
func (v *routineView) capturesInput() bool { return v.phase == routineInput }

func (v *routineView) ShortHelp() []key.Binding {
	switch v.phase {
	case routineResult:
		return []key.Binding{
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "저장")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "다시 생성")),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "다음")),
		}
	}
}

func (v *routineView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *routineView) generateCmd() tea.Cmd {
	height, _ := strconv.Atoi(strings.TrimSpace(v.height))
	weight, _ := strconv.Atoi(strings.TrimSpace(v.weight))
	req := contract.NewRoutineRequest(v.state.Profile, height, weight)

	client := v.state.App.Client
	seq := v.seq
	return func() tea.Msg {
		r, err := client.GenerateRoutine(context.Background(), req)
		return routineMsg{seq: seq, routine: r, err: err}
	}
}

func (v *routineView) saveCmd() tea.Cmd {
	app := v.state.App
	routine := v.routine
	return func() tea.Msg {
		path, err := app.Exporter.Export(routine)
		if err != nil {
			return routineSavedMsg{err: err}
		}
		if _, err := app.Routines.Add(context.Background(), routine); err != nil {
			return routineSavedMsg{path: path, err: err}
		}
		return routineSavedMsg{path: path}
	}
}

func (v *routineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case routineMsg:
		if msg.seq != v.seq || v.phase != routineLoading {
			return v, nil
		}
		if msg.err != nil {
			// Back to the input phase so the user can retry.
			v.phase = routineInput
			v.errMsg = api.UserMessage(msg.err)
			v.form = v.newForm()
			return v, v.form.Init()
		}
		v.phase = routineResult
		v.routine = msg.routine
		v.errMsg = ""
		return v, nil

	case routineSavedMsg:
		v.savedPath = msg.path
		v.saveErr = msg.err
		return v, nil

	case spinner.TickMsg:
		if v.phase != routineLoading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			// Close the dialog; a generation still in flight becomes stale.
			v.seq++
			return v, popView()
		}
		switch v.phase {
		case routineResult:
			switch msg.String() {
			case "s":
				if v.savedPath == "" {
					return v, v.saveCmd()
				}
			case "n":
				v.seq++
				v.phase = routineInput
				v.routine = nil
				v.savedPath = ""
				v.saveErr = nil
				v.form = v.newForm()
				return v, v.form.Init()
			}
			return v, nil

		case routineLoading:
			return v, nil
		}
	}

	if v.phase == routineInput {
		form, cmd := v.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			v.form = f
		}
		if v.form.State == huh.StateCompleted {
			v.seq++
			v.phase = routineLoading
			v.errMsg = ""
			return v, tea.Batch(v.spin.Tick, v.generateCmd())
		}
		return v, cmd
	}

	return v, nil
}

func (v *routineView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	switch v.phase {
	case routineInput:
		b.WriteString("  " + formatter.Bold("AI 주간 운동 루틴 만들기") + "\n")
		b.WriteString("  " + formatter.Dim("설문 결과와 신체 정보로 일주일 운동 계획을 만들어 드려요") + "\n\n")
		if v.errMsg != "" {
			b.WriteString("  " + formatter.StyleRed.Render(v.errMsg) + "\n\n")
		}
		b.WriteString(v.form.View())

	case routineLoading:
		b.WriteString("  " + v.spin.View() + formatter.Dim(" 루틴을 생성하는 중... 잠시만 기다려 주세요") + "\n")

	case routineResult:
		b.WriteString(formatter.RenderRoutine(v.routine))
		b.WriteString("\n")
		switch {
		case v.saveErr != nil:
			b.WriteString("  " + formatter.StyleRed.Render("저장에 실패했어요: "+v.saveErr.Error()) + "\n")
		case v.savedPath != "":
			b.WriteString("  " + formatter.StyleGreen.Render("저장 완료") + " " + formatter.Dim(v.savedPath) + "\n")
		}
	}

	return b.String()
}
