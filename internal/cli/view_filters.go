package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/domain"
)

// filterGridView is a toggle grid over a fixed option set, shared by the
// day and time filter modals. Every toggle writes straight back into the
// profile and broadcasts the change, so the feed underneath refetches
// while the modal stays open.
type filterGridView struct {
	state    *SharedState
	id       ViewID
	titleStr string
	question string
	options  []string
	columns  int
	cursor   int
	selected map[string]bool

	apply func(p *domain.Profile, selected []string)
}

func newDayFilterView(state *SharedState) *filterGridView {
	v := &filterGridView{
		state:    state,
		id:       ViewDayFilter,
		titleStr: "요일 필터",
		question: "어떤 요일이 좋으세요?",
		options:  domain.Weekdays,
		columns:  7,
		selected: make(map[string]bool),
		apply: func(p *domain.Profile, selected []string) {
			p.SetWeekday(selected)
		},
	}
	for _, d := range state.Profile.Weekday() {
		v.selected[d] = true
	}
	return v
}

func newTimeFilterView(state *SharedState) *filterGridView {
	v := &filterGridView{
		state:    state,
		id:       ViewTimeFilter,
		titleStr: "시간 필터",
		question: "언제 운동하고 싶으세요?",
		options:  domain.TimeSlots,
		columns:  6,
		selected: make(map[string]bool),
		apply: func(p *domain.Profile, selected []string) {
			p.SetStartTime(selected)
		},
	}
	for _, t := range state.Profile.StartTime() {
		v.selected[t] = true
	}
	return v
}

func (v *filterGridView) ID() ViewID    { return v.id }
func (v *filterGridView) Title() string { return v.titleStr }

func (v *filterGridView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "선택")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "전체 선택")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "초기화")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "닫기")),
	}
}

func (v *filterGridView) Init() tea.Cmd { return nil }

// chosen returns the selected options in canonical order, or nil when
// nothing is selected. Nil means "no filter", not "match nothing".
func (v *filterGridView) chosen() []string {
	var out []string
	for _, opt := range v.options {
		if v.selected[opt] {
			out = append(out, opt)
		}
	}
	return out
}

// commit writes the current selection into the profile and broadcasts it.
func (v *filterGridView) commit() tea.Cmd {
	v.apply(v.state.Profile, v.chosen())
	return notifyFiltersChanged()
}

func (v *filterGridView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		n := len(v.options)
		switch msg.String() {
		case "up", "k":
			if v.cursor-v.columns >= 0 {
				v.cursor -= v.columns
			}
		case "down", "j":
			if v.cursor+v.columns < n {
				v.cursor += v.columns
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
			opt := v.options[v.cursor]
			v.selected[opt] = !v.selected[opt]
			return v, v.commit()
		case "a":
			// Select all, or deselect all when everything is already on.
			all := len(v.chosen()) == len(v.options)
			for _, opt := range v.options {
				v.selected[opt] = !all
			}
			return v, v.commit()
		case "c":
			v.selected = make(map[string]bool)
			return v, v.commit()
		case "enter":
			return v, popView()
		}
	}
	return v, nil
}

func (v *filterGridView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.Bold(v.question) + "\n\n")

	cellWidth := 0
	for _, opt := range v.options {
		if len([]rune(opt)) > cellWidth {
			cellWidth = len([]rune(opt))
		}
	}

	for i, opt := range v.options {
		if i%v.columns == 0 {
			b.WriteString("  ")
		}

		label := formatter.StyleFg.Render(opt)
		if v.selected[opt] {
			label = formatter.StyleGreen.Render(opt)
		}
		pad := strings.Repeat(" ", cellWidth-len([]rune(opt)))
		if i == v.cursor {
			b.WriteString(formatter.Bold("[") + label + formatter.Bold("]") + pad + " ")
		} else {
			b.WriteString(" " + label + " " + pad + " ")
		}

		if (i+1)%v.columns == 0 || i == len(v.options)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if sel := v.chosen(); len(sel) > 0 {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d개 선택됨", len(sel))) + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("선택 없음 (전체 표시)") + "\n")
	}

	return b.String()
}
