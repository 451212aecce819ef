package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/domain"
	"github.com/sspots/fitfinder/internal/geo"
)

// locationResolvedMsg carries the display label for the pending coordinate.
type locationResolvedMsg struct {
	coord domain.Coord
	label string
	err   error
}

// geocodedMsg carries the result of an address search.
type geocodedMsg struct {
	query string
	coord domain.Coord
	err   error
}

// locationStepView is survey step 3: pick the coordinate the program
// search is centered on. Defaults to Seoul City Hall when the user has
// no better answer, mirrors an address search via the map provider.
type locationStepView struct {
	state *SharedState

	pending   domain.Coord
	label     string
	resolving bool
	errMsg    string
}

func newLocationStepView(state *SharedState) *locationStepView {
	pending := state.Profile.Location()
	if pending.IsZero() {
		pending = domain.DefaultCoord
	}
	return &locationStepView{state: state, pending: pending, resolving: true}
}

func (v *locationStepView) ID() ViewID    { return ViewSurveyLocation }
func (v *locationStepView) Title() string { return "위치" }

func (v *locationStepView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "주소 검색")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "기본 위치")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "이 위치로")),
	}
}

func (v *locationStepView) Init() tea.Cmd {
	return v.resolveLabel(v.pending)
}

// resolveLabel reverse-geocodes a coordinate into a readable address.
func (v *locationStepView) resolveLabel(coord domain.Coord) tea.Cmd {
	maps := v.state.App.Maps
	return func() tea.Msg {
		label, err := maps.ReverseGeocode(context.Background(), coord)
		return locationResolvedMsg{coord: coord, label: label, err: err}
	}
}

// searchAddressCmd opens an address input wizard; on submit the entered
// address is geocoded.
func (v *locationStepView) searchAddressCmd() tea.Cmd {
	var query string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("주소 검색").
			Description("도로명 또는 지번 주소를 입력해 주세요").
			Value(&query).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("주소를 입력해 주세요")
				}
				return nil
			}),
	))

	maps := v.state.App.Maps
	done := func() tea.Cmd {
		q := strings.TrimSpace(query)
		return func() tea.Msg {
			coord, err := maps.Geocode(context.Background(), q)
			return geocodedMsg{query: q, coord: coord, err: err}
		}
	}
	return pushView(newWizardView(v.state, "주소 검색", form, done))
}

func (v *locationStepView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case locationResolvedMsg:
		if msg.coord != v.pending {
			return v, nil
		}
		v.resolving = false
		if msg.err != nil {
			// The coordinate is still usable without a pretty label.
			v.label = ""
			return v, nil
		}
		v.label = msg.label
		return v, nil

	case geocodedMsg:
		switch {
		case errors.Is(msg.err, geo.ErrNoMatch):
			v.errMsg = "주소를 찾지 못했어요. 다시 검색해 보세요."
		case errors.Is(msg.err, geo.ErrProviderUnavailable):
			v.errMsg = "주소 검색을 사용할 수 없어요. 기본 위치를 이용해 주세요."
		case msg.err != nil:
			v.errMsg = "주소 검색에 실패했어요. 잠시 후 다시 시도해 주세요."
		default:
			v.errMsg = ""
			v.pending = msg.coord
			v.label = msg.query
			v.resolving = true
			return v, v.resolveLabel(msg.coord)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return v, v.searchAddressCmd()
		case "d":
			v.errMsg = ""
			v.pending = domain.DefaultCoord
			v.resolving = true
			return v, v.resolveLabel(v.pending)
		case "enter":
			v.state.Profile.SetLocation(v.pending.Lat, v.pending.Lng)
			v.state.LocationLabel = v.label
			return v, pushView(newFavoritesStepView(v.state))
		}
	}
	return v, nil
}

func (v *locationStepView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.RenderSteps(3, surveySteps) + "\n\n")
	b.WriteString("  " + formatter.Bold("어느 지역의 프로그램을 찾을까요?") + "\n\n")

	label := v.label
	if label == "" {
		if v.resolving {
			label = "주소 확인 중..."
		} else {
			label = "선택한 좌표"
		}
	}
	b.WriteString("  " + formatter.StyleGreen.Render("● ") + formatter.StyleFg.Render(label) + "\n")
	b.WriteString("  " + formatter.Dim(coordString(v.pending)) + "\n")

	if v.errMsg != "" {
		b.WriteString("\n  " + formatter.StyleRed.Render(v.errMsg) + "\n")
	}

	return b.String()
}

func coordString(c domain.Coord) string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}
