package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sspots/fitfinder/internal/cli/formatter"
	"github.com/sspots/fitfinder/internal/contract"
	"github.com/sspots/fitfinder/internal/domain"
	"github.com/sspots/fitfinder/internal/feed"
)

// newSearchCmd creates the headless "search" subcommand. It runs the same
// fetch controller as the TUI feed, paging as far as --pages allows.
func newSearchCmd(app *App) *cobra.Command {
	var (
		gender    string
		age       string
		lat       float64
		lng       float64
		favorites []string
		weekday   []string
		startTime []string
		pages     int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search programs without the TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := domain.NewProfile()

			g, err := parseGender(gender)
			if err != nil {
				return err
			}
			profile.SetGender(g)
			profile.SetAgeGroup(domain.AgeGroup(age))
			profile.SetLocation(lat, lng)
			profile.SetFavorites(favorites)
			profile.SetWeekday(weekday)
			profile.SetStartTime(startTime)

			items, err := runSearch(cmd.Context(), app, profile, pages)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), feed.EmptyMessage)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderProgramTable(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&gender, "gender", "", "성별 (남성|여성)")
	cmd.Flags().StringVar(&age, "age", string(domain.AgeAdult), "연령대")
	cmd.Flags().Float64Var(&lat, "lat", domain.DefaultCoord.Lat, "위도")
	cmd.Flags().Float64Var(&lng, "lng", domain.DefaultCoord.Lng, "경도")
	cmd.Flags().StringSliceVar(&favorites, "favorite", nil, "관심 종목 (반복 지정 가능)")
	cmd.Flags().StringSliceVar(&weekday, "weekday", nil, "요일 필터")
	cmd.Flags().StringSliceVar(&startTime, "time", nil, "시작 시간 필터 (HH:MM)")
	cmd.Flags().IntVar(&pages, "pages", 1, "가져올 페이지 수")
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON으로 출력")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("favorite")

	return cmd
}

// runSearch drives the fetch controller through an initial reset and up to
// pages-1 continuations.
func runSearch(ctx context.Context, app *App, profile *domain.Profile, pages int) ([]contract.ProgramSummary, error) {
	ctrl := feed.NewController(profile)

	f, ok := ctrl.BeginReset()
	if !ok {
		return nil, errors.New(ctrl.ErrorMessage())
	}

	for page := 0; page < pages; page++ {
		items, err := app.Client.SearchPrograms(ctx, f.Request, f.Cursor)
		ctrl.Apply(f, items, err)
		if ctrl.Phase() == feed.PhaseErrored {
			return nil, errors.New(ctrl.ErrorMessage())
		}
		if ctrl.Exhausted() || page == pages-1 {
			break
		}
		f, ok = ctrl.BeginMore()
		if !ok {
			break
		}
	}

	return ctrl.Items(), nil
}

// parseGender accepts both display and wire forms.
func parseGender(s string) (domain.Gender, error) {
	switch strings.TrimSpace(s) {
	case "남성", "남", string(domain.GenderMale):
		return domain.GenderMale, nil
	case "여성", "여", string(domain.GenderFemale):
		return domain.GenderFemale, nil
	default:
		return "", fmt.Errorf("--gender 값이 올바르지 않습니다: %q", s)
	}
}
