package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sspots/fitfinder/internal/export"
)

// newHistoryCmd creates the headless "history" subcommand: print past
// routines as shareable cards.
func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print previously generated weekly routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Routines.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "아직 생성한 루틴이 없어요.")
				return nil
			}
			for i, rec := range records {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintln(cmd.OutOrStdout(), export.RenderCard(&rec.Routine))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "최대 출력 개수")
	return cmd
}
