package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sspots/fitfinder/internal/repository"
)

// newResetCmd creates the headless "reset" subcommand: forget the saved
// survey so the next launch starts from scratch.
func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved survey profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Profiles.Clear(cmd.Context())
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "저장된 설문을 삭제했어요.")
			return nil
		},
	}
}
