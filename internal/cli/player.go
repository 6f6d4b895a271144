package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/sango/internal/store"
)

// NewPlayerCommand creates the player command.
func NewPlayerCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "player <uid>",
		Short:         "List a player's stored builds",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || uid <= 0 {
				return WrapExitError(ExitCommandError, "uid must be a positive integer", err)
			}

			rt, err := newRuntime(rootOpts, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			view, err := rt.svc.PlayerBuilds(cmd.Context(), uid)
			if errors.Is(err, store.ErrNotFound) {
				_ = out.Error(fmt.Sprintf("player %d not found", uid), nil)
				return WrapExitError(ExitFailure, "unknown player", err)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "list builds", err)
			}

			if rootOpts.Format == "json" {
				return out.Success(view)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (uid %d): %d builds\n", view.Player.Nickname, view.Player.ID, len(view.Builds))
			for _, b := range view.Builds {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", b.ID, b.DisplayName)
			}
			return nil
		},
	}

	return cmd
}
