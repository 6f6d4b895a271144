package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sango/internal/loadout"
	"github.com/roach88/sango/internal/store"
)

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "build <id>",
		Short:         "Show one stored build by its content identifier",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if len(id) != loadout.IDLen {
				return WrapExitError(ExitCommandError, fmt.Sprintf("build id must be %d hex characters", loadout.IDLen), nil)
			}

			rt, err := newRuntime(rootOpts, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			view, err := rt.svc.GetBuild(cmd.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				_ = out.Error(fmt.Sprintf("build %s not found", id), nil)
				return WrapExitError(ExitFailure, "unknown build", err)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "load build", err)
			}

			if rootOpts.Format == "json" {
				return out.Success(view)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "build %s\n", view.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "  owner     %d\n", view.Player)
			fmt.Fprintf(cmd.OutOrStdout(), "  character %s (%d)\n", view.Character.Name, view.Character.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "  weapon    %s (%d)\n", view.Weapon.Name, view.Weapon.ID)
			for _, slot := range loadout.Slots() {
				artifact, ok := view.Slots[slot.String()]
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s  %s %s\n", slot, artifact.ID[:12], artifact.Main.Pair())
			}
			return nil
		},
	}

	return cmd
}
