package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/sango/internal/enka"
)

// NewFetchCommand creates the fetch command.
func NewFetchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <uid>",
		Short: "Fetch a player's showcase from upstream and record it",
		Example: `  sango fetch 618285856
  sango fetch 618285856 --format json`,
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

			outcomes, err := rt.svc.FetchAndRecord(cmd.Context(), uid)
			if err != nil && len(outcomes) == 0 {
				_ = out.Error(err.Error(), nil)
				if enka.IsUpstream(err) {
					return WrapExitError(ExitFailure, "upstream fetch failed", err)
				}
				return WrapExitError(ExitFailure, "record snapshot", err)
			}

			if rootOpts.Format == "json" {
				return out.Success(outcomes)
			}
			for _, o := range outcomes {
				status := "known"
				if o.Inserted {
					status = "new"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "character %d  build %s  (%s, cv %.1f)\n",
					o.CharacterID, o.BuildID, status, o.CritValue)
			}
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "partial: %v\n", err)
			}
			return nil
		},
	}

	return cmd
}
