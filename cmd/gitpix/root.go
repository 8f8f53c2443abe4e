package main

import (
	"github.com/spf13/cobra"

	"github.com/bashhack/gitpix/internal/errors"
)

const longDescription = `gitpix paints a ghost being chased by Pac-Man onto your contribution graph.

Without flags it prints a preview of the heatmap and the number of commits
needed. With --commit it creates those commits in the repository: empty,
backdated commits, one per unit of weight per background cell. Nothing is
pushed; review the history and run git push yourself.

Settings can also come from a YAML file (--config or GITPIX_CONFIG) and from
GITPIX_REPO_PATH, GITPIX_WEIGHT, GITPIX_MESSAGE_PREFIX, GITPIX_PROGRESS_EVERY,
GITPIX_STRICT, GITPIX_VERBOSE, GITPIX_DEBUG and GITPIX_LOG_FILE. Flags win
over the environment, which wins over the file.`

const examples = `  gitpix                          # Preview the heatmap
  gitpix --commit                 # Create the commits in the current repository
  gitpix --repo ~/art --commit    # Create them somewhere else
  gitpix --weight 4 --commit      # Lighter shade, fewer commits
  gitpix --commit --strict        # Exit non-zero if any commit fails`

// newRootCommand builds the gitpix command around app. Flags bind straight
// into app.Config, so they override whatever was loaded before.
func newRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitpix",
		Short:         "Paint pixel art onto your contribution graph",
		Long:          longDescription,
		Example:       examples,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Config.ApplyFlags()
			return app.Run(cmd.Context())
		},
	}

	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewConfigError("flags", nil, errors.Wrap(errors.ErrInvalidFlag, err.Error()))
	})

	app.Config.SetupFlags(cmd.Flags())
	return cmd
}
