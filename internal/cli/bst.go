package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/keys"
	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// bstCommand creates the bst command.
func (c *CLI) bstCommand() *cobra.Command {
	var (
		rf     renderFlags
		search string
	)

	cmd := &cobra.Command{
		Use:   "bst [values...]",
		Short: "Build a binary search tree and render it",
		Long: `Build a binary search tree by inserting values in order, then render it.

Values that are not finite numbers are skipped and duplicates are ignored.
Use --search to highlight the path a lookup for a key walks from the root.`,
		Example: `  algoviz bst 50 30 70 20 40 --search 40 -f svg,dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := pipeline.Options{
				Structure: scene.KindBST,
				Values:    keys.ParseAll(args),
			}
			if cmd.Flags().Changed("search") {
				v, ok := keys.Parse(search)
				if !ok {
					return errors.New(errors.ErrCodeInvalidInput, "invalid search key: %q", search)
				}
				opts.Highlight = &v
			}
			rf.apply(cmd, cfg.Render, &opts)
			return c.runBuild(withLogger(cmd.Context(), c.Logger), opts, rf)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "highlight the search path to this key")
	rf.register(cmd, true)

	return cmd
}
