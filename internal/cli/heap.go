package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/keys"
	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// heapCommand creates the heap command.
func (c *CLI) heapCommand() *cobra.Command {
	var (
		rf   renderFlags
		mode string
		ops  string
	)

	cmd := &cobra.Command{
		Use:   "heap [values...]",
		Short: "Build a binary heap and render it",
		Long: `Build a binary heap by inserting values in order, then render it.

Values that are not finite numbers are skipped. After the values are inserted,
an optional operation script runs against the heap:

  algoviz heap 5 3 8 --ops "extract, insert 1, pop"

Script entries are separated by commas, semicolons or newlines and may be
"insert N" (or "push N", or just "N"), "extract" (or "pop") and "clear".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := pipeline.Options{
				Structure: scene.KindHeap,
				Mode:      mode,
				Values:    keys.ParseAll(args),
				Ops:       ops,
			}
			rf.apply(cmd, cfg.Render, &opts)
			return c.runBuild(withLogger(cmd.Context(), c.Logger), opts, rf)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "max", "heap ordering: max or min")
	cmd.Flags().StringVar(&ops, "ops", "", "operation script applied after the values")
	rf.register(cmd, true)

	return cmd
}

// runBuild executes the pipeline, writes artifacts and prints a summary.
func (c *CLI) runBuild(ctx context.Context, opts pipeline.Options, rf renderFlags) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	runner, err := c.newRunner(ctx, rf.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s...", opts.Structure))
	spinner.Start()
	prog := newProgress(logger)

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Built %s with %d nodes", result.Scene.Kind, result.Stats.NodeCount))

	printStructure(result.Scene)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.BuildHit)

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   formatsOrDefault(opts.Formats),
		base:      result.Scene.Kind,
		output:    rf.output,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}

func formatsOrDefault(formats []string) []string {
	if len(formats) == 0 {
		return []string{pipeline.FormatSVG}
	}
	return formats
}
