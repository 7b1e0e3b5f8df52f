package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// renderCommand creates the render command for re-rendering a saved scene.
func (c *CLI) renderCommand() *cobra.Command {
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "render [scene.json]",
		Short: "Render a saved scene",
		Long: `Render a scene previously written with --format json.

The scene already carries every node position, so this step only draws it.
Results are cached alongside build results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := pipeline.Options{Logger: c.Logger}
			rf.apply(cmd, cfg.Render, &opts)
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, rf)
		},
	}

	rf.register(cmd, false)

	return cmd
}

// runRender loads the scene and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, rf renderFlags) error {
	s, err := scene.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, rf.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", s.Kind))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, s, "", opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	base := strings.TrimSuffix(input, filepath.Ext(input))
	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      base,
		output:    rf.output,
		cacheHit:  cacheHit,
	})
}
