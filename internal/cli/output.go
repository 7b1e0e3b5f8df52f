package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/config"
	"github.com/matzehuels/algoviz/pkg/pipeline"
)

// renderFlags holds the output flags shared by heap, bst and render.
type renderFlags struct {
	formats     string
	output      string
	noCache     bool
	refresh     bool
	width       float64
	height      float64
	style       string
	seed        uint64
	steps       bool
	interactive bool
}

func (f *renderFlags) register(cmd *cobra.Command, withFrame bool) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), dot, graphviz, json (comma-separated)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results and rebuild")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: simple (default), handdrawn")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for the handdrawn style")
	cmd.Flags().BoolVar(&f.steps, "steps", false, "list the build steps below the drawing")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "add hover highlighting to SVG output")
	if withFrame {
		cmd.Flags().Float64Var(&f.width, "width", 0, "frame width")
		cmd.Flags().Float64Var(&f.height, "height", 0, "frame height")
	}
}

// apply copies flags onto opts, filling unset ones from the config file.
func (f *renderFlags) apply(cmd *cobra.Command, cfg config.RenderConfig, opts *pipeline.Options) {
	changed := cmd.Flags().Changed

	opts.Formats = parseFormats(f.formats)
	if len(opts.Formats) == 0 {
		opts.Formats = cfg.Formats
	}
	opts.Refresh = f.refresh
	opts.Interactive = f.interactive

	opts.Width, opts.Height = f.width, f.height
	if !changed("width") {
		opts.Width = cfg.Width
	}
	if !changed("height") {
		opts.Height = cfg.Height
	}
	opts.Style = f.style
	if !changed("style") {
		opts.Style = cfg.Style
	}
	opts.Seed = f.seed
	if !changed("seed") {
		opts.Seed = cfg.Seed
	}
	opts.Steps = f.steps
	if !changed("steps") {
		opts.Steps = cfg.Steps
	}
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams groups the inputs to writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // default base name when no output is given
	output    string
	cacheHit  bool
}

// writeArtifacts writes each rendered format to disk and prints the paths.
// With a single format and an explicit output, that exact path is used;
// otherwise output (or base) is treated as a base path and each format gets
// its own extension.
func writeArtifacts(p artifactWriteParams) error {
	paths := artifactPaths(p.formats, p.base, p.output)
	for _, format := range p.formats {
		path := paths[format]
		if err := os.WriteFile(path, p.artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if p.cacheHit {
		printSuccess("Rendered %s %s", strings.Join(p.formats, ", "), styleCached.Render("("+iconCached+")"))
	} else {
		printSuccess("Rendered %s", strings.Join(p.formats, ", "))
	}
	for _, format := range p.formats {
		printFile(paths[format])
	}
	return nil
}

func artifactPaths(formats []string, base, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	if output != "" {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	for _, format := range formats {
		paths[format] = base + extension(format)
	}
	return paths
}

func extension(format string) string {
	switch format {
	case pipeline.FormatDOT:
		return ".dot"
	case pipeline.FormatGraphviz:
		return ".graphviz.svg"
	case pipeline.FormatJSON:
		return ".json"
	}
	return ".svg"
}
