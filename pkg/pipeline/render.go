package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/render/dot"
	"github.com/matzehuels/algoviz/pkg/render/svg"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svg.Render(s, buildSVGOptions(s, opts)...)
		case FormatDOT:
			data = []byte(dot.ToDOT(s))
		case FormatGraphviz:
			data, err = dot.RenderSVG(ctx, dot.ToDOT(s))
		case FormatJSON:
			data, err = scene.Marshal(s)
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions maps pipeline options onto the native SVG renderer.
func buildSVGOptions(s scene.Scene, opts Options) []svg.Option {
	var svgOpts []svg.Option

	switch opts.Style {
	case scene.StyleHanddrawn:
		seed := opts.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		svgOpts = append(svgOpts, svg.WithStyle(svg.NewHanddrawn(seed)))
	case scene.StyleSimple:
		svgOpts = append(svgOpts, svg.WithStyle(svg.Simple{}))
	}

	if opts.Steps {
		svgOpts = append(svgOpts, svg.WithSteps())
	}
	if opts.Interactive {
		svgOpts = append(svgOpts, svg.WithInteraction())
	}
	svgOpts = append(svgOpts, svg.WithTitle(title(s)))

	return svgOpts
}

func title(s scene.Scene) string {
	if s.Kind == scene.KindHeap {
		return s.Mode + " heap"
	}
	return "binary search tree"
}
