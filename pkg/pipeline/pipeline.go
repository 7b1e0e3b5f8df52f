// Package pipeline provides the build → render pipeline shared by the CLI
// and the HTTP server.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: construct the heap or BST from the input and lay it out as a
//     [scene.Scene]
//  2. Render: generate output in the requested formats (SVG, DOT, Graphviz
//     SVG, JSON)
//
// Both stages are cached through a [cache.Cache]: scenes by their inputs,
// artifacts by scene key plus render options.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Structure: "bst",
//	    Values:    []float64{50, 30, 70},
//	    Formats:   []string{"svg"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/algoviz/pkg/cache"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/heap"
	"github.com/matzehuels/algoviz/pkg/layout"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default frame width.
	DefaultWidth = layout.DefaultWidth

	// DefaultHeight is the default frame height.
	DefaultHeight = layout.DefaultHeight

	// DefaultSeed is the default hand-drawn jitter seed.
	DefaultSeed = uint64(42)

	// DefaultStyle is the default visual style.
	DefaultStyle = scene.StyleSimple
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"      // native renderer
	FormatDOT      = "dot"      // Graphviz source
	FormatGraphviz = "graphviz" // SVG laid out by Graphviz
	FormatJSON     = "json"     // the scene itself
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatDOT:      true,
	FormatGraphviz: true,
	FormatJSON:     true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	scene.StyleSimple:    true,
	scene.StyleHanddrawn: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct doubles as the JSON body of API requests.
type Options struct {
	// Build options
	Structure string    `json:"structure"`
	Mode      string    `json:"mode,omitempty"`      // heap only: "max" (default) or "min"
	Values    []float64 `json:"values,omitempty"`    // keys inserted in order
	Ops       string    `json:"ops,omitempty"`       // heap only: operation script applied after Values
	Highlight *float64  `json:"highlight,omitempty"` // bst only: key whose search path is highlighted
	Width     float64   `json:"width,omitempty"`
	Height    float64   `json:"height,omitempty"`
	Refresh   bool      `json:"refresh,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Seed        uint64   `json:"seed,omitempty"`
	Steps       bool     `json:"steps,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the laid-out structure.
	Scene scene.Scene

	// SceneKey is the cache key of the scene, usable as a content hash.
	SceneKey string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit  bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, dot, graphviz, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// ValidateStructure checks that a structure kind is valid.
func ValidateStructure(structure string) error {
	if !scene.ValidKinds[structure] {
		return errors.New(errors.ErrCodeInvalidStructure, "invalid structure: %q (must be one of: heap, bst)", structure)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForBuild checks build inputs and sets build defaults.
func (o *Options) ValidateForBuild() error {
	if err := ValidateStructure(o.Structure); err != nil {
		return err
	}
	if o.Structure == scene.KindHeap {
		if _, err := heap.ParseMode(o.Mode); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid heap mode")
		}
	} else if o.Mode != "" || o.Ops != "" {
		return errors.New(errors.ErrCodeInvalidInput, "mode and ops only apply to heaps")
	}
	if o.Structure == scene.KindHeap && o.Highlight != nil {
		return errors.New(errors.ErrCodeInvalidInput, "highlight only applies to bst")
	}
	if err := errors.ValidateValues(o.Values); err != nil {
		return err
	}
	if err := errors.ValidateScript(o.Ops); err != nil {
		return err
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	o.SetBuildDefaults()
	return nil
}

// SetBuildDefaults sets default values for scene building.
func (o *Options) SetBuildDefaults() {
	if o.Structure == scene.KindHeap && o.Mode == "" {
		o.Mode = heap.Max.String()
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// SceneKeyOpts returns cache key options for scene building.
func (o *Options) SceneKeyOpts() cache.SceneKeyOpts {
	return cache.SceneKeyOpts{
		Structure: o.Structure,
		Mode:      o.Mode,
		Values:    o.Values,
		Ops:       o.Ops,
		Highlight: o.Highlight,
		Width:     o.Width,
		Height:    o.Height,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
// Options that do not affect a format are left out so they share entries.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if format == FormatSVG {
		k.Style = o.Style
		k.Steps = o.Steps
		k.Interactive = o.Interactive
		if o.Style == scene.StyleHanddrawn {
			k.Seed = o.Seed
		}
	}
	return k
}
