package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/config"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/scene"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,dot,json", []string{"svg", "dot", "json"}},
		{"spaces and blanks", " svg, ,graphviz ", []string{"svg", "graphviz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		base    string
		output  string
		want    map[string]string
	}{
		{
			name:    "default base",
			formats: []string{"svg", "json"},
			base:    "heap",
			want:    map[string]string{"svg": "heap.svg", "json": "heap.json"},
		},
		{
			name:    "single format exact output",
			formats: []string{"dot"},
			base:    "bst",
			output:  "tree.gv",
			want:    map[string]string{"dot": "tree.gv"},
		},
		{
			name:    "output as base path",
			formats: []string{"svg", "graphviz"},
			base:    "bst",
			output:  "out/tree.svg",
			want:    map[string]string{"svg": "out/tree.svg", "graphviz": "out/tree.graphviz.svg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artifactPaths(tt.formats, tt.base, tt.output); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("artifactPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderFlagsApply(t *testing.T) {
	var rf renderFlags
	cmd := &cobra.Command{Use: "test"}
	rf.register(cmd, true)
	if err := cmd.ParseFlags([]string{"--width", "1000", "--style", "handdrawn"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default().Render
	cfg.Height = 700
	cfg.Seed = 9
	cfg.Formats = []string{"svg", "dot"}

	var opts pipeline.Options
	rf.apply(cmd, cfg, &opts)

	if opts.Width != 1000 {
		t.Errorf("Width = %v, flag should win", opts.Width)
	}
	if opts.Height != 700 || opts.Seed != 9 {
		t.Errorf("Height = %v, Seed = %v, want config values", opts.Height, opts.Seed)
	}
	if opts.Style != "handdrawn" {
		t.Errorf("Style = %q", opts.Style)
	}
	if !reflect.DeepEqual(opts.Formats, []string{"svg", "dot"}) {
		t.Errorf("Formats = %v, want config formats", opts.Formats)
	}
}

func TestCacheDir(t *testing.T) {
	dir, err := cacheDir(config.CacheConfig{Dir: "/tmp/custom"})
	if err != nil || dir != "/tmp/custom" {
		t.Errorf("cacheDir() = %q, %v; want configured dir", dir, err)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err = cacheDir(config.CacheConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestShareDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	dir, err := shareDir(config.ShareConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/data", appName, "shares"); dir != want {
		t.Errorf("shareDir() = %q, want %q", dir, want)
	}
}

func TestHeapTable(t *testing.T) {
	out := heapTable([]float64{8, 5, 3, 1})
	for _, want := range []string{"Index", "Key", "8", "5", "1", "—"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestBSTTable(t *testing.T) {
	out := bstTable([]float64{50, 30, 70, 30})
	if !strings.Contains(out, "30 50 70") {
		t.Errorf("table missing in-order keys:\n%s", out)
	}
}

func TestHeapCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "h")

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.toml"),
		"heap", "5", "3", "8", "oops",
		"--mode", "min", "--ops", "extract",
		"-f", "svg,json", "-o", out, "--no-cache",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	s, err := scene.ReadFile(out + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != "min" || !reflect.DeepEqual(s.Values, []float64{5, 8}) {
		t.Errorf("scene mode %q values %v, want min [5 8]", s.Mode, s.Values)
	}
	if _, err := os.Stat(out + ".svg"); err != nil {
		t.Errorf("svg not written: %v", err)
	}
}

func TestBSTCommandRejectsBadSearch(t *testing.T) {
	dir := t.TempDir()
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", filepath.Join(dir, "missing.toml"), "bst", "1", "2", "--search", "abc"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for non-numeric search key")
	}
}

// =============================================================================
// Explore
// =============================================================================

func typeLine(m tea.Model, line string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestExploreHeap(t *testing.T) {
	m, err := newExploreModel("heap", "max", []float64{3, 1})
	if err != nil {
		t.Fatal(err)
	}

	var model tea.Model = m
	model = typeLine(model, "9")
	model = typeLine(model, "insert 4")
	got := model.(ExploreModel).Scene().Values
	if !reflect.DeepEqual(got, []float64{9, 4, 3, 1}) {
		t.Errorf("after inserts = %v", got)
	}

	model = typeLine(model, "x")
	if root := model.(ExploreModel).Scene().Nodes[0].Label; root != "4" {
		t.Errorf("root after extract = %q, want 4", root)
	}

	model = typeLine(model, "bogus words here")
	if !strings.Contains(model.(ExploreModel).Message, "unknown command") {
		t.Errorf("Message = %q", model.(ExploreModel).Message)
	}

	model = typeLine(model, "clear")
	s := model.(ExploreModel).Scene()
	if !s.IsEmpty() {
		t.Error("clear should empty the heap")
	}
	if !reflect.DeepEqual(s.Steps, []string{"Cleared heap"}) {
		t.Errorf("steps after clear = %q", s.Steps)
	}
}

func TestExploreKeyLimit(t *testing.T) {
	tests := []struct {
		kind, mode string
	}{
		{"bst", ""},
		{"heap", "min"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			full := make([]float64, errors.MaxValues)
			for i := range full {
				full[i] = float64(i)
			}
			m, err := newExploreModel(tt.kind, tt.mode, full)
			if err != nil {
				t.Fatal(err)
			}

			model := typeLine(m, "9999")
			got := model.(ExploreModel)
			if got.size() != errors.MaxValues {
				t.Errorf("size = %d, want %d", got.size(), errors.MaxValues)
			}
			if !strings.Contains(got.Message, "at most") {
				t.Errorf("Message = %q", got.Message)
			}
		})
	}
}

func TestExploreBSTSearch(t *testing.T) {
	m, err := newExploreModel("bst", "", []float64{50, 30, 70})
	if err != nil {
		t.Fatal(err)
	}

	var model tea.Model = m
	model = typeLine(model, "find 30")
	highlighted := 0
	for _, n := range model.(ExploreModel).Scene().Nodes {
		if n.Highlight {
			highlighted++
		}
	}
	if highlighted != 2 {
		t.Errorf("highlighted = %d, want 2 (50 and 30)", highlighted)
	}

	model = typeLine(model, "x")
	if !strings.Contains(model.(ExploreModel).Message, "only applies to heaps") {
		t.Errorf("Message = %q", model.(ExploreModel).Message)
	}

	if view := model.View(); !strings.Contains(view, "Binary Search Tree") {
		t.Errorf("view missing title:\n%s", view)
	}
}

func TestExploreRejectsUnknownStructure(t *testing.T) {
	if _, err := newExploreModel("list", "", nil); err == nil {
		t.Error("expected error")
	}
}

func TestLevels(t *testing.T) {
	s := scene.Scene{Nodes: []scene.Node{
		{Label: "b", X: 300, Y: 130},
		{Label: "r", X: 400, Y: 50},
		{Label: "a", X: 200, Y: 130},
	}}
	got := levels(s)
	if len(got) != 2 || len(got[0]) != 1 || len(got[1]) != 2 {
		t.Fatalf("levels = %v", got)
	}
	if !strings.Contains(got[1][0], "a") || !strings.Contains(got[1][1], "b") {
		t.Errorf("level 1 should be left to right: %v", got[1])
	}
}

func TestCompletionCommand(t *testing.T) {
	var buf strings.Builder
	root := New(os.Stderr, LogInfo).RootCommand()
	root.SetOut(&buf)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "algoviz") {
		t.Error("completion script should mention the command name")
	}
}
