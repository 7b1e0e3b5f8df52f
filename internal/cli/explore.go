package cli

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/heap"
	"github.com/matzehuels/algoviz/pkg/keys"
	"github.com/matzehuels/algoviz/pkg/layout"
	"github.com/matzehuels/algoviz/pkg/render/svg"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "explore <heap|bst> [values...]",
		Short: "Edit a heap or search tree interactively",
		Long: `Edit a heap or binary search tree interactively in the terminal.

Type a number and press enter to insert it. Other commands:

  x, extract, pop   remove the heap root
  ? N, find N       highlight the search path to N (bst)
  clear             remove every key
  w, write          write the current drawing to <structure>.svg
  q, quit           leave`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{scene.KindHeap, scene.KindBST},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newExploreModel(args[0], mode, keys.ParseAll(args[1:]))
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "max", "heap ordering: max or min")

	return cmd
}

// =============================================================================
// ExploreModel - Interactive structure editing
// =============================================================================

var (
	exploreNodeStyle      = lipgloss.NewStyle().Foreground(colorWhite)
	exploreHighlightStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	explorePromptStyle    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	exploreDimStyle       = lipgloss.NewStyle().Foreground(colorDim)
)

// maxVisibleSteps bounds the step log shown under the tree.
const maxVisibleSteps = 6

// ExploreModel is the bubbletea model for interactive editing.
type ExploreModel struct {
	Kind string

	heap   *heap.Heap
	values []float64 // bst insertion order
	search *float64
	steps  []string

	Input   string
	Message string
}

type savedMsg struct {
	path string
	err  error
}

func newExploreModel(kind, mode string, values []float64) (ExploreModel, error) {
	m := ExploreModel{Kind: kind}
	switch kind {
	case scene.KindHeap:
		md, err := heap.ParseMode(mode)
		if err != nil {
			return m, errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid heap mode")
		}
		m.heap = heap.New(md)
		for _, v := range values {
			m.heap.Insert(v)
		}
	case scene.KindBST:
		m.values = values
	default:
		return m, errors.New(errors.ErrCodeInvalidStructure, "invalid structure: %q (must be heap or bst)", kind)
	}
	m.steps = m.Scene().Steps
	return m, nil
}

// Scene lays out the current structure.
func (m ExploreModel) Scene() scene.Scene {
	if m.Kind == scene.KindHeap {
		return layout.Heap(m.heap, layout.Options{})
	}
	return layout.BST(m.values, layout.Options{Highlight: m.search})
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.Message = StyleWarning.Render("write failed: " + msg.err.Error())
		} else {
			m.Message = StyleSuccess.Render("wrote " + msg.path)
		}
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.Input)
			m.Input = ""
			return m.exec(line)
		case tea.KeyBackspace:
			if n := len(m.Input); n > 0 {
				m.Input = m.Input[:n-1]
			}
		case tea.KeySpace:
			m.Input += " "
		case tea.KeyRunes:
			m.Input += string(msg.Runes)
		}
	}
	return m, nil
}

// exec runs one command line.
func (m ExploreModel) exec(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return m, nil
	}
	m.Message = ""

	switch fields[0] {
	case "q", "quit", "exit":
		return m, tea.Quit
	case "w", "write":
		return m, m.write()
	case "clear":
		m.values, m.search, m.steps = nil, nil, nil
		if m.heap != nil {
			m.heap.Clear()
			m.steps = m.heap.Steps()
		}
		return m, nil
	case "x", "extract", "pop":
		if m.heap == nil {
			m.Message = StyleWarning.Render("extract only applies to heaps")
			return m, nil
		}
		if _, ok := m.heap.ExtractRoot(); !ok {
			m.Message = StyleWarning.Render("heap is empty")
		}
		m.steps = m.heap.Steps()
		return m, nil
	case "?", "find":
		if m.heap != nil || len(fields) != 2 {
			m.Message = StyleWarning.Render("usage: find N (bst only)")
			return m, nil
		}
		v, ok := keys.Parse(fields[1])
		if !ok {
			m.Message = StyleWarning.Render("not a number: " + fields[1])
			return m, nil
		}
		m.search = &v
		return m, nil
	}

	v, ok := keys.Parse(fields[len(fields)-1])
	if !ok || (len(fields) == 2 && fields[0] != "insert" && fields[0] != "push") || len(fields) > 2 {
		m.Message = StyleWarning.Render("unknown command: " + line)
		return m, nil
	}
	if m.size() >= errors.MaxValues {
		m.Message = StyleWarning.Render(fmt.Sprintf("at most %d keys", errors.MaxValues))
		return m, nil
	}
	if m.heap != nil {
		m.heap.Insert(v)
		m.steps = m.heap.Steps()
	} else {
		m.values = append(slices.Clone(m.values), v)
		m.steps = m.Scene().Steps
	}
	return m, nil
}

func (m ExploreModel) size() int {
	if m.heap != nil {
		return m.heap.Len()
	}
	return len(m.values)
}

// write renders the current scene to <kind>.svg off the update loop.
func (m ExploreModel) write() tea.Cmd {
	s := m.Scene()
	return func() tea.Msg {
		path := m.Kind + ".svg"
		err := os.WriteFile(path, svg.Render(s, svg.WithSteps()), 0644)
		return savedMsg{path: path, err: err}
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder
	s := m.Scene()

	title := "Binary Search Tree"
	if m.Kind == scene.KindHeap {
		title = strings.ToUpper(s.Mode[:1]) + s.Mode[1:] + " Heap"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("enter: run  w: write svg  esc: quit"))
	b.WriteString("\n\n")

	if s.IsEmpty() {
		b.WriteString(exploreDimStyle.Render("  (empty)"))
		b.WriteString("\n")
	} else {
		for i, level := range levels(s) {
			b.WriteString(exploreDimStyle.Render(fmt.Sprintf("  %2d │ ", i)))
			b.WriteString(strings.Join(level, "  "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.Kind == scene.KindHeap {
			b.WriteString(heapTable(s.Values))
		} else {
			b.WriteString(bstTable(s.Values))
		}
		b.WriteString("\n")
	}

	if n := len(m.steps); n > 0 {
		b.WriteString("\n")
		for _, step := range m.steps[max(0, n-maxVisibleSteps):] {
			b.WriteString(exploreDimStyle.Render("  " + step))
			b.WriteString("\n")
		}
	}

	if m.Message != "" {
		b.WriteString("\n" + m.Message + "\n")
	}
	b.WriteString("\n" + explorePromptStyle.Render("> ") + m.Input + "█\n")
	return b.String()
}

// levels groups node labels by depth, left to right.
func levels(s scene.Scene) [][]string {
	nodes := slices.Clone(s.Nodes)
	slices.SortStableFunc(nodes, func(a, b scene.Node) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})

	var out [][]string
	lastY := -1.0
	for _, n := range nodes {
		if n.Y != lastY {
			out = append(out, nil)
			lastY = n.Y
		}
		style := exploreNodeStyle
		if n.Highlight {
			style = exploreHighlightStyle
		}
		out[len(out)-1] = append(out[len(out)-1], style.Render(n.Label))
	}
	return out
}
