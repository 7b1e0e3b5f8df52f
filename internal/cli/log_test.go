package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("ready")

	stamp := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `)
	if !stamp.MatchString(buf.String()) {
		t.Errorf("want HH:MM:SS.cc prefix, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, LogInfo))
	prog.done("Built heap with 3 nodes")

	pattern := regexp.MustCompile(`Built heap with 3 nodes \(\d+(\.\d+)?(ms|s)\)`)
	if !pattern.MatchString(buf.String()) {
		t.Errorf("got %q, want message followed by elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should fall back to log.Default()")
	}

	custom := newLogger(&bytes.Buffer{}, LogInfo)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

// Build steps are logged at debug level, so only --verbose runs show them.
func TestBuildStepsLogging(t *testing.T) {
	tests := []struct {
		name      string
		level     log.Level
		wantSteps bool
	}{
		{"info", LogInfo, false},
		{"verbose", LogDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var buf bytes.Buffer
			c := New(&buf, tt.level)
			root := c.RootCommand()
			root.SetArgs([]string{
				"--config", filepath.Join(dir, "missing.toml"),
				"bst", "50", "30", "50",
				"-o", filepath.Join(dir, "tree.svg"), "--no-cache",
			})
			if err := root.Execute(); err != nil {
				t.Fatalf("Execute: %v", err)
			}

			out := buf.String()
			if !strings.Contains(out, "Built bst with 2 nodes") {
				t.Errorf("missing progress line in %q", out)
			}
			if got := strings.Contains(out, "Inserted 30 into BST"); got != tt.wantSteps {
				t.Errorf("step logged = %v, want %v:\n%s", got, tt.wantSteps, out)
			}
		})
	}
}
