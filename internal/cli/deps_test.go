package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/buildcli/springinit/internal/catalog"
	"github.com/buildcli/springinit/internal/config"
	"github.com/buildcli/springinit/internal/ui"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			logger := newLogger(tt.level, io.Discard)
			ctx := context.Background()
			if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := logger.Enabled(ctx, slog.LevelWarn); got != tt.wantWarn {
				t.Errorf("warn enabled = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestNewLogger_WritesToStderr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger("info", &buf).Info("fetching catalog", "url", "https://start.spring.io")
	if !bytes.Contains(buf.Bytes(), []byte("fetching catalog")) {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestNewDependencies(t *testing.T) {
	t.Parallel()

	settings := config.NewDefaultSettings()
	settings.NonInteractive = true
	settings.Timeout = 5 * time.Second
	settings.Theme = "light"
	settings.NoColor = true

	d := newDependencies(settings, io.Discard)

	if !d.Headless.IsHeadless() {
		t.Error("non_interactive should force headless mode")
	}
	if d.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("HTTP timeout = %v, want 5s", d.HTTPClient.Timeout)
	}
	if d.Theme.Mode != "light" || !d.Theme.NoColor {
		t.Errorf("theme = %+v, want light without color", d.Theme)
	}
	if d.Progress == nil || d.Logger == nil {
		t.Error("progress and logger must be wired")
	}
	if _, ok := d.Prompter().(*ui.HeadlessPrompter); !ok {
		t.Errorf("Prompter() = %T, want *ui.HeadlessPrompter", d.Prompter())
	}
}

func TestDependencies_CatalogSource(t *testing.T) {
	t.Parallel()

	d := newDependencies(config.NewDefaultSettings(), io.Discard)

	if _, ok := d.CatalogSource(fixturePath).(catalog.FileSource); !ok {
		t.Errorf("CatalogSource(path) = %T, want catalog.FileSource", d.CatalogSource(fixturePath))
	}
	if _, ok := d.CatalogSource("").(*catalog.Fetcher); !ok {
		t.Errorf("CatalogSource(\"\") = %T, want *catalog.Fetcher", d.CatalogSource(""))
	}
}
