package templating

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/CTAG07/Sitewright/pkg/content"
	"github.com/CTAG07/Sitewright/pkg/preview"
	"github.com/CTAG07/Sitewright/pkg/wizard"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func setupTestManager(tb testing.TB, config *TemplateConfig) *TemplateManager {
	tb.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tm, err := NewTemplateManager(logger, config)
	if err != nil {
		tb.Fatalf("NewTemplateManager() failed: %v", err)
	}
	return tm
}

func sampleDocument() preview.Document {
	return preview.Build(wizard.WebsiteData{
		BusinessName: "Sweet Crumbs",
		BusinessType: content.Bakery,
		Services:     "Cakes, Pastries, Bread, Cookies, Catering, Coffee",
		ColorScheme:  content.Warm,
		GeneratedAt:  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	})
}

var whitespace = regexp.MustCompile(`\s+`)

func normalizeHTML(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

func TestTemplateManager_EmbeddedPages(t *testing.T) {
	tm := setupTestManager(t, nil)

	names := tm.GetTemplateNames()
	for _, want := range []string{"landing.tmpl.html", "builder.tmpl.html", "preview.tmpl.html", "site.tmpl.html"} {
		if !slices.Contains(names, want) {
			t.Errorf("GetTemplateNames() = %v, missing %q", names, want)
		}
	}
	for _, name := range names {
		if strings.HasSuffix(name, ".part.html") {
			t.Errorf("GetTemplateNames() lists partial %q", name)
		}
	}
}

func TestTemplateManager_RenderSite(t *testing.T) {
	tm := setupTestManager(t, nil)

	var buf bytes.Buffer
	if err := tm.Execute(&buf, "site.tmpl.html", sampleDocument()); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "data-service-card"); got != preview.MaxServiceCards {
		t.Errorf("rendered %d service cards, want %d", got, preview.MaxServiceCards)
	}
	for _, want := range []string{
		"<title>Sweet Crumbs</title>",
		"Freshly baked with love every day",
		"#ea580c20",
		"info@sweetcrumbs.com",
		"© 2026 Sweet Crumbs. All rights reserved.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered site missing %q", want)
		}
	}
	if strings.Contains(out, "ZgotmplZ") {
		t.Error("rendered site contains a rejected CSS or URL value")
	}

	snaps.WithConfig(snaps.Ext(".html")).MatchStandaloneSnapshot(t, normalizeHTML(out))
}

func TestTemplateManager_EscapesUserInput(t *testing.T) {
	tm := setupTestManager(t, nil)
	doc := preview.Build(wizard.WebsiteData{
		BusinessName: `<script>alert("x")</script>`,
		BusinessType: content.Other,
	})

	var buf bytes.Buffer
	if err := tm.Execute(&buf, "site.tmpl.html", doc); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert") {
		t.Error("business name was rendered unescaped")
	}
}

func TestTemplateManager_Overrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "landing.tmpl.html"), []byte(`custom landing`), 0644); err != nil {
		t.Fatalf("failed to write override: %v", err)
	}

	cfg := DefaultConfig()
	cfg.OverrideDir = dir
	tm := setupTestManager(t, cfg)

	var buf bytes.Buffer
	if err := tm.Execute(&buf, "landing.tmpl.html", nil); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if got := buf.String(); got != "custom landing" {
		t.Errorf("Execute() = %q, want the override", got)
	}

	// A broken override keeps the previous set active.
	if err := os.WriteFile(filepath.Join(dir, "landing.tmpl.html"), []byte(`{{if}}`), 0644); err != nil {
		t.Fatalf("failed to write override: %v", err)
	}
	if err := tm.Refresh(); err == nil {
		t.Fatal("Refresh() with a broken override should fail")
	}
	buf.Reset()
	if err := tm.Execute(&buf, "landing.tmpl.html", nil); err != nil {
		t.Fatalf("Execute() after failed refresh: %v", err)
	}
	if got := buf.String(); got != "custom landing" {
		t.Errorf("Execute() after failed refresh = %q, want previous override", got)
	}
}

func TestTemplateManager_EmptyOverrideDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OverrideDir = t.TempDir()
	tm := setupTestManager(t, cfg)

	if len(tm.GetTemplateNames()) == 0 {
		t.Error("expected embedded pages when override dir is empty")
	}
}

func TestTemplateManager_WatchRequiresDir(t *testing.T) {
	tm := setupTestManager(t, nil)
	if err := tm.Watch(t.Context()); err != ErrNoOverrideDir {
		t.Errorf("Watch() error = %v, want ErrNoOverrideDir", err)
	}
}

func TestTemplateManager_ConcurrentExecute(t *testing.T) {
	tm := setupTestManager(t, nil)
	doc := sampleDocument()

	var want bytes.Buffer
	if err := tm.Execute(&want, "site.tmpl.html", doc); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				var buf bytes.Buffer
				if err := tm.Execute(&buf, "site.tmpl.html", doc); err != nil {
					t.Errorf("Execute() failed: %v", err)
					return
				}
				if buf.String() != want.String() {
					t.Error("concurrent Execute() produced different output")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestTemplateManager_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "landing.tmpl.html")
	if err := os.WriteFile(page, []byte(`first version`), 0644); err != nil {
		t.Fatalf("failed to write override: %v", err)
	}

	cfg := DefaultConfig()
	cfg.OverrideDir = dir
	cfg.ReloadDebounceMs = 20
	tm := setupTestManager(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- tm.Watch(ctx) }()

	render := func() string {
		var buf bytes.Buffer
		if err := tm.Execute(&buf, "landing.tmpl.html", nil); err != nil {
			t.Fatalf("Execute() failed: %v", err)
		}
		return buf.String()
	}
	if got := render(); got != "first version" {
		t.Fatalf("Execute() = %q, want the initial override", got)
	}

	// Keep rewriting until the watcher has picked the change up, since the
	// first write may land before the directory is being watched.
	deadline := time.Now().Add(5 * time.Second)
	for render() != "second version" {
		if time.Now().After(deadline) {
			t.Fatal("override change was never reloaded")
		}
		if err := os.WriteFile(page, []byte(`second version`), 0644); err != nil {
			t.Fatalf("failed to rewrite override: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() returned %v after cancel, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch() did not return after cancel")
	}
}
