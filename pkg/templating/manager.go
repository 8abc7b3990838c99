package templating

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed templates
var embedded embed.FS

const (
	pagePattern    = "*.tmpl.html"
	partialPattern = "*.part.html"
)

// TemplateManager owns the parsed template set. It loads the embedded pages and
// partials, applies any overrides, and executes templates by name.
// All methods are concurrent-safe.
type TemplateManager struct {
	logger        *slog.Logger
	config        *TemplateConfig
	templates     *template.Template
	templateNames []string
	funcMap       template.FuncMap
	mu            sync.RWMutex
}

// NewTemplateManager creates a TemplateManager and performs the initial load.
func NewTemplateManager(logger *slog.Logger, config *TemplateConfig) (*TemplateManager, error) {
	if config == nil {
		config = DefaultConfig()
	}
	tm := &TemplateManager{
		logger:  logger,
		config:  config,
		funcMap: makeFuncMap(),
	}
	if err := tm.Refresh(); err != nil {
		return nil, err
	}
	logger.Info("Template manager initialized", "templates", len(tm.templateNames), "override_dir", config.OverrideDir)
	return tm, nil
}

// GetConfig returns a copy of the current configuration.
func (tm *TemplateManager) GetConfig() TemplateConfig {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return *tm.config
}

// Refresh reparses the embedded templates and the override directory. On error
// the previously loaded set stays active.
func (tm *TemplateManager) Refresh() error {
	tm.mu.RLock()
	overrideDir := tm.config.OverrideDir
	tm.mu.RUnlock()

	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return fmt.Errorf("failed to open embedded templates: %w", err)
	}
	set := template.New("").Funcs(tm.funcMap)
	if set, err = set.ParseFS(sub, pagePattern, partialPattern); err != nil {
		return fmt.Errorf("failed to parse embedded templates: %w", err)
	}

	if overrideDir != "" {
		tm.logger.Info("Loading template overrides...", "dir", overrideDir)
		for _, pattern := range []string{pagePattern, partialPattern} {
			var parsed *template.Template
			parsed, err = set.ParseGlob(filepath.Join(overrideDir, pattern))
			if err != nil {
				if strings.Contains(err.Error(), "pattern matches no files") {
					continue
				}
				tm.logger.Error("failed to parse template overrides", "pattern", pattern, "error", err)
				return err
			}
			set = parsed
		}
	}

	var names []string
	for _, t := range set.Templates() {
		// Only full pages are listed; partials are executed through them.
		if strings.HasSuffix(t.Name(), ".tmpl.html") {
			names = append(names, t.Name())
		}
	}

	tm.mu.Lock()
	tm.templates = set
	tm.templateNames = names
	tm.mu.Unlock()

	tm.logger.Debug("Loaded templates", "pages", len(names))
	return nil
}

// Execute renders the template called name into w.
func (tm *TemplateManager) Execute(w io.Writer, name string, data any) error {
	tm.mu.RLock()
	set := tm.templates
	tm.mu.RUnlock()
	return set.ExecuteTemplate(w, name, data)
}

// GetTemplateNames returns the names of the loaded full pages.
func (tm *TemplateManager) GetTemplateNames() []string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return append([]string(nil), tm.templateNames...)
}
