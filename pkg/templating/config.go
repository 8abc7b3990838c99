package templating

// TemplateConfig holds all configuration options for the templating engine.
type TemplateConfig struct {
	// OverrideDir is an optional directory of *.tmpl.html and *.part.html files
	// that replace the embedded templates with the same file name.
	OverrideDir string `json:"override_dir"`

	// WatchOverrides reloads templates whenever a file in OverrideDir changes.
	WatchOverrides bool `json:"watch_overrides"`

	// ReloadDebounceMs is how long to wait after the last change before reloading.
	ReloadDebounceMs int `json:"reload_debounce_ms"`
}

// DefaultConfig returns a TemplateConfig that serves only the embedded templates.
func DefaultConfig() *TemplateConfig {
	return &TemplateConfig{
		OverrideDir:      "",
		WatchOverrides:   false,
		ReloadDebounceMs: 500,
	}
}
