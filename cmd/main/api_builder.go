package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/CTAG07/Sitewright/pkg/preview"
	"github.com/CTAG07/Sitewright/pkg/templating"
	"github.com/CTAG07/Sitewright/pkg/wizard"
	"github.com/go-chi/chi/v5"
)

// BuilderAPI serves the landing page, the wizard steps and the preview. Each
// visitor drives their own wizard through the session cookie.
type BuilderAPI struct {
	config   *BuilderConfig
	sessions *SessionStore
	tm       *templating.TemplateManager
	logger   *slog.Logger
	now      func() time.Time
}

func NewBuilderAPI(config *BuilderConfig, sessions *SessionStore, tm *templating.TemplateManager, logger *slog.Logger) *BuilderAPI {
	return &BuilderAPI{
		config:   config,
		sessions: sessions,
		tm:       tm,
		logger:   logger,
		now:      time.Now,
	}
}

func (a *BuilderAPI) RegisterRoutes(r chi.Router) {
	r.Get("/", a.handleLanding)
	r.Route("/build", func(r chi.Router) {
		r.Get("/", a.handleBuilder)
		r.Post("/fields", a.handleFields)
		r.Post("/next", a.handleNext)
		r.Post("/back", a.handleBack)
		r.Post("/generate", a.handleGenerate)
		r.Post("/reset", a.handleReset)
		r.Get("/preview", a.handlePreview)
		r.Post("/export", a.handleExport)
		r.Post("/open", a.handleOpen)
	})
}

func (a *BuilderAPI) handleLanding(w http.ResponseWriter, r *http.Request) {
	var flashes []Flash
	if sess, ok := a.sessions.Peek(r); ok {
		flashes = sess.TakeFlashes()
	}
	a.render(w, "landing.tmpl.html", newLandingPage(flashes))
}

func (a *BuilderAPI) handleBuilder(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	state := sess.Wizard.State()
	if state.Step == wizard.StepGenerated {
		http.Redirect(w, r, "/build/preview", http.StatusSeeOther)
		return
	}
	a.render(w, "builder.tmpl.html", newBuilderPage(state, sess.TakeFlashes(), a.config.RefreshIntervalSec))
}

// formValues collects the wizard fields present in the submitted form.
func formValues(r *http.Request) (map[wizard.Field]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	values := make(map[wizard.Field]string)
	for _, f := range wizard.Fields {
		if r.PostForm.Has(string(f)) {
			values[f] = wizard.Clean(r.PostForm.Get(string(f)))
		}
	}
	return values, nil
}

// applyForm saves the submitted fields into the session's wizard.
func (a *BuilderAPI) applyForm(w http.ResponseWriter, r *http.Request, sess *Session) bool {
	values, err := formValues(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	if len(values) == 0 {
		return true
	}
	if err = sess.Wizard.SetAll(values); err != nil {
		a.logger.Debug("Rejected field update", "session", sess.ID, "error", err)
		if errors.Is(err, wizard.ErrNotEditable) {
			sess.Error("Fields can only be changed on the first step")
		}
	}
	return true
}

func (a *BuilderAPI) handleFields(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	if a.applyForm(w, r, sess) {
		http.Redirect(w, r, "/build", http.StatusSeeOther)
	}
}

func (a *BuilderAPI) handleNext(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	if !a.applyForm(w, r, sess) {
		return
	}
	if err := sess.Wizard.Next(); err != nil {
		a.logger.Debug("Step transition blocked", "session", sess.ID, "error", err)
	}
	http.Redirect(w, r, "/build", http.StatusSeeOther)
}

func (a *BuilderAPI) handleBack(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	if err := sess.Wizard.Back(); err != nil {
		a.logger.Debug("Step transition blocked", "session", sess.ID, "error", err)
	}
	http.Redirect(w, r, "/build", http.StatusSeeOther)
}

// handleGenerate starts generation in the background and returns at once. The
// builder page polls until the wizard leaves the busy state.
func (a *BuilderAPI) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), a.config.generationTimeout())
	outcome, err := sess.Wizard.Start(ctx)
	if err != nil {
		cancel()
		a.logger.Debug("Generation not started", "session", sess.ID, "error", err)
		http.Redirect(w, r, "/build", http.StatusSeeOther)
		return
	}
	a.logger.Info("Generation started", "session", sess.ID)
	go func() {
		defer cancel()
		res := <-outcome
		switch {
		case res.Err == nil:
			a.logger.Info("Generation finished", "session", sess.ID, "business_type", res.Data.BusinessType)
		case errors.Is(res.Err, wizard.ErrDiscarded):
			a.logger.Info("Generation discarded", "session", sess.ID)
		default:
			a.logger.Warn("Generation failed", "session", sess.ID, "error", res.Err)
		}
	}()
	http.Redirect(w, r, "/build", http.StatusSeeOther)
}

func (a *BuilderAPI) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	sess.Wizard.Reset()
	http.Redirect(w, r, "/build", http.StatusSeeOther)
}

func (a *BuilderAPI) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	data, ok := sess.Wizard.Generated()
	if !ok {
		http.Redirect(w, r, "/build", http.StatusSeeOther)
		return
	}
	q := r.URL.Query()
	view := preview.ParseViewport(q.Get("view"))
	pane := preview.ParsePane(q.Get("pane"))
	a.render(w, "preview.tmpl.html", newPreviewPage(data, view, pane, sess.TakeFlashes(), a.now()))
}

func (a *BuilderAPI) handleExport(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	if _, ok := sess.Wizard.Generated(); ok {
		preview.Export(sess)
	}
	http.Redirect(w, r, "/build/preview", http.StatusSeeOther)
}

func (a *BuilderAPI) handleOpen(w http.ResponseWriter, r *http.Request) {
	sess := a.sessions.FromRequest(w, r)
	if _, ok := sess.Wizard.Generated(); ok {
		preview.OpenPreview(sess)
	}
	http.Redirect(w, r, "/build/preview", http.StatusSeeOther)
}

// render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (a *BuilderAPI) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := a.tm.Execute(&buf, name, data); err != nil {
		a.logger.Error("Failed to execute template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache")
	_, _ = buf.WriteTo(w)
}
