package main

import (
	"log/slog"
	"net/http"

	"github.com/CTAG07/Sitewright/pkg/content"
	"github.com/CTAG07/Sitewright/pkg/preview"
	"github.com/CTAG07/Sitewright/pkg/wizard"
	"github.com/go-chi/chi/v5"
)

// ContentAPI exposes the lookup tables behind the builder as JSON.
type ContentAPI struct {
	logger *slog.Logger
}

// Resolution is everything the preview derives from one set of inputs.
// Services is the full resolved list; the rendered page shows at most
// preview.MaxServiceCards of them.
type Resolution struct {
	Brand     string          `json:"brand"`
	Tagline   string          `json:"tagline"`
	KnownType bool            `json:"known_type"`
	Services  []string        `json:"services"`
	Palette   content.Palette `json:"palette"`
	About     string          `json:"about"`
	Email     string          `json:"email"`
	Snippet   string          `json:"snippet"`
}

func NewContentAPI(logger *slog.Logger) *ContentAPI {
	return &ContentAPI{logger: logger}
}

func (a *ContentAPI) RegisterRoutes(r chi.Router) {
	r.Route("/api/content", func(r chi.Router) {
		r.Get("/business-types", a.handleBusinessTypes)
		r.Get("/color-schemes", a.handleColorSchemes)
		r.Get("/resolve", a.handleResolve)
	})
}

func (a *ContentAPI) handleBusinessTypes(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, content.BusinessTypes())
}

func (a *ContentAPI) handleColorSchemes(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, content.ColorSchemes())
}

// handleResolve runs the resolver over the query parameters, which use the
// same names as the builder form. Every parameter is optional.
func (a *ContentAPI) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := wizard.NewWebsiteData()
	for _, f := range wizard.Fields {
		if !q.Has(string(f)) {
			continue
		}
		var err error
		if data, err = data.With(f, wizard.Clean(q.Get(string(f)))); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	doc := preview.Build(data)
	respondWithJSON(w, http.StatusOK, Resolution{
		Brand:     doc.Brand,
		Tagline:   doc.Tagline,
		KnownType: data.BusinessType.Known(),
		Services:  content.Services(data.Services, data.BusinessType),
		Palette:   doc.Palette,
		About:     doc.About.Body,
		Email:     doc.Contact.Email,
		Snippet:   preview.Snippet(doc),
	})
}
