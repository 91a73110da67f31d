// Package web implements the HTML driving adapter using templ components.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/socialroute/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/socialroute/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/socialroute/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/socialroute/internal/domain/port/driven"
)

// Handler is the web driving adapter that serves the site's HTML pages.
type Handler struct {
	catalog driven.CatalogSource
	siteURL string
	logger  *slog.Logger
}

// NewHandler creates a Handler. siteURL is the public origin used for
// canonical links.
func NewHandler(catalog driven.CatalogSource, siteURL string, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		siteURL: strings.TrimRight(siteURL, "/"),
		logger:  logger,
	}
}

// Home renders the single-page site. The motion manifest is built for the
// capabilities the browser reported through client hints.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	advertiseHints(w)

	caps := capabilitiesFromRequest(r)
	manifest, err := buildManifest(caps)
	if err != nil {
		h.logger.Error("failed to build motion manifest", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	c := h.catalog.Catalog()
	page := toPage(c, c.Site.Title, h.siteURL+"/", "", manifest)
	h.render(w, r, "home", templates.Layout(page, pages.Home(toHomeViewModel(c))))
}

// Privacy renders the privacy policy.
func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.legal(w, r, "privacy")
}

// Terms renders the terms and conditions.
func (h *Handler) Terms(w http.ResponseWriter, r *http.Request) {
	h.legal(w, r, "terms")
}

func (h *Handler) legal(w http.ResponseWriter, r *http.Request, slug string) {
	doc, ok := h.catalog.LegalPage(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	c := h.catalog.Catalog()
	page := toPage(c, doc.Title+" | "+c.Site.Name, h.siteURL+"/"+slug, "/", nil)
	h.render(w, r, slug, templates.Layout(page, pages.Legal(vm.Legal{Title: doc.Title, HTML: doc.HTML})))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// webManifest is the installable-app descriptor.
type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []manifestIcon `json:"icons"`
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// Manifest serves manifest.webmanifest.
func (h *Handler) Manifest(w http.ResponseWriter, r *http.Request) {
	site := h.catalog.Catalog().Site
	m := webManifest{
		Name:            site.Name,
		ShortName:       site.Name,
		Description:     site.Title,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: site.Background,
		ThemeColor:      site.ThemeColor,
		Icons: []manifestIcon{
			{Src: "/static/icon.svg", Sizes: "any", Type: "image/svg+xml"},
		},
	}

	w.Header().Set("Content-Type", "application/manifest+json")
	if err := json.NewEncoder(w).Encode(m); err != nil {
		h.logger.Error("failed to encode web manifest", "error", err)
	}
}
