package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/favorites"
	"brand-showcase/pkg/forms"
	"brand-showcase/pkg/services"
)

// Deps are the collaborators of the HTTP handlers
type Deps struct {
	Images    *services.Service
	Catalog   *catalog.Catalog
	Renderer  Renderer
	Submitter *forms.Submitter
	Logger    *zap.Logger
	// Environment is reported by the debug endpoint; "production" hides stacks and the test endpoint.
	Environment string
	// Favorites picks the favourites store of a request; cookies when nil.
	Favorites func(w http.ResponseWriter, r *http.Request) favorites.Store
}

// Handler serves the JSON API and the HTML pages
type Handler struct {
	images      *services.Service
	catalog     *catalog.Catalog
	renderer    Renderer
	submitter   *forms.Submitter
	logger      *zap.Logger
	environment string
	production  bool
	favorites   func(w http.ResponseWriter, r *http.Request) favorites.Store
}

// New creates the handlers
func New(d Deps) *Handler {
	h := &Handler{
		images:      d.Images,
		catalog:     d.Catalog,
		renderer:    d.Renderer,
		submitter:   d.Submitter,
		logger:      d.Logger,
		environment: d.Environment,
		production:  d.Environment == "production",
		favorites:   d.Favorites,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.submitter == nil {
		h.submitter = forms.NewSubmitter(forms.DefaultDelay, h.logger)
	}
	if h.favorites == nil {
		h.favorites = func(w http.ResponseWriter, r *http.Request) favorites.Store {
			return favorites.NewCookieStore(w, r)
		}
	}
	return h
}

// HealthHandler answers liveness checks
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
