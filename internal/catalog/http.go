package catalog

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"BakeShop/pkg/kit"
)

type Server struct {
	Store *Store
}

// Routes returns the product endpoints, mounted under /products.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/featured", s.featured)
	r.Get("/{id}", s.get)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	cat := Category(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("category"))))
	if cat == "" {
		cat = CategoryAll
	}
	kit.WriteJSON(w, http.StatusOK, s.Store.ListByCategory(r.Context(), cat))
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.ListFeatured(r.Context()))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Store.Get(r.Context(), id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}
