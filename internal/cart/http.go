package cart

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BakeShop/internal/auth"
	"BakeShop/pkg/kit"
)

type Server struct {
	Svc *Service
	Log *zap.Logger
}

// Routes returns the cart endpoints, mounted under /cart behind
// auth.RequireUser.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.get)
	r.Delete("/", s.clear)
	r.Post("/items", s.add)
	r.Put("/items/{id}", s.update)
	r.Delete("/items/{id}", s.remove)

	return r
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	view, err := s.Svc.Get(r.Context(), u.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, view)
}

type addReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req addReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := s.Svc.AddItem(r.Context(), u.ID, req.ProductID, req.Quantity); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req updateReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	if err := s.Svc.UpdateItem(r.Context(), u.ID, chi.URLParam(r, "id"), req.Quantity); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	if err := s.Svc.RemoveItem(r.Context(), u.ID, chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	if err := s.Svc.Clear(r.Context(), u.ID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
	case errors.Is(err, ErrProductNotFound):
		kit.WriteError(w, r, http.StatusBadRequest, "product not found", nil)
	case errors.Is(err, ErrItemNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "item not found", nil)
	case errors.Is(err, ErrBadQuantity):
		kit.WriteError(w, r, http.StatusBadRequest, "bad quantity", nil)
	default:
		if s.Log != nil {
			s.Log.Error("cart operation failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
