package order

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

// Routes returns the order endpoints, mounted under /orders behind
// auth.RequireUser.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/", s.place)
	r.Get("/", s.list)
	r.Get("/{id}", s.get)
	r.Put("/{id}/status", s.updateStatus)

	return r
}

type placeReq struct {
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

func (s *Server) place(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req placeReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	o, err := s.Svc.Place(r.Context(), u.ID, req.ShippingAddress)
	if err != nil && !errors.Is(err, ErrCartClearFailed) {
		s.writeError(w, r, err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	orders, err := s.Svc.ListForUser(r.Context(), u.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, orders)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	id := chi.URLParam(r, "id")
	o, found, err := s.Svc.Get(r.Context(), u.ID, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

type statusReq struct {
	Status Status `json:"status"`
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.IdentityFromContext(r.Context()); !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req statusReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	if err := s.Svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
	case errors.Is(err, ErrEmptyCart):
		kit.WriteError(w, r, http.StatusBadRequest, "cart is empty", nil)
	case errors.Is(err, ErrProductUnavailable):
		kit.WriteError(w, r, http.StatusConflict, "product no longer available", nil)
	case errors.Is(err, ErrOrderNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", nil)
	case errors.Is(err, ErrBadStatus):
		kit.WriteError(w, r, http.StatusBadRequest, "unknown status", nil)
	case errors.Is(err, ErrInvalidTransition):
		kit.WriteError(w, r, http.StatusConflict, "invalid status transition", nil)
	default:
		if s.Log != nil {
			s.Log.Error("order operation failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
