package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-catalog/internal/service"
	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/go-chi/chi/v5"
)

// labelRoutes registers the CRUD endpoints of one label kind. Tags and
// ingredients differ only in the service behind them.
func (h *Handler) labelRoutes(svc service.LabelService) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.listLabels(svc))
		r.Post("/", h.createLabel(svc))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getLabel(svc))
			r.Put("/", h.updateLabel(svc, false))
			r.Patch("/", h.updateLabel(svc, true))
			r.Delete("/", h.deleteLabel(svc))
		})
	}
}

func (h *Handler) listLabels(svc service.LabelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		labels, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, toLabelResponses(labels), http.StatusOK)
	}
}

func (h *Handler) createLabel(svc service.LabelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var input models.LabelInput
		if !decodeBody(w, r, &input) {
			return
		}

		label, err := svc.Create(r.Context(), userID, input)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, toLabelResponse(label), http.StatusCreated)
	}
}

func (h *Handler) getLabel(svc service.LabelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, labelID, ok := requireUserAndID(w, r)
		if !ok {
			return
		}

		label, err := svc.Get(r.Context(), userID, labelID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, toLabelResponse(label), http.StatusOK)
	}
}

func (h *Handler) updateLabel(svc service.LabelService, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, labelID, ok := requireUserAndID(w, r)
		if !ok {
			return
		}

		var update models.LabelUpdate
		if !decodeBody(w, r, &update) {
			return
		}

		label, err := svc.Update(r.Context(), userID, labelID, update, partial)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, toLabelResponse(label), http.StatusOK)
	}
}

func (h *Handler) deleteLabel(svc service.LabelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, labelID, ok := requireUserAndID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, labelID); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
