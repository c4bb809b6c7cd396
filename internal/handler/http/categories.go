package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	categories, err := h.services.CategoryService.ListCategories(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	writeJSON(w, r, categories, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), identity, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, category, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.CategoryInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), identity, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, category, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.CategoryInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.UpdateCategory(r.Context(), identity, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CategoryService.DeleteCategory(r.Context(), identity, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
