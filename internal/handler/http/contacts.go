// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// listContacts serves GET /api/contacts. Query parameters: search,
// categoryId, sort, page and pageSize.
func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ContactService.ListContacts(r.Context(), identity, parseListQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if page.Items == nil {
		page.Items = []models.Contact{}
	}
	if page.Categories == nil {
		page.Categories = []models.Category{}
	}

	logger.FromRequest(r).Debug().
		Int("total_count", page.TotalCount).
		Int("page", page.Page).
		Msg("contacts listed")

	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
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

	contact, err := h.services.ContactService.GetContact(r.Context(), identity, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, contact, http.StatusOK)
}

// createContact serves POST /api/contacts. Only the editable fields of the
// body are read; id, owner and creation time are assigned by the server.
func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var fields models.ContactFields
	if err = decodeBody(r, &fields); err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.CreateContact(r.Context(), identity, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, contact, http.StatusCreated)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
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

	var fields models.ContactFields
	if err = decodeBody(r, &fields); err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.UpdateContact(r.Context(), identity, id, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.ContactService.DeleteContact(r.Context(), identity, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
