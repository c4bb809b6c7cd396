package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched top to bottom, so more specific errors must come
// first: a category in use is also a validation error.
var errorStatuses = []errorStatus{
	{store.ErrCategoryHasContacts, http.StatusConflict, app.MsgCategoryInUse},
	{validators.ErrValidation, http.StatusBadRequest, app.MsgValidationFailed},
	{store.ErrInvalidCategory, http.StatusBadRequest, app.MsgInvalidCategory},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgEmptyBody},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrCategoryNotFound, http.StatusNotFound, app.MsgCategoryNotFound},
	{store.ErrContactNotFound, http.StatusNotFound, app.MsgContactNotFound},
	{ErrRouteNotFound, http.StatusNotFound, app.MsgNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the matching status with a JSON
// [models.ErrorResponse] body. Validation errors carry their field errors.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	response := models.ErrorResponse{Error: message}
	if verr, ok := validators.AsValidationError(err); ok {
		for _, f := range verr.Fields {
			response.Fields = append(response.Fields, models.FieldErrorResponse{Field: f.Field, Message: f.Message})
		}
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, response, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

// writeJSON writes data with the given status and logs write failures.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}
