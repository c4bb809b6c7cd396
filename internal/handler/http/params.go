package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// pathID parses the {id} URL parameter. Anything but a positive integer
// is reported as ErrRouteNotFound.
func pathID(r *http.Request) (int64, error) {
	id, ok := parsePositiveInt64(chi.URLParam(r, "id"))
	if !ok {
		return 0, ErrRouteNotFound
	}
	return id, nil
}

// parseListQuery reads the contact list parameters. Malformed numbers are
// treated as absent; range checks and defaults are left to the service.
func parseListQuery(values url.Values) models.ListQuery {
	query := models.ListQuery{
		Search: values.Get("search"),
		Sort:   models.SortOrder(values.Get("sort")),
	}

	if categoryID, ok := parsePositiveInt64(values.Get("categoryId")); ok {
		query.CategoryID = &categoryID
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		query.Page = page
	}
	if pageSize, err := strconv.Atoi(values.Get("pageSize")); err == nil {
		query.PageSize = pageSize
	}

	return query
}

func parsePositiveInt64(raw string) (int64, bool) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
