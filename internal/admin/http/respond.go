// Package http wires the admin REST surface onto a stdlib ServeMux. Handlers
// parse and validate transport shapes, delegate to services and translate
// their errors into enveloped responses.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/service"
	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/pkg/httpx"
	"github.com/nextx/admin-api/pkg/slogx"
)

// writeServiceError maps service and store errors onto enveloped responses.
// Credential failures stay 401 with a bearer challenge so clients re-prompt
// rather than showing a permission error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		httpx.WriteEnvelope(w, http.StatusUnauthorized, nil, "Incorrect username or password")
	case errors.Is(err, service.ErrInvalidRefresh):
		w.Header().Set("WWW-Authenticate", "Bearer")
		httpx.WriteEnvelope(w, http.StatusUnauthorized, nil, "Could not validate credentials")
	case errors.Is(err, service.ErrInactiveUser):
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Inactive user")
	case errors.Is(err, service.ErrUnknownNomenclatureType):
		httpx.WriteEnvelope(w, http.StatusUnprocessableEntity, nil, "Unknown nomenclature type")
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteEnvelope(w, http.StatusUnprocessableEntity, nil, "Invalid input")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteEnvelope(w, http.StatusNotFound, nil, "Not found")
	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteEnvelope(w, http.StatusConflict, nil, "Already exists")
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			"path", r.URL.Path, "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, nil, "Internal server error")
	}
}

// parseListQuery reads the shared list parameters: ?limit, ?skip and
// ?filters=field:value|field2:a,b.
func parseListQuery(r *http.Request) ([]domain.Filter, domain.Paging) {
	q := r.URL.Query()

	page := domain.DefaultPaging()
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.Limit = n
		}
	}
	if v := q.Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.Skip = n
		}
	}

	return domain.ParseFilters(q.Get("filters")), page.Normalize()
}
