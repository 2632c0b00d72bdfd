package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/service"
	"github.com/nextx/admin-api/pkg/httpx"
)

// NomenclatureHandler serves the reference-data CRUD.
type NomenclatureHandler struct {
	NomenclatureService *service.NomenclatureService
}

type nomenclatureResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Pattern     string    `json:"pattern,omitempty"`
	Description string    `json:"description,omitempty"`
	Level       *int      `json:"level,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toNomenclatureResponse(n domain.Nomenclature) nomenclatureResponse {
	return nomenclatureResponse{
		ID:          n.ID,
		Name:        n.Name,
		Type:        string(n.Type),
		Pattern:     n.Pattern,
		Description: n.Description,
		Level:       n.Level,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func toNomenclatureResponses(entries []domain.Nomenclature) []nomenclatureResponse {
	out := make([]nomenclatureResponse, 0, len(entries))
	for _, n := range entries {
		out = append(out, toNomenclatureResponse(n))
	}
	return out
}

type nomenclatureRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
	Level       *int   `json:"level"`
}

// HandleTypes godoc
//
//	@Summary		Nomenclature Types
//	@Description	The fixed catalog of nomenclature types. Public.
//	@Tags			Nomenclatures
//	@Produce		json
//	@Success		200	{object}	httpx.Response{data=[]string}
//	@Router			/nomenclature/types [get].
func (h *NomenclatureHandler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	httpx.WriteEnvelope(w, http.StatusOK, h.NomenclatureService.Types(), "")
}

// HandleList godoc
//
//	@Summary		List Nomenclatures
//	@Tags			Nomenclatures
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int		false	"Page size"	default(1000)
//	@Param			skip	query		int		false	"Offset"
//	@Param			filters	query		string	false	"field:value|field2:a,b"
//	@Success		200		{object}	httpx.Response{data=[]nomenclatureResponse}
//	@Router			/nomenclature [get].
func (h *NomenclatureHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filters, page := parseListQuery(r)

	entries, err := h.NomenclatureService.List(r.Context(), filters, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, toNomenclatureResponses(entries), "")
}

// HandleListByType godoc
//
//	@Summary		List Nomenclatures By Type
//	@Tags			Nomenclatures
//	@Produce		json
//	@Security		BearerAuth
//	@Param			type	path		string	true	"Nomenclature type"
//	@Success		200		{object}	httpx.Response{data=[]nomenclatureResponse}
//	@Failure		422		{object}	httpx.Response	"Unknown nomenclature type"
//	@Router			/nomenclature/type/{type} [get].
func (h *NomenclatureHandler) HandleListByType(w http.ResponseWriter, r *http.Request) {
	_, page := parseListQuery(r)
	typ := domain.NomenclatureType(r.PathValue("type"))

	entries, err := h.NomenclatureService.ListByType(r.Context(), typ, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, toNomenclatureResponses(entries), "")
}

// HandleGet godoc
//
//	@Summary		Get Nomenclature
//	@Tags			Nomenclatures
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Nomenclature ID"
//	@Success		200	{object}	httpx.Response{data=nomenclatureResponse}
//	@Failure		404	{object}	httpx.Response
//	@Router			/nomenclature/{id} [get].
func (h *NomenclatureHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	n, err := h.NomenclatureService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, toNomenclatureResponse(n), "")
}

// HandleCreate godoc
//
//	@Summary		Create Nomenclature
//	@Tags			Nomenclatures
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		nomenclatureRequest	true	"New entry"
//	@Success		201		{object}	httpx.Response{data=nomenclatureResponse}
//	@Failure		422		{object}	httpx.Response
//	@Router			/nomenclature [post].
func (h *NomenclatureHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req nomenclatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Malformed request body")
		return
	}

	n, err := h.NomenclatureService.Create(r.Context(), domain.Nomenclature{
		Name:        req.Name,
		Type:        domain.NomenclatureType(req.Type),
		Pattern:     req.Pattern,
		Description: req.Description,
		Level:       req.Level,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusCreated, toNomenclatureResponse(n), "")
}

// HandleUpdate godoc
//
//	@Summary		Update Nomenclature
//	@Description	Full replacement of the mutable fields.
//	@Tags			Nomenclatures
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Nomenclature ID"
//	@Param			body	body		nomenclatureRequest	true	"Replacement entry"
//	@Success		200		{object}	httpx.Response{data=nomenclatureResponse}
//	@Failure		404		{object}	httpx.Response
//	@Router			/nomenclature/{id} [put].
func (h *NomenclatureHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req nomenclatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Malformed request body")
		return
	}

	n := domain.Nomenclature{
		ID:          id,
		Name:        req.Name,
		Type:        domain.NomenclatureType(req.Type),
		Pattern:     req.Pattern,
		Description: req.Description,
		Level:       req.Level,
	}
	if err := h.NomenclatureService.Update(r.Context(), n); err != nil {
		writeServiceError(w, r, err)
		return
	}

	updated, err := h.NomenclatureService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, toNomenclatureResponse(updated), "")
}

// HandleDelete godoc
//
//	@Summary		Delete Nomenclature
//	@Tags			Nomenclatures
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Nomenclature ID"
//	@Success		202	{object}	httpx.Response
//	@Failure		404	{object}	httpx.Response
//	@Router			/nomenclature/{id} [delete].
func (h *NomenclatureHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.NomenclatureService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusAccepted, nil, "Nomenclature deleted")
}
