package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/service"
	"github.com/nextx/admin-api/pkg/httpx"
)

// CategoryHandler serves the demo category CRUD. The endpoint group is
// deliberately unauthenticated; it exists to exercise the plain CRUD
// pipeline end to end.
type CategoryHandler struct {
	CategoryService *service.CategoryService
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Priority    int       `json:"priority"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Priority:    c.Priority,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Priority    int    `json:"priority"`
	Description string `json:"description"`
}

// HandleList godoc
//
//	@Summary	List Categories
//	@Tags		Categories
//	@Produce	json
//	@Param		limit	query		int		false	"Page size"	default(1000)
//	@Param		skip	query		int		false	"Offset"
//	@Param		filters	query		string	false	"field:value|field2:a,b"
//	@Success	200		{object}	httpx.Response{data=[]categoryResponse}
//	@Router		/demo [get].
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filters, page := parseListQuery(r)

	categories, err := h.CategoryService.List(r.Context(), filters, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	httpx.WriteEnvelope(w, http.StatusOK, out, "")
}

// HandleGet godoc
//
//	@Summary	Get Category
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		string	true	"Category ID"
//	@Success	200	{object}	httpx.Response{data=categoryResponse}
//	@Failure	404	{object}	httpx.Response
//	@Router		/demo/{id} [get].
func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.CategoryService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, toCategoryResponse(c), "")
}

// HandleCreate godoc
//
//	@Summary	Create Category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		body	body		categoryRequest	true	"New category"
//	@Success	201		{object}	httpx.Response{data=categoryResponse}
//	@Failure	422		{object}	httpx.Response
//	@Router		/demo/category [post].
func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Malformed request body")
		return
	}

	c, err := h.CategoryService.Create(r.Context(), domain.Category{
		Name:        req.Name,
		Priority:    req.Priority,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusCreated, toCategoryResponse(c), "")
}

// HandleDelete godoc
//
//	@Summary	Delete Category
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		string	true	"Category ID"
//	@Success	202	{object}	httpx.Response
//	@Failure	404	{object}	httpx.Response
//	@Router		/demo/category/{id} [delete].
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CategoryService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusAccepted, nil, "Category deleted")
}
