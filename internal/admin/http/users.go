package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/service"
	"github.com/nextx/admin-api/pkg/httpx"
)

// UserHandler serves the profile endpoint and the admin user CRUD.
type UserHandler struct {
	UserService *service.UserService
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Disabled  bool      `json:"disabled"`
	Scopes    []string  `json:"scopes"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Disabled:  u.Disabled,
		Scopes:    u.Scopes,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// HandleProfile godoc
//
//	@Summary		Own Profile
//	@Description	Returns the account record of the authenticated principal.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	httpx.Response{data=userResponse}
//	@Failure		401	{object}	httpx.Response
//	@Router			/user [get].
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteEnvelope(w, http.StatusUnauthorized, nil, "Could not validate credentials")
		return
	}

	u, err := h.UserService.GetUserByUsername(r.Context(), principal.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, toUserResponse(u), "")
}

// HandleList godoc
//
//	@Summary		List Users
//	@Description	Lists accounts with paging and filters, e.g. ?filters=username:alice,bob.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int		false	"Page size"	default(1000)
//	@Param			skip	query		int		false	"Offset"
//	@Param			filters	query		string	false	"field:value|field2:a,b"
//	@Success		200		{object}	httpx.Response{data=[]userResponse}
//	@Failure		401		{object}	httpx.Response
//	@Router			/user/admin [get].
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filters, page := parseListQuery(r)

	users, err := h.UserService.ListUsers(r.Context(), filters, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteEnvelope(w, http.StatusOK, out, "")
}

// HandleGet godoc
//
//	@Summary		Get User
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	httpx.Response{data=userResponse}
//	@Failure		404	{object}	httpx.Response
//	@Router			/user/admin/{id} [get].
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, toUserResponse(u), "")
}

type createUserRequest struct {
	Username string   `json:"username"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	Scopes   []string `json:"scopes"`
	Roles    []string `json:"roles"`
}

type createUserResponse struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// HandleCreate godoc
//
//	@Summary		Create User
//	@Description	Provisions an account. The server generates a strong random password
//	@Description	and returns it exactly once in the response; it is not retrievable
//	@Description	afterwards.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		createUserRequest	true	"New account"
//	@Success		201		{object}	httpx.Response{data=createUserResponse}
//	@Failure		409		{object}	httpx.Response	"Username taken"
//	@Router			/user/admin [post].
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Malformed request body")
		return
	}

	u, password, err := h.UserService.CreateUser(r.Context(), service.CreateUserInput{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Scopes:   req.Scopes,
		Roles:    req.Roles,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteEnvelope(w, http.StatusCreated, createUserResponse{ID: u.ID, Password: password}, "")
}

type updateUserRequest struct {
	FullName *string   `json:"full_name"`
	Email    *string   `json:"email"`
	Disabled *bool     `json:"disabled"`
	Scopes   *[]string `json:"scopes"`
	Roles    *[]string `json:"roles"`
}

// HandleUpdate godoc
//
//	@Summary		Update User
//	@Description	Partial update; absent fields are left untouched.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"User ID"
//	@Param			body	body		updateUserRequest	true	"Fields to change"
//	@Success		200		{object}	httpx.Response{data=userResponse}
//	@Failure		404		{object}	httpx.Response
//	@Router			/user/admin/{id} [put].
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Malformed request body")
		return
	}

	patch := domain.UserPatch{
		FullName: req.FullName,
		Email:    req.Email,
		Disabled: req.Disabled,
		Scopes:   req.Scopes,
		Roles:    req.Roles,
	}
	if err := h.UserService.UpdateUser(r.Context(), id, patch); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, toUserResponse(u), "")
}

// HandleDelete godoc
//
//	@Summary		Delete User
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"User ID"
//	@Success		202	{object}	httpx.Response
//	@Failure		404	{object}	httpx.Response
//	@Router			/user/admin/{id} [delete].
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteEnvelope(w, http.StatusAccepted, nil, "User deleted")
}
