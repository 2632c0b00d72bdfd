package http

import (
	"encoding/json"
	"net/http"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/service"
	"github.com/nextx/admin-api/pkg/httpx"
)

// AccountHandler serves the login, refresh and scope-catalog endpoints.
type AccountHandler struct {
	SessionService *service.SessionService
}

// HandleToken godoc
//
//	@Summary		Password Login
//	@Description	OAuth2-style password grant. Scopes are requested via the space-delimited
//	@Description	"scope" form field; the granted set is the intersection of the requested
//	@Description	scopes and the scopes assigned to the user.
//	@Tags			Account
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Param			scope		formData	string	false	"Requested scopes, space delimited"
//	@Success		200	{object}	httpx.Response{data=domain.TokenPair}
//	@Failure		401	{object}	httpx.Response	"Incorrect username or password"
//	@Router			/account/token [post].
func (h *AccountHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Malformed form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	scopes := httpx.ParseSpaceDelimitedFields(r.PostFormValue("scope"))

	pair, err := h.SessionService.Login(r.Context(), username, password, scopes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteEnvelope(w, http.StatusOK, pair, "")
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// HandleRefresh godoc
//
//	@Summary		Refresh Access Token
//	@Description	Exchanges a valid refresh token for a new access token. The refresh
//	@Description	token itself is not rotated.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			body	body		refreshRequest	true	"Refresh token"
//	@Success		200		{object}	httpx.Response{data=domain.TokenPair}
//	@Failure		401		{object}	httpx.Response	"Could not validate credentials"
//	@Router			/account/token/refresh [post].
func (h *AccountHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Malformed request body")
		return
	}

	pair, err := h.SessionService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteEnvelope(w, http.StatusOK, pair, "")
}

// HandleScopes godoc
//
//	@Summary		Scope Catalog
//	@Description	Lists every scope the system recognises with a human-readable
//	@Description	description. Public, intended for admin frontends building
//	@Description	permission pickers.
//	@Tags			Account
//	@Produce		json
//	@Success		200	{object}	httpx.Response{data=[]domain.ScopeDescription}
//	@Router			/account/scopes [get].
func (h *AccountHandler) HandleScopes(w http.ResponseWriter, r *http.Request) {
	httpx.WriteEnvelope(w, http.StatusOK, domain.ScopeCatalog(), "")
}
