package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sellaris/chat-frontend-journey/internal/interfaces"
	"github.com/Sellaris/chat-frontend-journey/internal/model"
)

// CredentialHandler handles HTTP requests for credential profile management.
type CredentialHandler struct {
	service interfaces.CredentialService
}

func NewCredentialHandler(svc interfaces.CredentialService) *CredentialHandler {
	return &CredentialHandler{service: svc}
}

// AddCredentialRequest is the DTO for saving a new credential profile.
type AddCredentialRequest struct {
	ProviderName string `json:"aiName" validate:"required,max=64" example:"kimi"`
	APIKey       string `json:"apiKey" validate:"required" example:"sk-..."`
	APIBase      string `json:"apiBase" validate:"required,url" example:"https://api.moonshot.cn/v1"`
}

// CredentialStatusResponse reports whether an LLM credential is resolvable.
type CredentialStatusResponse struct {
	Configured bool `json:"configured"`
}

// ListProfiles godoc
// @Summary      List credential profiles
// @Description  Returns the saved profiles with masked keys and the name of the active one.
// @Tags         Credentials
// @Produce      json
// @Success      200  {object}  service.ProfileList
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/credentials [get]
func (h *CredentialHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.Profiles(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profiles)
}

// AddProfile godoc
// @Summary      Add a credential profile
// @Description  Stores a new named API key + base URL pair.
// @Tags         Credentials
// @Accept       json
// @Produce      json
// @Param        profile  body      AddCredentialRequest  true  "Profile"
// @Success      201      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/credentials [post]
func (h *CredentialHandler) AddProfile(w http.ResponseWriter, r *http.Request) {
	var req AddCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	profile := model.CredentialProfile{
		ProviderName: req.ProviderName,
		APIKey:       req.APIKey,
		APIBase:      req.APIBase,
	}
	if err := h.service.AddProfile(r.Context(), profile); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, StatusResponse{Status: "ok"})
}

// DeleteProfile godoc
// @Summary      Delete a credential profile
// @Description  Removes a profile by name; deleting the active one clears the selection.
// @Tags         Credentials
// @Produce      json
// @Param        name  path      string  true  "Profile name"
// @Success      200   {object}  StatusResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /v1/credentials/{name} [delete]
func (h *CredentialHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.service.DeleteProfile(r.Context(), name); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SelectProfile godoc
// @Summary      Select the active credential profile
// @Description  Makes the named profile the active key/base pair, replacing any previous selection.
// @Tags         Credentials
// @Produce      json
// @Param        name  path      string  true  "Profile name"
// @Success      200   {object}  StatusResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /v1/credentials/{name}/select [post]
func (h *CredentialHandler) SelectProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.service.SelectProfile(r.Context(), name); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetStatus godoc
// @Summary      Credential status
// @Description  Reports whether an LLM credential is currently resolvable.
// @Tags         Credentials
// @Produce      json
// @Success      200  {object}  CredentialStatusResponse
// @Router       /v1/credentials/status [get]
func (h *CredentialHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, CredentialStatusResponse{
		Configured: h.service.Configured(r.Context()),
	})
}
