package auth

import (
	"encoding/json"
	"net/http"

	"github.com/centraldiv/botcore/internal/dto"
	"github.com/centraldiv/botcore/pkg/utils"
)

type Service interface {
	Authenticate(gateway, secret string) error
	GenerateToken(gateway string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate a gateway
//	@Description	Exchange the shared gateway secret for a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.authService.Authenticate(req.Gateway, req.Secret); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(req.Gateway)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Gateway successfully authenticated",
	})
}
