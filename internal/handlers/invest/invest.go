package invest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/dto"
	"github.com/centraldiv/botcore/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Open(ctx context.Context, userID, guildID, amount int64, risk domain.RiskTier) (*domain.Investment, error)
	List(ctx context.Context, userID, guildID int64) ([]domain.Investment, error)
}

type InvestHandler struct {
	investService Service
}

func New(investService Service) *InvestHandler {
	return &InvestHandler{
		investService: investService,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// Open godoc
//
//	@Summary		Open an investment
//	@Description	Lock funds into a risk tier. The principal is debited immediately and the payout is scheduled for maturity.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int								true	"Guild ID"
//	@Param			userID	path		int								true	"User ID"
//	@Param			request	body		dto.OpenInvestmentRequestDTO	true	"Investment request payload"
//	@Success		200		{object}	dto.InvestmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/investments [post]
func (h *InvestHandler) Open(w http.ResponseWriter, r *http.Request) {
	guildID, err := pathID(r, "guildID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid guild id")
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.OpenInvestmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	investment, err := h.investService.Open(r.Context(), userID, guildID, req.Amount, domain.RiskTier(req.Risk))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidFormat):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*investment))
}

// List godoc
//
//	@Summary		List active investments
//	@Description	List the open investments of a guild member.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			guildID	path		int	true	"Guild ID"
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.InvestmentResponseDTO	"Active investments"
//	@Success		204		{object}	utils.Response				"No active investments"
//	@Failure		400		{object}	utils.Response				"Invalid path parameters"
//	@Failure		401		{object}	utils.Response				"Gateway not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/investments [get]
func (h *InvestHandler) List(w http.ResponseWriter, r *http.Request) {
	guildID, err := pathID(r, "guildID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid guild id")
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	investments, err := h.investService.List(r.Context(), userID, guildID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch investments")
		return
	}

	if len(investments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No active investments")
		return
	}

	response := make([]dto.InvestmentResponseDTO, len(investments))
	for i, inv := range investments {
		response[i] = toDTO(inv)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toDTO(inv domain.Investment) dto.InvestmentResponseDTO {
	return dto.InvestmentResponseDTO{
		ID:         inv.ID,
		Principal:  inv.Principal,
		Risk:       string(inv.Risk),
		ReturnRate: inv.ReturnRate,
		MaturesAt:  inv.MaturesAt,
		Status:     string(inv.Status),
	}
}
