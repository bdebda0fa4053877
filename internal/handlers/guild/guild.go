package guild

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/dto"
	"github.com/centraldiv/botcore/pkg/utils"
	"github.com/centraldiv/botcore/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Config(ctx context.Context, guildID int64) (*domain.GuildConfig, error)
	Update(ctx context.Context, cfg *domain.GuildConfig) error
	EnableRaidMode(ctx context.Context, guildID int64, window time.Duration) (int64, error)
}

type SalaryService interface {
	Configure(ctx context.Context, guildID, roleID, amount int64, interval time.Duration) error
}

type GuildHandler struct {
	guildService  Service
	salaryService SalaryService
}

func New(guildService Service, salaryService SalaryService) *GuildHandler {
	return &GuildHandler{
		guildService:  guildService,
		salaryService: salaryService,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// GetConfig godoc
//
//	@Summary		Get guild configuration
//	@Description	Return the guild economy settings, falling back to defaults for unconfigured guilds.
//	@Tags			Guilds
//	@Security		BearerAuth
//	@Produce		json
//	@Param			guildID	path		int	true	"Guild ID"
//	@Success		200		{object}	dto.GuildConfigDTO
//	@Failure		400		{object}	utils.Response	"Invalid path parameters"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/config [get]
func (h *GuildHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	guildID, err := pathID(r, "guildID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid guild id")
		return
	}

	cfg, err := h.guildService.Config(r.Context(), guildID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GuildConfigDTO{
		CurrencyName:   cfg.CurrencyName,
		CurrencySymbol: cfg.CurrencySymbol,
		StartBalance:   cfg.StartBalance,
		TaxRate:        cfg.TaxRate,
		RaidMode:       cfg.RaidMode,
	})
}

// UpdateConfig godoc
//
//	@Summary		Update guild configuration
//	@Description	Set the guild currency name, starting balance and transfer tax rate.
//	@Tags			Guilds
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int					true	"Guild ID"
//	@Param			request	body		dto.GuildConfigDTO	true	"Configuration payload"
//	@Success		200		{object}	utils.Response		"Configuration updated"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		401		{object}	utils.Response		"Gateway not authorized"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/guilds/{guildID}/config [put]
func (h *GuildHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	guildID, err := pathID(r, "guildID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid guild id")
		return
	}

	var req dto.GuildConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.guildService.Update(r.Context(), &domain.GuildConfig{
		GuildID:        guildID,
		CurrencyName:   req.CurrencyName,
		CurrencySymbol: req.CurrencySymbol,
		StartBalance:   req.StartBalance,
		TaxRate:        req.TaxRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Configuration updated"})
}

// EnableRaidMode godoc
//
//	@Summary		Enable raid mode
//	@Description	Raise the raid flag for the given window. It is cleared automatically when the window elapses.
//	@Tags			Guilds
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int						true	"Guild ID"
//	@Param			request	body		dto.RaidModeRequestDTO	true	"Raid mode payload"
//	@Success		200		{object}	dto.RaidModeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/raidmode [post]
func (h *GuildHandler) EnableRaidMode(w http.ResponseWriter, r *http.Request) {
	guildID, err := pathID(r, "guildID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid guild id")
		return
	}

	var req dto.RaidModeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	window, err := validate.ParseDuration(req.Window)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid window")
		return
	}

	actionID, err := h.guildService.EnableRaidMode(r.Context(), guildID, window)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RaidModeResponseDTO{ActionID: actionID})
}

// ConfigureSalary godoc
//
//	@Summary		Configure a role salary
//	@Description	Set the periodic payout for members holding a role. Payouts start one interval from now.
//	@Tags			Guilds
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int						true	"Guild ID"
//	@Param			request	body		dto.SalaryRequestDTO	true	"Salary payload"
//	@Success		200		{object}	utils.Response			"Salary configured"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"Gateway not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/guilds/{guildID}/salaries [post]
func (h *GuildHandler) ConfigureSalary(w http.ResponseWriter, r *http.Request) {
	guildID, err := pathID(r, "guildID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid guild id")
		return
	}

	var req dto.SalaryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	interval, err := validate.ParseDuration(req.Interval)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid interval")
		return
	}

	err = h.salaryService.Configure(r.Context(), guildID, req.RoleID, req.Amount, interval)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Salary configured"})
}
