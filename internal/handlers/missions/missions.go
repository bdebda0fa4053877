package missions

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
	Daily(ctx context.Context, userID, guildID int64) (*domain.Mission, error)
	Progress(ctx context.Context, userID, guildID int64, kind string, count int) (*domain.Mission, error)
}

type MissionsHandler struct {
	missionService Service
}

func New(missionService Service) *MissionsHandler {
	return &MissionsHandler{
		missionService: missionService,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// Daily godoc
//
//	@Summary		Get the daily mission
//	@Description	Return today's mission for a guild member, rolling a new one on first access of the day.
//	@Tags			Missions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			guildID	path		int	true	"Guild ID"
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.MissionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid path parameters"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/missions/daily [get]
func (h *MissionsHandler) Daily(w http.ResponseWriter, r *http.Request) {
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

	mission, err := h.missionService.Daily(r.Context(), userID, guildID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(mission))
}

// Progress godoc
//
//	@Summary		Report mission progress
//	@Description	Record activity against today's mission. The reward is credited once when the target is reached.
//	@Tags			Missions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int								true	"Guild ID"
//	@Param			userID	path		int								true	"User ID"
//	@Param			request	body		dto.MissionProgressRequestDTO	true	"Progress payload"
//	@Success		200		{object}	dto.MissionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		404		{object}	utils.Response	"No mission rolled today"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/missions/progress [post]
func (h *MissionsHandler) Progress(w http.ResponseWriter, r *http.Request) {
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

	var req dto.MissionProgressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mission, err := h.missionService.Progress(r.Context(), userID, guildID, req.Kind, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "No mission rolled today")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(mission))
}

func toDTO(m *domain.Mission) dto.MissionResponseDTO {
	return dto.MissionResponseDTO{
		ID:       m.ID,
		Kind:     m.Kind,
		Goal:     m.Goal,
		Target:   m.Target,
		Progress: m.Progress,
		Reward:   m.Reward,
		Claimed:  m.Claimed,
	}
}
