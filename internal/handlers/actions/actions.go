package actions

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
	Schedule(ctx context.Context, subject, kind string, payload []byte, delay time.Duration) (int64, error)
	Cancel(ctx context.Context, actionID int64) error
}

type ActionsHandler struct {
	actionService Service
}

func New(actionService Service) *ActionsHandler {
	return &ActionsHandler{
		actionService: actionService,
	}
}

// Schedule godoc
//
//	@Summary		Schedule a deferred action
//	@Description	Apply a registered effect now and schedule its automatic revert after the delay.
//	@Tags			Actions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ScheduleActionRequestDTO	true	"Action request payload"
//	@Success		200		{object}	dto.ScheduleActionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/actions [post]
func (h *ActionsHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduleActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	delay, err := validate.ParseDuration(req.Delay)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid delay")
		return
	}

	actionID, err := h.actionService.Schedule(r.Context(), req.Subject, req.Kind, req.Payload, delay)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFormat):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ScheduleActionResponseDTO{ActionID: actionID})
}

// Cancel godoc
//
//	@Summary		Cancel a deferred action
//	@Description	Cancel a pending action so its revert never fires. Cancelling an already fired action is a no-op.
//	@Tags			Actions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			actionID	path		int				true	"Action ID"
//	@Success		200			{object}	utils.Response	"Action cancelled"
//	@Failure		400			{object}	utils.Response	"Invalid path parameters"
//	@Failure		401			{object}	utils.Response	"Gateway not authorized"
//	@Failure		404			{object}	utils.Response	"Action not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/actions/{actionID} [delete]
func (h *ActionsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actionID, err := strconv.ParseInt(chi.URLParam(r, "actionID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid action id")
		return
	}

	if err := h.actionService.Cancel(r.Context(), actionID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Action not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Action cancelled"})
}
