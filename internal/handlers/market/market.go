package market

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
	Open(ctx context.Context, guildID, sellerID int64, item string, startPrice int64, duration time.Duration) (*domain.Auction, error)
	Get(ctx context.Context, auctionID int64) (*domain.Auction, error)
	Bid(ctx context.Context, auctionID, bidderID, amount int64) error
}

type MarketHandler struct {
	auctionService Service
}

func New(auctionService Service) *MarketHandler {
	return &MarketHandler{
		auctionService: auctionService,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// Open godoc
//
//	@Summary		Open an auction
//	@Description	Put an item up for auction with a start price and closing time.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int							true	"Guild ID"
//	@Param			request	body		dto.OpenAuctionRequestDTO	true	"Auction request payload"
//	@Success		200		{object}	dto.AuctionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/auctions [post]
func (h *MarketHandler) Open(w http.ResponseWriter, r *http.Request) {
	guildID, err := pathID(r, "guildID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid guild id")
		return
	}

	var req dto.OpenAuctionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	duration, err := validate.ParseDuration(req.Duration)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid duration")
		return
	}

	auction, err := h.auctionService.Open(r.Context(), guildID, req.SellerID, req.Item, req.StartPrice, duration)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidFormat):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(auction))
}

// Get godoc
//
//	@Summary		Get auction state
//	@Description	Retrieve the current state of an auction including the leading bid.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			guildID		path		int	true	"Guild ID"
//	@Param			auctionID	path		int	true	"Auction ID"
//	@Success		200			{object}	dto.AuctionResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid path parameters"
//	@Failure		401			{object}	utils.Response	"Gateway not authorized"
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/auctions/{auctionID} [get]
func (h *MarketHandler) Get(w http.ResponseWriter, r *http.Request) {
	auctionID, err := pathID(r, "auctionID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	auction, err := h.auctionService.Get(r.Context(), auctionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Auction not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(auction))
}

// Bid godoc
//
//	@Summary		Place a bid
//	@Description	Outbid the current leader. The bid is debited up front and the previous leader is refunded.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID		path		int					true	"Guild ID"
//	@Param			auctionID	path		int					true	"Auction ID"
//	@Param			request		body		dto.BidRequestDTO	true	"Bid request payload"
//	@Success		200			{object}	utils.Response		"Bid accepted"
//	@Failure		400			{object}	utils.Response		"Invalid request"
//	@Failure		401			{object}	utils.Response		"Gateway not authorized"
//	@Failure		402			{object}	utils.Response		"Insufficient funds"
//	@Failure		404			{object}	utils.Response		"Auction not found"
//	@Failure		409			{object}	utils.Response		"Auction closed or bid too low"
//	@Failure		500			{object}	utils.Response		"Internal server error"
//	@Router			/api/guilds/{guildID}/auctions/{auctionID}/bids [post]
func (h *MarketHandler) Bid(w http.ResponseWriter, r *http.Request) {
	auctionID, err := pathID(r, "auctionID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	var req dto.BidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.auctionService.Bid(r.Context(), auctionID, req.BidderID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Auction not found")
		case errors.Is(err, domain.ErrAuctionClosed), errors.Is(err, domain.ErrBidTooLow):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidTarget):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bid accepted"})
}

func toDTO(a *domain.Auction) dto.AuctionResponseDTO {
	return dto.AuctionResponseDTO{
		ID:            a.ID,
		SellerID:      a.SellerID,
		Item:          a.Item,
		StartPrice:    a.StartPrice,
		CurrentBid:    a.CurrentBid,
		HighestBidder: a.HighestBidder,
		EndsAt:        a.EndsAt,
		Status:        string(a.Status),
	}
}
