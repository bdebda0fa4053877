package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/dto"
	"github.com/centraldiv/botcore/internal/service/ledgerservice"
	"github.com/centraldiv/botcore/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetOrCreate(ctx context.Context, userID, guildID int64) (*domain.Account, error)
	Credit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)
	Debit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)
	Transfer(ctx context.Context, guildID, fromID, toID, amount int64) (*ledgerservice.Receipt, error)
	ListTransactions(ctx context.Context, userID, guildID int64, limit int) ([]domain.Transaction, error)
	Reconcile(ctx context.Context, userID, guildID int64) (*ledgerservice.AuditReport, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Description	Retrieve the account for a guild member, creating it with the starting balance on first access.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			guildID	path		int	true	"Guild ID"
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Account state"
//	@Failure		400		{object}	utils.Response			"Invalid path parameters"
//	@Failure		401		{object}	utils.Response			"Gateway not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
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

	account, err := h.ledgerService.GetOrCreate(r.Context(), userID, guildID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:      account.UserID,
		GuildID:     account.GuildID,
		Balance:     account.Balance,
		TotalEarned: account.TotalEarned,
		TotalSpent:  account.TotalSpent,
	})
}

// Credit godoc
//
//	@Summary		Credit an account
//	@Description	Add funds to a guild member's account and record the transaction.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int						true	"Guild ID"
//	@Param			userID	path		int						true	"User ID"
//	@Param			request	body		dto.AdjustRequestDTO	true	"Credit request payload"
//	@Success		200		{object}	dto.GetTransactionsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/credit [post]
func (h *LedgerHandler) Credit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.ledgerService.Credit)
}

// Debit godoc
//
//	@Summary		Debit an account
//	@Description	Remove funds from a guild member's account if the balance covers the amount.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int						true	"Guild ID"
//	@Param			userID	path		int						true	"User ID"
//	@Param			request	body		dto.AdjustRequestDTO	true	"Debit request payload"
//	@Success		200		{object}	dto.GetTransactionsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/debit [post]
func (h *LedgerHandler) Debit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.ledgerService.Debit)
}

func (h *LedgerHandler) adjust(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)) {
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

	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := op(r.Context(), userID, guildID, req.Amount, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetTransactionsResponseDTO{
		ID:        txn.ID,
		Kind:      string(txn.Kind),
		Amount:    txn.Amount,
		Reason:    txn.Reason,
		CreatedAt: txn.CreatedAt,
	})
}

// Transfer godoc
//
//	@Summary		Transfer funds between accounts
//	@Description	Move funds from one guild member to another. The guild tax is taken from the amount and destroyed.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			guildID	path		int						true	"Guild ID"
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{object}	dto.TransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Gateway not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/guilds/{guildID}/transfer [post]
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	guildID, err := pathID(r, "guildID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid guild id")
		return
	}

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.ledgerService.Transfer(r.Context(), guildID, req.From, req.To, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidTarget):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		Debited:  receipt.Debit.Amount,
		Credited: receipt.Credit.Amount,
		Tax:      receipt.Tax,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List recent transactions for a guild member, newest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			guildID	path		int	true	"Guild ID"
//	@Param			userID	path		int	true	"User ID"
//	@Param			limit	query		int	false	"Maximum entries to return"
//	@Success		200		{array}		dto.GetTransactionsResponseDTO	"Transaction history"
//	@Success		204		{object}	utils.Response					"No transactions recorded"
//	@Failure		400		{object}	utils.Response					"Invalid path parameters"
//	@Failure		401		{object}	utils.Response					"Gateway not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/transactions [get]
func (h *LedgerHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
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

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	transactions, err := h.ledgerService.ListTransactions(r.Context(), userID, guildID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions recorded")
		return
	}

	response := make([]dto.GetTransactionsResponseDTO, len(transactions))
	for i, txn := range transactions {
		response[i] = dto.GetTransactionsResponseDTO{
			ID:        txn.ID,
			Kind:      string(txn.Kind),
			Amount:    txn.Amount,
			Reason:    txn.Reason,
			CreatedAt: txn.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Audit godoc
//
//	@Summary		Audit an account
//	@Description	Compare the stored balance against the transaction log net sum.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			guildID	path		int	true	"Guild ID"
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.AuditResponseDTO	"Audit report"
//	@Failure		400		{object}	utils.Response			"Invalid path parameters"
//	@Failure		401		{object}	utils.Response			"Gateway not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/guilds/{guildID}/users/{userID}/audit [get]
func (h *LedgerHandler) Audit(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.ledgerService.Reconcile(r.Context(), userID, guildID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuditResponseDTO{
		Balance:    report.Balance,
		NetSum:     report.NetSum,
		Consistent: report.Consistent,
	})
}
