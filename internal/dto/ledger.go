package dto

import "time"

type BalanceResponseDTO struct {
	UserID      int64 `json:"user_id" example:"207733140633"`
	GuildID     int64 `json:"guild_id" example:"414523602"`
	Balance     int64 `json:"balance" example:"1250"`
	TotalEarned int64 `json:"total_earned" example:"4100"`
	TotalSpent  int64 `json:"total_spent" example:"2850"`
}

type AdjustRequestDTO struct {
	Amount int64  `json:"amount" example:"100"`
	Reason string `json:"reason" example:"trivia win"`
}

type TransferRequestDTO struct {
	From   int64 `json:"from" example:"207733140633"`
	To     int64 `json:"to" example:"309114281907"`
	Amount int64 `json:"amount" example:"500"`
}

type TransferResponseDTO struct {
	Debited  int64 `json:"debited" example:"500"`
	Credited int64 `json:"credited" example:"475"`
	Tax      int64 `json:"tax" example:"25"`
}

type GetTransactionsResponseDTO struct {
	ID        int64     `json:"id" example:"118"`
	Kind      string    `json:"kind" example:"credit"`
	Amount    int64     `json:"amount" example:"100"`
	Reason    string    `json:"reason" example:"trivia win"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type AuditResponseDTO struct {
	Balance    int64 `json:"balance" example:"1250"`
	NetSum     int64 `json:"net_sum" example:"250"`
	Consistent bool  `json:"consistent" example:"true"`
}
