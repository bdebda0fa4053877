package dto

import "time"

type OpenInvestmentRequestDTO struct {
	Amount int64  `json:"amount" example:"1000"`
	Risk   string `json:"risk" example:"medium"`
}

type InvestmentResponseDTO struct {
	ID         int64     `json:"id" example:"12"`
	Principal  int64     `json:"principal" example:"1000"`
	Risk       string    `json:"risk" example:"medium"`
	ReturnRate float64   `json:"return_rate" example:"0.27"`
	MaturesAt  time.Time `json:"matures_at" example:"2024-12-11T16:09:57+03:00"`
	Status     string    `json:"status" example:"active"`
}
