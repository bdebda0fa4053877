package dto

type GuildConfigDTO struct {
	CurrencyName   string  `json:"currency_name" example:"Coins"`
	CurrencySymbol string  `json:"currency_symbol" example:"$"`
	StartBalance   int64   `json:"start_balance" example:"1000"`
	TaxRate        float64 `json:"tax_rate" example:"0.05"`
	RaidMode       bool    `json:"raid_mode" example:"false"`
}

type RaidModeRequestDTO struct {
	Window string `json:"window" example:"1h"`
}

type RaidModeResponseDTO struct {
	ActionID int64 `json:"action_id" example:"42"`
}

type SalaryRequestDTO struct {
	RoleID   int64  `json:"role_id" example:"561002034"`
	Amount   int64  `json:"amount" example:"250"`
	Interval string `json:"interval" example:"1d"`
}
