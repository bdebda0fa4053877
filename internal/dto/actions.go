package dto

import "encoding/json"

type ScheduleActionRequestDTO struct {
	Subject string          `json:"subject" example:"user:309114281907"`
	Kind    string          `json:"kind" example:"webhook"`
	Payload json.RawMessage `json:"payload" swaggertype:"object"`
	Delay   string          `json:"delay" example:"30m"`
}

type ScheduleActionResponseDTO struct {
	ActionID int64 `json:"action_id" example:"42"`
}
