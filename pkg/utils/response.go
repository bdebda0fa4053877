package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Response{Message: message})
}
