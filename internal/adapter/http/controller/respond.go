package controller

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerworks/bank-ledger/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("write json response failed", err, nil)
	}
}

// statusForMessage maps the service envelope message to an HTTP status. The
// services speak in messages, not transport codes; this is the one place the
// translation happens.
func statusForMessage(message string) int {
	switch message {
	case "validation failed", "insufficient funds":
		return http.StatusBadRequest
	case "invalid credentials":
		return http.StatusUnauthorized
	case "Account not found", "User not found":
		return http.StatusNotFound
	case "username already taken":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
