package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/commons"
	"github.com/ledgerworks/bank-ledger/internal/logger"
)

var errMissingAccountNumber = errors.New("accountNumber is required")
var errInvalidAccountNumber = errors.New("accountNumber must be a positive integer")

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	CheckBalance(ctx context.Context, accountNumber int64) (commons.Response[models.CheckBalanceResponse], error)
	GetStatement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	openHandler := http.HandlerFunc(c.openAccount)
	balanceHandler := http.HandlerFunc(c.checkBalance)
	statementHandler := http.HandlerFunc(c.statement)
	if authMiddleware != nil {
		openHandler = authMiddleware(openHandler).ServeHTTP
		balanceHandler = authMiddleware(balanceHandler).ServeHTTP
		statementHandler = authMiddleware(statementHandler).ServeHTTP
	}
	mux.Handle("/open-account", http.HandlerFunc(openHandler))
	mux.Handle("/check-balance", http.HandlerFunc(balanceHandler))
	mux.Handle("/statement", http.HandlerFunc(statementHandler))
}

func (c *AccountController) openAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		response := commons.ErrorResponse[models.OpenAccountResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	var req models.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.OpenAccountResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.OpenAccount(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusForMessage(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AccountController) checkBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		response := commons.ErrorResponse[models.CheckBalanceResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	accountNumber, err := accountNumberParam(r)
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.CheckBalanceResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.CheckBalance(r.Context(), accountNumber)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusForMessage(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) statement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		response := commons.ErrorResponse[models.StatementResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	accountNumber, err := accountNumberParam(r)
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.GetStatement(r.Context(), accountNumber)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusForMessage(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func accountNumberParam(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("accountNumber"))
	if raw == "" {
		return 0, errMissingAccountNumber
	}

	accountNumber, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || accountNumber <= 0 {
		return 0, errInvalidAccountNumber
	}

	return accountNumber, nil
}
