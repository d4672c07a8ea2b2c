package main

import (
	"log"
	"net/http"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/controller"
	"github.com/ledgerworks/bank-ledger/internal/adapter/http/middleware"
	"github.com/ledgerworks/bank-ledger/internal/adapter/http/router"
	"github.com/ledgerworks/bank-ledger/internal/adapter/repository/memory"
	"github.com/ledgerworks/bank-ledger/internal/config"
	"github.com/ledgerworks/bank-ledger/internal/logger"
	"github.com/ledgerworks/bank-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userRepo := memory.NewUserRepository()
	accountRepo := memory.NewAccountRepository()

	userService := services.NewUserService(userRepo)
	accountService := services.NewAccountService(accountRepo)
	ledgerService := services.NewLedgerService(accountRepo, cfg.InterestRate)

	userController := controller.NewUserController(userService)
	accountController := controller.NewAccountController(accountService)
	ledgerController := controller.NewLedgerController(ledgerService)

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	mux := router.New(userController, accountController, ledgerController, authMiddleware)
	handler := middleware.RequestID(mux)

	logger.Info("bank ledger server starting", logger.Fields{
		"addr":         cfg.HTTPAddr,
		"interestRate": cfg.InterestRate,
	})

	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		log.Fatalf("serve http: %v", err)
	}
}
