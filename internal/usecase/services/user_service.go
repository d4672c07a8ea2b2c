package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerworks/bank-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/bank-ledger/internal/commons"
	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/ledgerworks/bank-ledger/internal/logger"
	"github.com/ledgerworks/bank-ledger/internal/usecase/service_interfaces"
	"golang.org/x/crypto/bcrypt"
)

// Verify that UserService implements the service_interfaces.UserService interface
var _ service_interfaces.UserService = (*UserService)(nil)

type UserService struct {
	userRepo domain.UserRepository
}

func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) RegisterUser(ctx context.Context, req models.RegisterUserRequest) (commons.Response[models.RegisterUserResponse], error) {
	logger.Info("user service register user request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service register user validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterUserResponse]("validation failed", err.Error()), err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		logger.Error("user service register user hash password failed", err, nil)
		return commons.ErrorResponse[models.RegisterUserResponse]("failed to register user", "Unable to register user right now"), err
	}

	user := domain.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		logger.Error("user service register user repository failed", err, logger.Fields{
			"username": user.Username,
		})
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return commons.ErrorResponse[models.RegisterUserResponse]("username already taken", "A user with this username already exists"), err
		}
		return commons.ErrorResponse[models.RegisterUserResponse]("failed to register user", "Unable to register user right now"), err
	}

	response := models.RegisterUserResponse{
		Username:  created.Username,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("user service register user success", logger.Fields{
		"username": response.Username,
	})

	return commons.SuccessResponse("user registered successfully", response), nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("user service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service login validation failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse]("validation failed", err.Error()), err
	}

	// Username match is exact and case sensitive; an unknown username and a
	// wrong password are indistinguishable to the caller.
	username := strings.TrimSpace(req.Username)
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Info("user service login unknown username", logger.Fields{
				"username": username,
			})
			return commons.ErrorResponse[models.LoginResponse]("invalid credentials", "username or password is incorrect"), domain.ErrInvalidCredentials
		}
		logger.Error("user service login lookup failed", err, logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Info("user service login password mismatch", logger.Fields{
				"username": username,
			})
			return commons.ErrorResponse[models.LoginResponse]("invalid credentials", "username or password is incorrect"), domain.ErrInvalidCredentials
		}
		wrappedErr := fmt.Errorf("compare password: %w", err)
		logger.Error("user service login compare failed", wrappedErr, logger.Fields{
			"username": username,
		})
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), wrappedErr
	}

	response := models.LoginResponse{Username: user.Username}

	logger.Info("user service login success", logger.Fields{
		"username": response.Username,
	})

	return commons.SuccessResponse("login successful", response), nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}
