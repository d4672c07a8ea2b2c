package domain

import "errors"

var ErrAccountNotFound = errors.New("Account not found")
var ErrUserNotFound = errors.New("User not found")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrInvalidCredentials = errors.New("Invalid credentials")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrDuplicateUsername = errors.New("Username already registered")
var ErrInvalidAccountType = errors.New("Invalid account type")
var ErrSameAccount = errors.New("Cannot transfer to the same account")
