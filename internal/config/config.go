package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultHTTPAddr = ":8080"
const defaultChannelID = "LedgerApp"
const defaultChannelKey = "LedgerKey001"
const defaultInterestRate = "0.05"

type Config struct {
	HTTPAddr     string
	ChannelID    string
	ChannelKey   string
	InterestRate decimal.Decimal
}

func Load() (Config, error) {
	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = defaultHTTPAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	rateRaw := strings.TrimSpace(os.Getenv("INTEREST_RATE"))
	if rateRaw == "" {
		rateRaw = defaultInterestRate
	}

	rate, err := decimal.NewFromString(rateRaw)
	if err != nil {
		return Config{}, fmt.Errorf("parse INTEREST_RATE: %w", err)
	}
	if !rate.IsPositive() {
		return Config{}, fmt.Errorf("INTEREST_RATE must be positive, got %s", rate)
	}

	return Config{
		HTTPAddr:     addr,
		ChannelID:    channelID,
		ChannelKey:   channelKey,
		InterestRate: rate,
	}, nil
}
