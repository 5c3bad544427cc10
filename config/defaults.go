package config

import (
	"strings"
	"time"
)

const (
	defaultMaxRequestBodySize   = "100KB"
	defaultElementsPerPage      = 10
	defaultMaxElementsPerPage   = 100
	defaultOrderCodeMaxAttempts = 5
	defaultSearchHistoryLimit   = 10
	defaultMaxItemsPerRequest   = 10000
	defaultAccessTokenTTL       = 15 * time.Minute
	defaultRefreshTokenTTL      = 7 * 24 * time.Hour
)

// applyDefaults fills the settings the use cases rely on when the YAML omits them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Auth = orNew(cfg.Auth)
	cfg.Auth.AccessTokenTTL = positive(cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	cfg.Auth.RefreshTokenTTL = positive(cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL)

	cfg.Pagination = orNew(cfg.Pagination)
	cfg.Pagination.DefaultElementsPerPage = positive(cfg.Pagination.DefaultElementsPerPage, defaultElementsPerPage)
	// The cap never undercuts the default page size.
	if cfg.Pagination.MaxElementsPerPage < cfg.Pagination.DefaultElementsPerPage {
		cfg.Pagination.MaxElementsPerPage = max(defaultMaxElementsPerPage, cfg.Pagination.DefaultElementsPerPage)
	}

	cfg.Order = orNew(cfg.Order)
	cfg.Order.CodeMaxAttempts = positive(cfg.Order.CodeMaxAttempts, defaultOrderCodeMaxAttempts)

	cfg.Promotion = orNew(cfg.Promotion)
	cfg.Promotion.MaxItemsPerRequest = positive(cfg.Promotion.MaxItemsPerRequest, defaultMaxItemsPerRequest)

	cfg.SearchHistory = orNew(cfg.SearchHistory)
	cfg.SearchHistory.Limit = positive(cfg.SearchHistory.Limit, defaultSearchHistoryLimit)
}

func orNew[T any](section *T) *T {
	if section == nil {
		return new(T)
	}

	return section
}

func positive[T int | time.Duration](value, fallback T) T {
	if value <= 0 {
		return fallback
	}

	return value
}
