package config

import "time"

type GrantConfig interface {
	GetDefaultAccessTokenExpiry() time.Duration
	GetDefaultRefreshTokenExpiry() time.Duration
	GetTokenGenerationLength() int
}

type Grant struct{}

var _ GrantConfig = Grant{}

func (Grant) GetDefaultAccessTokenExpiry() time.Duration {
	return 1 * time.Hour
}

func (Grant) GetDefaultRefreshTokenExpiry() time.Duration {
	return 7 * 24 * time.Hour // 7 days
}

func (Grant) GetTokenGenerationLength() int {
	return 32 // 32 bytes = 256 bits
}
