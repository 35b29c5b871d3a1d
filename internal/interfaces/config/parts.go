// Package config
package config

import (
	"errors"
	"time"

	"github.com/open-hangar/aeroledger/internal/interfaces/log"
)

// PartsConfig 外部零件查询接口配置
type PartsConfig struct {
	SearchUrl       string        `json:"search_url"`       // 零件检索接口
	QuotesUrl       string        `json:"quotes_url"`       // 报价接口
	QuotesApiKey    string        `json:"quotes_api_key"`   // 报价接口Bearer令牌
	RequestTimeout  string        `json:"request_timeout"`  // 单次请求超时时间
	RequestDuration time.Duration `json:"-"`
}

func defaultPartsConfig() *PartsConfig {
	return &PartsConfig{
		SearchUrl:      "https://parts.example.com/api/parts",
		QuotesUrl:      "https://api.locatory.com/v1/quotes",
		QuotesApiKey:   "",
		RequestTimeout: "10s",
	}
}

func (config *PartsConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RequestTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.parts.request_timeout"), err)
	} else {
		config.RequestDuration = duration
	}
	if config.QuotesApiKey == "" {
		logger.Warn("Parts quote lookups will fail until http_server.parts.quotes_api_key is configured")
	}
	return ValidPass()
}
