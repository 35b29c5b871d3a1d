// Package config
package config

import (
	"errors"

	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Enabled     bool           `json:"enabled"`
	Host        string         `json:"host"`
	Port        int            `json:"port"`
	EmailServer *gomail.Dialer `json:"-"`
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	Sender      string         `json:"sender"`
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:  false,
		Host:     "smtp.example.com",
		Port:     465,
		Username: "maintenance@example.com",
		Password: "123456",
		Sender:   "AeroLedger Maintenance <maintenance@example.com>",
	}
}

func (config *EmailConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}

	if config.Host == "" {
		return ValidFail(errors.New("invalid json field http_server.email.host, host cannot be empty"))
	}
	if config.Sender == "" {
		config.Sender = config.Username
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
