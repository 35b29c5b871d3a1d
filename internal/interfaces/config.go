// Package interfaces
package interfaces

import (
	. "github.com/open-hangar/aeroledger/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
