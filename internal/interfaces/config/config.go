// Package config
package config

import (
	"errors"
	"fmt"

	"github.com/open-hangar/aeroledger/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string            `json:"config_version"`
	HttpServer    *HttpServerConfig `json:"http_server"`
	Storage       *StorageConfig    `json:"storage"`
	BlobStore     *BlobStoreConfig  `json:"blob_store"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		HttpServer:    defaultHttpServerConfig(),
		Storage:       defaultStorageConfig(),
		BlobStore:     defaultBlobStoreConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result != AllMatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	}
	if result := c.Storage.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.BlobStore.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
