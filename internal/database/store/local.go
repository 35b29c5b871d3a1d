// Package store
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/global"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
)

type LocalBlobStore struct {
	logger log.LoggerInterface
	config *config.BlobStoreConfig
}

func NewLocalBlobStore(logger log.LoggerInterface, config *config.BlobStoreConfig) *LocalBlobStore {
	return &LocalBlobStore{
		logger: logger,
		config: config,
	}
}

func (store *LocalBlobStore) blobPath(key string) string {
	return filepath.Join(store.config.LocalStorePath, fmt.Sprintf("%s.json", filepath.Base(key)))
}

func (store *LocalBlobStore) LoadBlob(key string) ([]byte, error) {
	data, err := os.ReadFile(store.blobPath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		store.logger.ErrorF("LocalBlobStore.LoadBlob read file error: %v", err)
		return nil, err
	}
	return data, nil
}

func (store *LocalBlobStore) SaveBlob(key string, data []byte) error {
	if err := os.WriteFile(store.blobPath(key), data, global.DefaultFilePermissions); err != nil {
		store.logger.ErrorF("LocalBlobStore.SaveBlob write file error: %v", err)
		return err
	}
	return nil
}
