// Package config
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/open-hangar/aeroledger/internal/interfaces/global"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
)

// BlobStoreConfig 键值blob存储配置, 飞行记录集合以JSON数组落盘
type BlobStoreConfig struct {
	StoreType       int    `json:"store_type"`        // 存储类型, 0: 本地存储, 1: 阿里云OSS存储, 2: 腾讯云对象存储
	Region          string `json:"region"`            // 云存储地域
	Bucket          string `json:"bucket"`            // 云存储桶名
	AccessId        string `json:"access_id"`         // 访问id
	AccessKey       string `json:"access_key"`        // 访问秘钥
	UseInternalUrl  bool   `json:"use_internal_url"`  // 上传使用内部域名
	LocalStorePath  string `json:"local_store_path"`  // 本地存储路径
	RemoteStorePath string `json:"remote_store_path"` // 远程存储路径
}

func defaultBlobStoreConfig() *BlobStoreConfig {
	return &BlobStoreConfig{
		StoreType:       0,
		Region:          "",
		Bucket:          "",
		AccessId:        "",
		AccessKey:       "",
		UseInternalUrl:  false,
		LocalStorePath:  "data",
		RemoteStorePath: "",
	}
}

func (config *BlobStoreConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.LocalStorePath == "" {
		return ValidFail(errors.New("invalid json field blob_store.local_store_path, path cannot be empty"))
	}
	if err := os.MkdirAll(filepath.Clean(config.LocalStorePath), global.DefaultDirectoryPermission); err != nil {
		return ValidFailWith(fmt.Errorf("error while creating local store path(%s)", config.LocalStorePath), err)
	}
	switch config.StoreType {
	case 0:
		// 本地存储, 不需要任何额外配置
	case 1, 2:
		// 阿里云OSS存储或者腾讯云对象存储
		if config.Region == "" {
			return ValidFail(errors.New("invalid json field blob_store.region, region cannot be empty"))
		}
		if config.Bucket == "" {
			return ValidFail(errors.New("invalid json field blob_store.bucket, bucket cannot be empty"))
		}
		if config.AccessId == "" {
			return ValidFail(errors.New("invalid json field blob_store.access_id, access_id cannot be empty"))
		}
		if config.AccessKey == "" {
			return ValidFail(errors.New("invalid json field blob_store.access_key, access_key cannot be empty"))
		}
	default:
		return ValidFail(fmt.Errorf("invalid json field blob_store.store_type %d, only support 0, 1, 2", config.StoreType))
	}
	return ValidPass()
}
