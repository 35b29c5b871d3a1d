// Package store
package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/tencentyun/cos-go-sdk-v5"
)

func bytesReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}

// TencentCosBlobStore 腾讯云对象存储后端, 本地存储同时作为热备
type TencentCosBlobStore struct {
	logger     log.LoggerInterface
	localStore BlobStoreInterface
	config     *config.BlobStoreConfig
	client     *cos.Client
}

func NewTencentCosBlobStore(
	logger log.LoggerInterface,
	config *config.BlobStoreConfig,
	localStore BlobStoreInterface,
) *TencentCosBlobStore {
	store := &TencentCosBlobStore{logger: logger, localStore: localStore, config: config}
	bucketUrl, _ := url.Parse(fmt.Sprintf("https://%s.cos.%s.myqcloud.com", config.Bucket, strings.ToLower(config.Region)))
	serviceUrl, _ := url.Parse(fmt.Sprintf("https://cos.%s.myqcloud.com", strings.ToLower(config.Region)))
	baseUrl := &cos.BaseURL{BucketURL: bucketUrl, ServiceURL: serviceUrl}
	store.client = cos.NewClient(baseUrl, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  config.AccessId,
			SecretKey: config.AccessKey,
		},
	})
	return store
}

func (store *TencentCosBlobStore) remotePath(key string) string {
	return path.Join(store.config.RemoteStorePath, key+".json")
}

func (store *TencentCosBlobStore) LoadBlob(key string) ([]byte, error) {
	response, err := store.client.Object.Get(context.Background(), store.remotePath(key), nil)
	if err != nil {
		store.logger.WarnF("TencentCosBlobStore.LoadBlob fetch from remote storage error: %v, falling back to local copy", err)
		return store.localStore.LoadBlob(key)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(response.Body)
	data, err := io.ReadAll(response.Body)
	if err != nil {
		store.logger.ErrorF("TencentCosBlobStore.LoadBlob read object body error: %v", err)
		return store.localStore.LoadBlob(key)
	}
	return data, nil
}

func (store *TencentCosBlobStore) SaveBlob(key string, data []byte) error {
	if err := store.localStore.SaveBlob(key, data); err != nil {
		return err
	}

	if _, err := store.client.Object.Put(context.Background(), store.remotePath(key), bytes.NewReader(data), nil); err != nil {
		store.logger.ErrorF("TencentCosBlobStore.SaveBlob upload blob to remote storage error: %v", err)
		return err
	}
	return nil
}
