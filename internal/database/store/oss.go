// Package store
package store

import (
	"context"
	"io"
	"path"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
)

// ALiYunOssBlobStore 阿里云OSS后端, 本地存储同时作为热备
type ALiYunOssBlobStore struct {
	logger     log.LoggerInterface
	localStore BlobStoreInterface
	config     *config.BlobStoreConfig
	client     *oss.Client
}

func NewALiYunOssBlobStore(
	logger log.LoggerInterface,
	config *config.BlobStoreConfig,
	localStore BlobStoreInterface,
) *ALiYunOssBlobStore {
	store := &ALiYunOssBlobStore{logger: logger, localStore: localStore, config: config}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessId, config.AccessKey)).
		WithRegion(config.Region).
		WithUseInternalEndpoint(config.UseInternalUrl)
	store.client = oss.NewClient(cfg)
	return store
}

func (store *ALiYunOssBlobStore) remotePath(key string) string {
	return path.Join(store.config.RemoteStorePath, key+".json")
}

func (store *ALiYunOssBlobStore) LoadBlob(key string) ([]byte, error) {
	getRequest := &oss.GetObjectRequest{
		Bucket: oss.Ptr(store.config.Bucket),
		Key:    oss.Ptr(store.remotePath(key)),
	}
	result, err := store.client.GetObject(context.TODO(), getRequest)
	if err != nil {
		store.logger.WarnF("ALiYunOssBlobStore.LoadBlob fetch from remote storage error: %v, falling back to local copy", err)
		return store.localStore.LoadBlob(key)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(result.Body)
	data, err := io.ReadAll(result.Body)
	if err != nil {
		store.logger.ErrorF("ALiYunOssBlobStore.LoadBlob read object body error: %v", err)
		return store.localStore.LoadBlob(key)
	}
	return data, nil
}

func (store *ALiYunOssBlobStore) SaveBlob(key string, data []byte) error {
	if err := store.localStore.SaveBlob(key, data); err != nil {
		return err
	}

	putRequest := &oss.PutObjectRequest{
		Bucket:       oss.Ptr(store.config.Bucket),
		Key:          oss.Ptr(store.remotePath(key)),
		StorageClass: oss.StorageClassStandard,
		Body:         bytesReader(data),
	}

	if _, err := store.client.PutObject(context.TODO(), putRequest); err != nil {
		store.logger.ErrorF("ALiYunOssBlobStore.SaveBlob upload blob to remote storage error: %v", err)
		return err
	}
	return nil
}
