// Package service
package service

import "errors"

var (
	// ErrBlobNotFound 指定键没有持久化数据
	ErrBlobNotFound = errors.New("blob does not exist")
)

// BlobStoreInterface 键值blob存储, 记录集合以JSON数组形式整体读写
// 读取失败由调用方按空集合处理, 存储层从不因此中止
type BlobStoreInterface interface {
	// LoadBlob 读取指定键的完整内容, 键不存在时返回ErrBlobNotFound
	LoadBlob(key string) (data []byte, err error)
	// SaveBlob 整体覆盖指定键的内容
	SaveBlob(key string, data []byte) (err error)
}
