// Package config
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type StorageType string

const (
	// Memory 进程内存储, 飞行记录通过blob store持久化
	Memory     StorageType = "memory"
	MySQL      StorageType = "mysql"
	PostgreSQL StorageType = "postgres"
	SQLite     StorageType = "sqlite3"
)

var allowedStorageType = []StorageType{Memory, MySQL, PostgreSQL, SQLite}

type StorageConfig struct {
	Type                 string        `json:"type"`
	StorageType          StorageType   `json:"-"`
	Database             string        `json:"database"`
	Host                 string        `json:"host"`
	Port                 int           `json:"port"`
	Username             string        `json:"username"`
	Password             string        `json:"password"`
	EnableSSL            bool          `json:"enable_ssl"`
	ConnectIdleTimeout   string        `json:"connect_idle_timeout"` // 连接空闲超时时间
	ConnectIdleDuration  time.Duration `json:"-"`
	QueryTimeout         string        `json:"query_timeout"` // 每次查询超时时间
	QueryDuration        time.Duration `json:"-"`
	ServerMaxConnections int           `json:"server_max_connections"` // 最大连接池大小
}

func defaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		Type:                 "memory",
		Database:             "aeroledger.db",
		Host:                 "",
		Port:                 0,
		Username:             "",
		Password:             "",
		EnableSSL:            false,
		ConnectIdleTimeout:   "1h",
		QueryTimeout:         "5s",
		ServerMaxConnections: 32,
	}
}

func (config *StorageConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	config.StorageType = StorageType(config.Type)
	if !slices.Contains(allowedStorageType, config.StorageType) {
		return ValidFail(fmt.Errorf("storage type %s is not allowed, supported storage is %v, please check the configuration file", config.StorageType, allowedStorageType))
	}

	if duration, err := time.ParseDuration(config.ConnectIdleTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field storage.connect_idle_timeout"), err)
	} else {
		config.ConnectIdleDuration = duration
	}

	if duration, err := time.ParseDuration(config.QueryTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field storage.query_timeout"), err)
	} else {
		config.QueryDuration = duration
	}
	return ValidPass()
}

// GetConnection 根据配置选择gorm方言, Memory类型没有数据库连接
func (config *StorageConfig) GetConnection(logger log.LoggerInterface) gorm.Dialector {
	switch config.StorageType {
	case MySQL:
		return mySQLConnection(logger, config)
	case PostgreSQL:
		return postgreSQLConnection(logger, config)
	case SQLite:
		return sqliteConnection(logger, config)
	default:
		return nil
	}
}

func mySQLConnection(logger log.LoggerInterface, db *StorageConfig) gorm.Dialector {
	var enableSSL string
	if db.EnableSSL {
		enableSSL = "true"
	} else {
		enableSSL = "false"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&tls=%s",
		db.Username,
		db.Password,
		db.Host,
		db.Port,
		db.Database,
		enableSSL,
	)
	logger.DebugF("Mysql Connection DSN %s", dsn)
	return mysql.Open(dsn)
}

func postgreSQLConnection(logger log.LoggerInterface, db *StorageConfig) gorm.Dialector {
	var enableSSL string
	if db.EnableSSL {
		enableSSL = "enable"
	} else {
		enableSSL = "disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		db.Host,
		db.Username,
		db.Password,
		db.Database,
		db.Port,
		enableSSL,
	)
	logger.DebugF("PostgreSQL Connection DSN %s", dsn)
	return postgres.Open(dsn)
}

func sqliteConnection(_ log.LoggerInterface, db *StorageConfig) gorm.Dialector {
	return sqlite.Open(db.Database)
}
