package database

import (
	"context"
	"fmt"
	"time"

	"github.com/open-hangar/aeroledger/internal/database/store"
	c "github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/global"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/thanhpk/randstr"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newRecordId 会话内无碰撞的记录标识
func newRecordId() string {
	return randstr.Hex(16)
}

// cloneRecord 返回记录的值拷贝, 存储内部指针不跨越互斥锁逃逸
func cloneRecord[T any](record *T) *T {
	clone := *record
	return &clone
}

type DatabaseShutdownCallback struct {
	db *gorm.DB
}

func NewDatabaseShutdownCallback(db *gorm.DB) *DatabaseShutdownCallback {
	return &DatabaseShutdownCallback{db: db}
}

func (dc *DatabaseShutdownCallback) Invoke(_ context.Context) error {
	if dc.db == nil {
		return nil
	}
	pool, err := dc.db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// NewBlobStore 根据配置选择blob存储后端, 云端后端总是包装本地存储作为热备
func NewBlobStore(logger log.LoggerInterface, config *c.BlobStoreConfig) service.BlobStoreInterface {
	var blobStore service.BlobStoreInterface
	blobStore = store.NewLocalBlobStore(logger, config)
	switch config.StoreType {
	case 1:
		blobStore = store.NewALiYunOssBlobStore(logger, config, blobStore)
	case 2:
		blobStore = store.NewTencentCosBlobStore(logger, config, blobStore)
	}
	return blobStore
}

// ConnectDatabase 按配置构建存储层
// memory类型在进程内持有集合并通过blob store持久化飞行记录
// 其余类型通过gorm连接数据库
func ConnectDatabase(
	logger log.LoggerInterface,
	config *c.Config,
	seed *SeedData,
	debug bool,
) (global.Callable, *operation.DatabaseOperations, error) {
	if seed == nil {
		seed = EmptySeed()
	}

	blobStore := NewBlobStore(logger, config.BlobStore)

	if config.Storage.StorageType == c.Memory {
		logger.Info("Using in-memory storage, flights persisted through blob store")
		operations := operation.NewDatabaseOperations(
			NewMemoryUserOperation(logger),
			NewMemoryLogbookOperation(logger, blobStore, seed.Entries),
			NewMemoryAircraftOperation(logger, seed.Aircraft),
			NewMemoryMaintenanceOperation(logger, seed.MaintenanceItems),
			NewMemoryPartOrderOperation(logger, seed.PartOrders),
			NewMemorySupplierOperation(logger, seed.Suppliers),
			NewMemorySensorDataOperation(logger, seed.SensorData),
		)
		return NewDatabaseShutdownCallback(nil), operations, nil
	}

	connection := config.Storage.GetConnection(logger)

	connectionConfig := gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true

	if debug {
		connectionConfig.Logger = gormlogger.Default.LogMode(gormlogger.Error)
	} else {
		connectionConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}

	if err = db.Migrator().AutoMigrate(
		&operation.User{},
		&operation.LogbookEntry{},
		&operation.Aircraft{},
		&operation.MaintenanceItem{},
		&operation.PartOrder{},
	); err != nil {
		return nil, nil, fmt.Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	maxOpenConnections := config.Storage.ServerMaxConnections * 4 / 5 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5                      // 空闲连接约为最大连接的20%

	dbPool.SetMaxIdleConns(maxIdleConnections)
	dbPool.SetMaxOpenConns(maxOpenConnections)
	dbPool.SetConnMaxLifetime(config.Storage.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %v", err)
	}
	logger.Info("Database initialized and connection established")

	queryTimeout := config.Storage.QueryDuration
	operations := operation.NewDatabaseOperations(
		NewDatabaseUserOperation(db, queryTimeout),
		NewDatabaseLogbookOperation(db, queryTimeout),
		NewDatabaseAircraftOperation(db, queryTimeout),
		NewDatabaseMaintenanceOperation(db, queryTimeout),
		NewDatabasePartOrderOperation(db, queryTimeout),
		NewMemorySupplierOperation(logger, seed.Suppliers),
		NewMemorySensorDataOperation(logger, seed.SensorData),
	)
	return NewDatabaseShutdownCallback(db), operations, nil
}
