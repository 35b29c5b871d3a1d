package database

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/open-hangar/aeroledger/internal/interfaces/global"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/open-hangar/aeroledger/internal/utils"
)

// MemoryLogbookOperation 进程内飞行日志存储
// 集合是唯一权威数据, 每次变更后整体写入blob store, 启动时回读
type MemoryLogbookOperation struct {
	logger    log.LoggerInterface
	blobStore service.BlobStoreInterface
	mu        sync.Mutex
	entries   []*LogbookEntry
}

func NewMemoryLogbookOperation(
	logger log.LoggerInterface,
	blobStore service.BlobStoreInterface,
	seed []*LogbookEntry,
) *MemoryLogbookOperation {
	operation := &MemoryLogbookOperation{
		logger:    logger,
		blobStore: blobStore,
		entries:   make([]*LogbookEntry, 0, len(seed)),
	}
	for _, entry := range seed {
		clone := cloneRecord(entry)
		NormalizeEntry(clone)
		operation.entries = append(operation.entries, clone)
	}
	operation.loadPersistedEntries()
	return operation
}

// loadPersistedEntries 启动时回读持久化的飞行记录
// 损坏或缺失的blob按空集合处理, 读失败从不向上传播
func (logbookOperation *MemoryLogbookOperation) loadPersistedEntries() {
	if logbookOperation.blobStore == nil {
		return
	}
	data, err := logbookOperation.blobStore.LoadBlob(global.FlightsBlobKey)
	if err != nil {
		if err != service.ErrBlobNotFound {
			logbookOperation.logger.WarnF("Fail to load persisted flights, starting with %d seed entries: %v", len(logbookOperation.entries), err)
		}
		return
	}
	var persisted []*LogbookEntry
	if err := json.Unmarshal(data, &persisted); err != nil {
		logbookOperation.logger.WarnF("Persisted flights blob is not valid JSON, treating as empty: %v", err)
		return
	}
	for _, entry := range persisted {
		NormalizeEntry(entry)
	}
	logbookOperation.entries = persisted
	logbookOperation.logger.DebugF("Loaded %d persisted logbook entries", len(persisted))
}

// persistEntries 变更后整体落盘, 持久化失败只记录日志, 不影响内存集合
func (logbookOperation *MemoryLogbookOperation) persistEntries() {
	if logbookOperation.blobStore == nil {
		return
	}
	data, err := json.Marshal(logbookOperation.entries)
	if err != nil {
		logbookOperation.logger.ErrorF("Fail to serialize logbook entries: %v", err)
		return
	}
	if err := logbookOperation.blobStore.SaveBlob(global.FlightsBlobKey, data); err != nil {
		logbookOperation.logger.ErrorF("Fail to persist logbook entries: %v", err)
	}
}

// sortedCopy 按日期倒序的值拷贝, 日期相同时保持插入顺序
// 返回的记录与内部集合不共享指针, 调用方读取时无需持锁
func (logbookOperation *MemoryLogbookOperation) sortedCopy(entries []*LogbookEntry) []*LogbookEntry {
	result := make([]*LogbookEntry, len(entries))
	for index, entry := range entries {
		result[index] = cloneRecord(entry)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

func (logbookOperation *MemoryLogbookOperation) GetEntries() ([]*LogbookEntry, error) {
	logbookOperation.mu.Lock()
	defer logbookOperation.mu.Unlock()
	return logbookOperation.sortedCopy(logbookOperation.entries), nil
}

func (logbookOperation *MemoryLogbookOperation) GetEntriesByAircraft(aircraftIdent string) ([]*LogbookEntry, error) {
	ident := strings.ToUpper(strings.TrimSpace(aircraftIdent))
	logbookOperation.mu.Lock()
	defer logbookOperation.mu.Unlock()
	filtered := utils.Filter(logbookOperation.entries, func(entry *LogbookEntry) bool {
		return entry.AircraftIdent == ident
	})
	return logbookOperation.sortedCopy(filtered), nil
}

func (logbookOperation *MemoryLogbookOperation) GetEntryById(id string) (*LogbookEntry, error) {
	logbookOperation.mu.Lock()
	defer logbookOperation.mu.Unlock()
	entry := utils.Find(logbookOperation.entries, func(entry *LogbookEntry) bool {
		return entry.ID == id
	})
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return cloneRecord(entry), nil
}

func (logbookOperation *MemoryLogbookOperation) AddEntry(entry *LogbookEntry) (*LogbookEntry, error) {
	logbookOperation.mu.Lock()
	defer logbookOperation.mu.Unlock()

	entry.ID = logbookOperation.nextId()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	NormalizeEntry(entry)

	logbookOperation.entries = append(logbookOperation.entries, cloneRecord(entry))
	logbookOperation.persistEntries()
	return entry, nil
}

// nextId 会话内唯一的记录标识, 碰撞时重新生成
func (logbookOperation *MemoryLogbookOperation) nextId() string {
	for {
		id := newRecordId()
		if utils.Find(logbookOperation.entries, func(entry *LogbookEntry) bool { return entry.ID == id }) == nil {
			return id
		}
	}
}

func (logbookOperation *MemoryLogbookOperation) UpdateEntry(id string, patch *LogbookEntryPatch) (*LogbookEntry, error) {
	logbookOperation.mu.Lock()
	defer logbookOperation.mu.Unlock()

	index := utils.FindIndex(logbookOperation.entries, func(entry *LogbookEntry) bool {
		return entry.ID == id
	})
	if index == -1 {
		return nil, ErrEntryNotFound
	}

	// 补丁作用在值拷贝上再整体换入, 已取走旧指针的读者不受影响
	updated := cloneRecord(logbookOperation.entries[index])
	patch.Apply(updated)
	NormalizeEntry(updated)
	updated.UpdatedAt = time.Now().UTC()
	logbookOperation.entries[index] = cloneRecord(updated)
	logbookOperation.persistEntries()
	return updated, nil
}

func (logbookOperation *MemoryLogbookOperation) DeleteEntry(id string) (bool, error) {
	logbookOperation.mu.Lock()
	defer logbookOperation.mu.Unlock()

	index := utils.FindIndex(logbookOperation.entries, func(entry *LogbookEntry) bool {
		return entry.ID == id
	})
	if index == -1 {
		return false, nil
	}

	logbookOperation.entries = append(logbookOperation.entries[:index], logbookOperation.entries[index+1:]...)
	logbookOperation.persistEntries()
	return true, nil
}
