package database

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"gorm.io/gorm"
)

// DatabaseLogbookOperation 数据库后端的飞行日志存储
type DatabaseLogbookOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewDatabaseLogbookOperation(db *gorm.DB, queryTimeout time.Duration) *DatabaseLogbookOperation {
	return &DatabaseLogbookOperation{db: db, queryTimeout: queryTimeout}
}

func (logbookOperation *DatabaseLogbookOperation) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), logbookOperation.queryTimeout)
}

func (logbookOperation *DatabaseLogbookOperation) GetEntries() (entries []*LogbookEntry, err error) {
	ctx, cancel := logbookOperation.queryContext()
	defer cancel()
	err = logbookOperation.db.WithContext(ctx).
		Order("date DESC, created_at ASC").
		Find(&entries).Error
	return
}

func (logbookOperation *DatabaseLogbookOperation) GetEntriesByAircraft(aircraftIdent string) (entries []*LogbookEntry, err error) {
	ctx, cancel := logbookOperation.queryContext()
	defer cancel()
	err = logbookOperation.db.WithContext(ctx).
		Where("aircraft_ident = ?", strings.ToUpper(strings.TrimSpace(aircraftIdent))).
		Order("date DESC, created_at ASC").
		Find(&entries).Error
	return
}

func (logbookOperation *DatabaseLogbookOperation) GetEntryById(id string) (entry *LogbookEntry, err error) {
	entry = &LogbookEntry{}
	ctx, cancel := logbookOperation.queryContext()
	defer cancel()
	err = logbookOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	return
}

func (logbookOperation *DatabaseLogbookOperation) AddEntry(entry *LogbookEntry) (*LogbookEntry, error) {
	entry.ID = newRecordId()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	NormalizeEntry(entry)

	ctx, cancel := logbookOperation.queryContext()
	defer cancel()
	if err := logbookOperation.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (logbookOperation *DatabaseLogbookOperation) UpdateEntry(id string, patch *LogbookEntryPatch) (*LogbookEntry, error) {
	entry, err := logbookOperation.GetEntryById(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(entry)
	NormalizeEntry(entry)
	entry.UpdatedAt = time.Now().UTC()

	ctx, cancel := logbookOperation.queryContext()
	defer cancel()
	if err := logbookOperation.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (logbookOperation *DatabaseLogbookOperation) DeleteEntry(id string) (bool, error) {
	ctx, cancel := logbookOperation.queryContext()
	defer cancel()
	result := logbookOperation.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&LogbookEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
