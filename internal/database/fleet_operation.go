package database

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"gorm.io/gorm"
)

// DatabaseAircraftOperation 数据库后端的机队存储
type DatabaseAircraftOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewDatabaseAircraftOperation(db *gorm.DB, queryTimeout time.Duration) *DatabaseAircraftOperation {
	return &DatabaseAircraftOperation{db: db, queryTimeout: queryTimeout}
}

func (aircraftOperation *DatabaseAircraftOperation) GetAircraft() (aircraft []*Aircraft, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&aircraft).Error
	return
}

func (aircraftOperation *DatabaseAircraftOperation) GetAircraftById(id string) (aircraft *Aircraft, err error) {
	aircraft = &Aircraft{}
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(aircraft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAircraftNotFound
	}
	return
}

func (aircraftOperation *DatabaseAircraftOperation) AddAircraft(aircraft *Aircraft) (*Aircraft, error) {
	aircraft.ID = newRecordId()
	aircraft.Registration = strings.ToUpper(strings.TrimSpace(aircraft.Registration))
	now := time.Now().UTC()
	aircraft.CreatedAt = now
	aircraft.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	if err := aircraftOperation.db.WithContext(ctx).Create(aircraft).Error; err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (aircraftOperation *DatabaseAircraftOperation) UpdateAircraft(aircraft *Aircraft) (*Aircraft, error) {
	existing, err := aircraftOperation.GetAircraftById(aircraft.ID)
	if err != nil {
		return nil, err
	}

	aircraft.CreatedAt = existing.CreatedAt
	aircraft.UpdatedAt = time.Now().UTC()
	aircraft.Registration = strings.ToUpper(strings.TrimSpace(aircraft.Registration))

	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	if err := aircraftOperation.db.WithContext(ctx).Save(aircraft).Error; err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (aircraftOperation *DatabaseAircraftOperation) DeleteAircraft(id string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	result := aircraftOperation.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Aircraft{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DatabaseMaintenanceOperation 数据库后端的维修项目存储
type DatabaseMaintenanceOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewDatabaseMaintenanceOperation(db *gorm.DB, queryTimeout time.Duration) *DatabaseMaintenanceOperation {
	return &DatabaseMaintenanceOperation{db: db, queryTimeout: queryTimeout}
}

func (maintenanceOperation *DatabaseMaintenanceOperation) GetMaintenanceItems(aircraftId string) (items []*MaintenanceItem, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	query := maintenanceOperation.db.WithContext(ctx).Order("next_due ASC")
	if aircraftId != "" {
		query = query.Where("aircraft_id = ?", aircraftId)
	}
	err = query.Find(&items).Error
	return
}

func (maintenanceOperation *DatabaseMaintenanceOperation) GetMaintenanceItemById(id string) (item *MaintenanceItem, err error) {
	item = &MaintenanceItem{}
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	err = maintenanceOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMaintenanceNotFound
	}
	return
}

func (maintenanceOperation *DatabaseMaintenanceOperation) AddMaintenanceItem(item *MaintenanceItem) (*MaintenanceItem, error) {
	item.ID = newRecordId()
	if item.Status == "" {
		item.Status = MaintenanceUpcoming
	}
	if item.Priority == "" {
		item.Priority = PriorityMedium
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	if err := maintenanceOperation.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (maintenanceOperation *DatabaseMaintenanceOperation) UpdateMaintenanceItem(id string, patch *MaintenancePatch) (*MaintenanceItem, error) {
	item, err := maintenanceOperation.GetMaintenanceItemById(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(item)
	item.UpdatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	if err := maintenanceOperation.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (maintenanceOperation *DatabaseMaintenanceOperation) DeleteMaintenanceItem(id string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	result := maintenanceOperation.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&MaintenanceItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DatabasePartOrderOperation 数据库后端的零件订单存储
type DatabasePartOrderOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewDatabasePartOrderOperation(db *gorm.DB, queryTimeout time.Duration) *DatabasePartOrderOperation {
	return &DatabasePartOrderOperation{db: db, queryTimeout: queryTimeout}
}

func (partOrderOperation *DatabasePartOrderOperation) GetPartOrders(aircraftId string) (orders []*PartOrder, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), partOrderOperation.queryTimeout)
	defer cancel()
	query := partOrderOperation.db.WithContext(ctx).Order("order_date DESC")
	if aircraftId != "" {
		query = query.Where("aircraft_id = ?", aircraftId)
	}
	err = query.Find(&orders).Error
	return
}

func (partOrderOperation *DatabasePartOrderOperation) GetPartOrderById(id string) (order *PartOrder, err error) {
	order = &PartOrder{}
	ctx, cancel := context.WithTimeout(context.Background(), partOrderOperation.queryTimeout)
	defer cancel()
	err = partOrderOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return
}

func (partOrderOperation *DatabasePartOrderOperation) AddPartOrder(order *PartOrder) (*PartOrder, error) {
	order.ID = newRecordId()
	if order.Status == "" {
		order.Status = OrderPending
	}
	if order.TotalPrice == 0 {
		order.TotalPrice = order.UnitPrice * float64(order.Quantity)
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), partOrderOperation.queryTimeout)
	defer cancel()
	if err := partOrderOperation.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (partOrderOperation *DatabasePartOrderOperation) UpdatePartOrderStatus(id string, status OrderStatus) (*PartOrder, error) {
	order, err := partOrderOperation.GetPartOrderById(id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, ErrOrderTransition
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), partOrderOperation.queryTimeout)
	defer cancel()
	if err := partOrderOperation.db.WithContext(ctx).Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
