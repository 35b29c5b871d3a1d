package database

import (
	"strings"
	"sync"
	"time"

	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"github.com/open-hangar/aeroledger/internal/utils"
)

// MemoryAircraftOperation 进程内机队存储
type MemoryAircraftOperation struct {
	logger   log.LoggerInterface
	mu       sync.Mutex
	aircraft []*Aircraft
}

func NewMemoryAircraftOperation(logger log.LoggerInterface, seed []*Aircraft) *MemoryAircraftOperation {
	operation := &MemoryAircraftOperation{
		logger:   logger,
		aircraft: make([]*Aircraft, 0, len(seed)),
	}
	for _, aircraft := range seed {
		operation.aircraft = append(operation.aircraft, cloneRecord(aircraft))
	}
	return operation
}

func (aircraftOperation *MemoryAircraftOperation) GetAircraft() ([]*Aircraft, error) {
	aircraftOperation.mu.Lock()
	defer aircraftOperation.mu.Unlock()
	result := make([]*Aircraft, len(aircraftOperation.aircraft))
	for index, aircraft := range aircraftOperation.aircraft {
		result[index] = cloneRecord(aircraft)
	}
	return result, nil
}

func (aircraftOperation *MemoryAircraftOperation) GetAircraftById(id string) (*Aircraft, error) {
	aircraftOperation.mu.Lock()
	defer aircraftOperation.mu.Unlock()
	aircraft := utils.Find(aircraftOperation.aircraft, func(aircraft *Aircraft) bool {
		return aircraft.ID == id
	})
	if aircraft == nil {
		return nil, ErrAircraftNotFound
	}
	return cloneRecord(aircraft), nil
}

func (aircraftOperation *MemoryAircraftOperation) AddAircraft(aircraft *Aircraft) (*Aircraft, error) {
	aircraftOperation.mu.Lock()
	defer aircraftOperation.mu.Unlock()

	aircraft.ID = newRecordId()
	aircraft.Registration = strings.ToUpper(strings.TrimSpace(aircraft.Registration))
	now := time.Now().UTC()
	aircraft.CreatedAt = now
	aircraft.UpdatedAt = now
	aircraftOperation.aircraft = append(aircraftOperation.aircraft, cloneRecord(aircraft))
	return aircraft, nil
}

func (aircraftOperation *MemoryAircraftOperation) UpdateAircraft(aircraft *Aircraft) (*Aircraft, error) {
	aircraftOperation.mu.Lock()
	defer aircraftOperation.mu.Unlock()

	index := utils.FindIndex(aircraftOperation.aircraft, func(existing *Aircraft) bool {
		return existing.ID == aircraft.ID
	})
	if index == -1 {
		return nil, ErrAircraftNotFound
	}

	existing := aircraftOperation.aircraft[index]
	aircraft.CreatedAt = existing.CreatedAt
	aircraft.UpdatedAt = time.Now().UTC()
	aircraft.Registration = strings.ToUpper(strings.TrimSpace(aircraft.Registration))
	aircraftOperation.aircraft[index] = cloneRecord(aircraft)
	return aircraft, nil
}

func (aircraftOperation *MemoryAircraftOperation) DeleteAircraft(id string) (bool, error) {
	aircraftOperation.mu.Lock()
	defer aircraftOperation.mu.Unlock()

	index := utils.FindIndex(aircraftOperation.aircraft, func(aircraft *Aircraft) bool {
		return aircraft.ID == id
	})
	if index == -1 {
		return false, nil
	}
	aircraftOperation.aircraft = append(aircraftOperation.aircraft[:index], aircraftOperation.aircraft[index+1:]...)
	return true, nil
}

// MemoryMaintenanceOperation 进程内维修项目存储
type MemoryMaintenanceOperation struct {
	logger log.LoggerInterface
	mu     sync.Mutex
	items  []*MaintenanceItem
}

func NewMemoryMaintenanceOperation(logger log.LoggerInterface, seed []*MaintenanceItem) *MemoryMaintenanceOperation {
	operation := &MemoryMaintenanceOperation{
		logger: logger,
		items:  make([]*MaintenanceItem, 0, len(seed)),
	}
	for _, item := range seed {
		operation.items = append(operation.items, cloneRecord(item))
	}
	return operation
}

func (maintenanceOperation *MemoryMaintenanceOperation) GetMaintenanceItems(aircraftId string) ([]*MaintenanceItem, error) {
	maintenanceOperation.mu.Lock()
	defer maintenanceOperation.mu.Unlock()
	items := maintenanceOperation.items
	if aircraftId != "" {
		items = utils.Filter(items, func(item *MaintenanceItem) bool {
			return item.AircraftId == aircraftId
		})
	}
	result := make([]*MaintenanceItem, len(items))
	for index, item := range items {
		result[index] = cloneRecord(item)
	}
	return result, nil
}

func (maintenanceOperation *MemoryMaintenanceOperation) GetMaintenanceItemById(id string) (*MaintenanceItem, error) {
	maintenanceOperation.mu.Lock()
	defer maintenanceOperation.mu.Unlock()
	item := utils.Find(maintenanceOperation.items, func(item *MaintenanceItem) bool {
		return item.ID == id
	})
	if item == nil {
		return nil, ErrMaintenanceNotFound
	}
	return cloneRecord(item), nil
}

func (maintenanceOperation *MemoryMaintenanceOperation) AddMaintenanceItem(item *MaintenanceItem) (*MaintenanceItem, error) {
	maintenanceOperation.mu.Lock()
	defer maintenanceOperation.mu.Unlock()

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
	maintenanceOperation.items = append(maintenanceOperation.items, cloneRecord(item))
	return item, nil
}

func (maintenanceOperation *MemoryMaintenanceOperation) UpdateMaintenanceItem(id string, patch *MaintenancePatch) (*MaintenanceItem, error) {
	maintenanceOperation.mu.Lock()
	defer maintenanceOperation.mu.Unlock()

	index := utils.FindIndex(maintenanceOperation.items, func(item *MaintenanceItem) bool {
		return item.ID == id
	})
	if index == -1 {
		return nil, ErrMaintenanceNotFound
	}

	updated := cloneRecord(maintenanceOperation.items[index])
	patch.Apply(updated)
	updated.UpdatedAt = time.Now().UTC()
	maintenanceOperation.items[index] = cloneRecord(updated)
	return updated, nil
}

func (maintenanceOperation *MemoryMaintenanceOperation) DeleteMaintenanceItem(id string) (bool, error) {
	maintenanceOperation.mu.Lock()
	defer maintenanceOperation.mu.Unlock()

	index := utils.FindIndex(maintenanceOperation.items, func(item *MaintenanceItem) bool {
		return item.ID == id
	})
	if index == -1 {
		return false, nil
	}
	maintenanceOperation.items = append(maintenanceOperation.items[:index], maintenanceOperation.items[index+1:]...)
	return true, nil
}

// MemoryPartOrderOperation 进程内零件订单存储
type MemoryPartOrderOperation struct {
	logger log.LoggerInterface
	mu     sync.Mutex
	orders []*PartOrder
}

func NewMemoryPartOrderOperation(logger log.LoggerInterface, seed []*PartOrder) *MemoryPartOrderOperation {
	operation := &MemoryPartOrderOperation{
		logger: logger,
		orders: make([]*PartOrder, 0, len(seed)),
	}
	for _, order := range seed {
		operation.orders = append(operation.orders, cloneRecord(order))
	}
	return operation
}

func (partOrderOperation *MemoryPartOrderOperation) GetPartOrders(aircraftId string) ([]*PartOrder, error) {
	partOrderOperation.mu.Lock()
	defer partOrderOperation.mu.Unlock()
	orders := partOrderOperation.orders
	if aircraftId != "" {
		orders = utils.Filter(orders, func(order *PartOrder) bool {
			return order.AircraftId == aircraftId
		})
	}
	result := make([]*PartOrder, len(orders))
	for index, order := range orders {
		result[index] = cloneRecord(order)
	}
	return result, nil
}

func (partOrderOperation *MemoryPartOrderOperation) GetPartOrderById(id string) (*PartOrder, error) {
	partOrderOperation.mu.Lock()
	defer partOrderOperation.mu.Unlock()
	order := utils.Find(partOrderOperation.orders, func(order *PartOrder) bool {
		return order.ID == id
	})
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return cloneRecord(order), nil
}

func (partOrderOperation *MemoryPartOrderOperation) AddPartOrder(order *PartOrder) (*PartOrder, error) {
	partOrderOperation.mu.Lock()
	defer partOrderOperation.mu.Unlock()

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
	partOrderOperation.orders = append(partOrderOperation.orders, cloneRecord(order))
	return order, nil
}

func (partOrderOperation *MemoryPartOrderOperation) UpdatePartOrderStatus(id string, status OrderStatus) (*PartOrder, error) {
	partOrderOperation.mu.Lock()
	defer partOrderOperation.mu.Unlock()

	index := utils.FindIndex(partOrderOperation.orders, func(order *PartOrder) bool {
		return order.ID == id
	})
	if index == -1 {
		return nil, ErrOrderNotFound
	}
	updated := cloneRecord(partOrderOperation.orders[index])
	if !updated.Status.CanTransitionTo(status) {
		return nil, ErrOrderTransition
	}
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()
	partOrderOperation.orders[index] = cloneRecord(updated)
	return updated, nil
}
