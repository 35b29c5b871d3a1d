// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrAircraftNotFound 指定的航空器不存在
	ErrAircraftNotFound = errors.New("aircraft does not exist")
	// ErrMaintenanceNotFound 指定的维修项目不存在
	ErrMaintenanceNotFound = errors.New("maintenance item does not exist")
	// ErrOrderNotFound 指定的零件订单不存在
	ErrOrderNotFound = errors.New("part order does not exist")
	// ErrOrderTransition 零件订单状态只允许向前流转
	ErrOrderTransition = errors.New("part order status can not move backwards")
)

type Aircraft struct {
	ID             string    `gorm:"primarykey;size:32" json:"id"`
	Registration   string    `gorm:"size:16;index;not null" json:"registration"`
	MakeModel      string    `gorm:"size:64;not null" json:"makeModel"`
	Year           int       `gorm:"default:0;not null" json:"year"`
	SerialNumber   string    `gorm:"size:32" json:"serialNumber"`
	CurrentHours   float64   `gorm:"default:0;not null" json:"currentHours"`
	LastInspection string    `gorm:"size:10" json:"lastInspection"`
	NextInspection string    `gorm:"size:10" json:"nextInspection"`
	MarketValue    float64   `gorm:"default:0;not null" json:"marketValue"`
	Owner          string    `gorm:"size:64" json:"owner"`
	OwnerEmail     string    `gorm:"size:128" json:"ownerEmail"`
	LedgerAddress  string    `gorm:"size:64" json:"ledgerAddress"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type MaintenancePriority string

const (
	PriorityLow      MaintenancePriority = "low"
	PriorityMedium   MaintenancePriority = "medium"
	PriorityHigh     MaintenancePriority = "high"
	PriorityCritical MaintenancePriority = "critical"
)

func (priority MaintenancePriority) Valid() bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type MaintenanceStatus string

const (
	MaintenanceUpcoming  MaintenanceStatus = "upcoming"
	MaintenanceDue       MaintenanceStatus = "due"
	MaintenanceOverdue   MaintenanceStatus = "overdue"
	MaintenanceCompleted MaintenanceStatus = "completed"
)

func (status MaintenanceStatus) Valid() bool {
	switch status {
	case MaintenanceUpcoming, MaintenanceDue, MaintenanceOverdue, MaintenanceCompleted:
		return true
	}
	return false
}

type MaintenanceItem struct {
	ID                string              `gorm:"primarykey;size:32" json:"id"`
	AircraftId        string              `gorm:"size:32;index;not null" json:"aircraftId"`
	ItemName          string              `gorm:"size:64;not null" json:"itemName"`
	PartNumber        string              `gorm:"size:32" json:"partNumber"`
	Description       string              `gorm:"type:text" json:"description"`
	DueHours          float64             `gorm:"default:0;not null" json:"dueHours"`
	CurrentHours      float64             `gorm:"default:0;not null" json:"currentHours"`
	Status            MaintenanceStatus   `gorm:"size:16;not null" json:"status"`
	Priority          MaintenancePriority `gorm:"size:16;not null" json:"priority"`
	EstimatedCost     float64             `gorm:"default:0;not null" json:"estimatedCost"`
	Supplier          string              `gorm:"size:64" json:"supplier"`
	LastCompleted     string              `gorm:"size:10" json:"lastCompleted,omitempty"`
	NextDue           string              `gorm:"size:10" json:"nextDue"`
	RecurringInterval float64             `gorm:"default:0" json:"recurringInterval,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// PercentComplete 当前时数相对到期时数的完成度, 0~100
func (item *MaintenanceItem) PercentComplete() float64 {
	if item.DueHours <= 0 {
		return 0
	}
	percent := item.CurrentHours / item.DueHours * 100
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderOrdered   OrderStatus = "ordered"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderInstalled OrderStatus = "installed"
)

// orderStatusRank 订单状态流转表, 状态只能沿着排序向前推进
var orderStatusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderOrdered:   1,
	OrderShipped:   2,
	OrderDelivered: 3,
	OrderInstalled: 4,
}

func (status OrderStatus) Valid() bool {
	_, ok := orderStatusRank[status]
	return ok
}

// CanTransitionTo 检查状态流转是否合法, 只允许保持原状态或向前推进
func (status OrderStatus) CanTransitionTo(next OrderStatus) bool {
	current, ok := orderStatusRank[status]
	if !ok {
		return false
	}
	target, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return target >= current
}

type PartOrder struct {
	ID                string      `gorm:"primarykey;size:32" json:"id"`
	PartNumber        string      `gorm:"size:32;not null" json:"partNumber"`
	PartName          string      `gorm:"size:64;not null" json:"partName"`
	Quantity          int         `gorm:"default:1;not null" json:"quantity"`
	UnitPrice         float64     `gorm:"default:0;not null" json:"unitPrice"`
	TotalPrice        float64     `gorm:"default:0;not null" json:"totalPrice"`
	Supplier          string      `gorm:"size:64" json:"supplier"`
	Status            OrderStatus `gorm:"size:16;not null" json:"status"`
	OrderDate         string      `gorm:"size:10" json:"orderDate"`
	ExpectedDelivery  string      `gorm:"size:10" json:"expectedDelivery,omitempty"`
	TrackingNumber    string      `gorm:"size:32" json:"trackingNumber,omitempty"`
	AircraftId        string      `gorm:"size:32;index;not null" json:"aircraftId"`
	MaintenanceItemId string      `gorm:"size:32;index" json:"maintenanceItemId,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

type Supplier struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Rating              float64  `json:"rating"`
	Location            string   `json:"location"`
	Specialties         []string `json:"specialties"`
	Certifications      []string `json:"certifications"`
	AverageDeliveryTime int      `json:"averageDeliveryTime"`
	ContactEmail        string   `json:"contactEmail"`
	ContactPhone        string   `json:"contactPhone"`
	Website             string   `json:"website,omitempty"`
}

type FlightSensorData struct {
	ID             string    `json:"id"`
	FlightId       string    `json:"flightId"`
	Timestamp      time.Time `json:"timestamp"`
	Altitude       float64   `json:"altitude"`
	Airspeed       float64   `json:"airspeed"`
	EngineRPM      float64   `json:"engineRPM"`
	FuelFlow       float64   `json:"fuelFlow"`
	OilPressure    float64   `json:"oilPressure"`
	OilTemperature float64   `json:"oilTemperature"`
	EngineHours    float64   `json:"engineHours"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
}

// MaintenancePatch 维修项目的增量更新, nil字段表示保持原值
type MaintenancePatch struct {
	ItemName          *string              `json:"itemName"`
	PartNumber        *string              `json:"partNumber"`
	Description       *string              `json:"description"`
	DueHours          *float64             `json:"dueHours"`
	CurrentHours      *float64             `json:"currentHours"`
	Status            *MaintenanceStatus   `json:"status"`
	Priority          *MaintenancePriority `json:"priority"`
	EstimatedCost     *float64             `json:"estimatedCost"`
	Supplier          *string              `json:"supplier"`
	LastCompleted     *string              `json:"lastCompleted"`
	NextDue           *string              `json:"nextDue"`
	RecurringInterval *float64             `json:"recurringInterval"`
}

func (patch *MaintenancePatch) Apply(item *MaintenanceItem) {
	applyString(&item.ItemName, patch.ItemName)
	applyString(&item.PartNumber, patch.PartNumber)
	applyString(&item.Description, patch.Description)
	applyFloat(&item.DueHours, patch.DueHours)
	applyFloat(&item.CurrentHours, patch.CurrentHours)
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.Priority != nil {
		item.Priority = *patch.Priority
	}
	applyFloat(&item.EstimatedCost, patch.EstimatedCost)
	applyString(&item.Supplier, patch.Supplier)
	applyString(&item.LastCompleted, patch.LastCompleted)
	applyString(&item.NextDue, patch.NextDue)
	applyFloat(&item.RecurringInterval, patch.RecurringInterval)
}

// AircraftOperationInterface 机队航空器存储操作接口定义
type AircraftOperationInterface interface {
	// GetAircraft 获取全部航空器
	GetAircraft() (aircraft []*Aircraft, err error)
	// GetAircraftById 根据ID获取航空器, 不存在时返回ErrAircraftNotFound
	GetAircraftById(id string) (aircraft *Aircraft, err error)
	// AddAircraft 新增航空器, 由存储层分配ID和时间戳
	AddAircraft(aircraft *Aircraft) (saved *Aircraft, err error)
	// UpdateAircraft 整体替换航空器属性, 不存在时返回ErrAircraftNotFound
	UpdateAircraft(aircraft *Aircraft) (updated *Aircraft, err error)
	// DeleteAircraft 删除航空器, found表示记录是否存在
	DeleteAircraft(id string) (found bool, err error)
}

// MaintenanceOperationInterface 维修项目存储操作接口定义
type MaintenanceOperationInterface interface {
	// GetMaintenanceItems 获取维修项目, aircraftId为空时返回全部
	GetMaintenanceItems(aircraftId string) (items []*MaintenanceItem, err error)
	// GetMaintenanceItemById 根据ID获取维修项目, 不存在时返回ErrMaintenanceNotFound
	GetMaintenanceItemById(id string) (item *MaintenanceItem, err error)
	// AddMaintenanceItem 新增维修项目, 由存储层分配ID和时间戳
	AddMaintenanceItem(item *MaintenanceItem) (saved *MaintenanceItem, err error)
	// UpdateMaintenanceItem 增量更新维修项目, 不存在时返回ErrMaintenanceNotFound
	UpdateMaintenanceItem(id string, patch *MaintenancePatch) (updated *MaintenanceItem, err error)
	// DeleteMaintenanceItem 删除维修项目, found表示记录是否存在
	DeleteMaintenanceItem(id string) (found bool, err error)
}

// PartOrderOperationInterface 零件订单存储操作接口定义
type PartOrderOperationInterface interface {
	// GetPartOrders 获取零件订单, aircraftId为空时返回全部
	GetPartOrders(aircraftId string) (orders []*PartOrder, err error)
	// GetPartOrderById 根据ID获取零件订单, 不存在时返回ErrOrderNotFound
	GetPartOrderById(id string) (order *PartOrder, err error)
	// AddPartOrder 新增零件订单, 由存储层分配ID和时间戳
	AddPartOrder(order *PartOrder) (saved *PartOrder, err error)
	// UpdatePartOrderStatus 推进订单状态, 回退时返回ErrOrderTransition
	UpdatePartOrderStatus(id string, status OrderStatus) (updated *PartOrder, err error)
}

// SupplierOperationInterface 供应商目录只读接口定义
type SupplierOperationInterface interface {
	// GetSuppliers 获取全部供应商
	GetSuppliers() (suppliers []*Supplier, err error)
}

// SensorDataOperationInterface 飞行传感器数据只读接口定义
type SensorDataOperationInterface interface {
	// GetSensorData 获取传感器数据, flightId为空时返回全部
	GetSensorData(flightId string) (data []*FlightSensorData, err error)
}
