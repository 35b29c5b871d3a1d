// Package service
package service

import (
	c "github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/open-hangar/aeroledger/internal/utils"
)

type FleetService struct {
	logger               log.LoggerInterface
	config               *c.HttpServerConfig
	aircraftOperation    operation.AircraftOperationInterface
	maintenanceOperation operation.MaintenanceOperationInterface
	partOrderOperation   operation.PartOrderOperationInterface
	supplierOperation    operation.SupplierOperationInterface
	sensorDataOperation  operation.SensorDataOperationInterface
	emailService         EmailServiceInterface
	ledgerService        LedgerServiceInterface
}

func NewFleetService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	operations *operation.DatabaseOperations,
	emailService EmailServiceInterface,
	ledgerService LedgerServiceInterface,
) *FleetService {
	return &FleetService{
		logger:               logger,
		config:               config,
		aircraftOperation:    operations.AircraftOperation(),
		maintenanceOperation: operations.MaintenanceOperation(),
		partOrderOperation:   operations.PartOrderOperation(),
		supplierOperation:    operations.SupplierOperation(),
		sensorDataOperation:  operations.SensorDataOperation(),
		emailService:         emailService,
		ledgerService:        ledgerService,
	}
}

var (
	SuccessGetAircraft  = ApiStatus{StatusName: "GET_AIRCRAFT_SUCCESS", Description: "获取航空器列表成功", HttpCode: Ok}
	SuccessGetOne       = ApiStatus{StatusName: "GET_AIRCRAFT_PROFILE_SUCCESS", Description: "获取航空器详情成功", HttpCode: Ok}
	SuccessAddAircraft  = ApiStatus{StatusName: "ADD_AIRCRAFT_SUCCESS", Description: "新增航空器成功", HttpCode: Ok}
	SuccessEditAircraft = ApiStatus{StatusName: "EDIT_AIRCRAFT_SUCCESS", Description: "更新航空器成功", HttpCode: Ok}
	SuccessDelAircraft  = ApiStatus{StatusName: "DELETE_AIRCRAFT_SUCCESS", Description: "删除航空器成功", HttpCode: Ok}
)

func (fleetService *FleetService) GetAircraft(_ *RequestAircraftList) *ApiResponse[ResponseAircraftList] {
	aircraft, err := fleetService.aircraftOperation.GetAircraft()
	if err != nil {
		return NewApiResponse[ResponseAircraftList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAircraft, Unsatisfied, &ResponseAircraftList{
		Items: aircraft,
		Total: len(aircraft),
	})
}

func (fleetService *FleetService) GetAircraftById(req *RequestAircraftProfile) *ApiResponse[ResponseAircraftProfile] {
	if req.ID == "" {
		return NewApiResponse[ResponseAircraftProfile](&ErrLackParam, Unsatisfied, nil)
	}
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseAircraftProfile](func() (*operation.Aircraft, error) {
		return fleetService.aircraftOperation.GetAircraftById(req.ID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetOne, Unsatisfied, (*ResponseAircraftProfile)(aircraft))
}

func (fleetService *FleetService) AddAircraft(req *RequestAircraftAdd) *ApiResponse[ResponseAircraftAdd] {
	if req.Registration == "" || req.MakeModel == "" {
		return NewApiResponse[ResponseAircraftAdd](&ErrLackParam, Unsatisfied, nil)
	}
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseAircraftAdd](func() (*operation.Aircraft, error) {
		return fleetService.aircraftOperation.AddAircraft(&req.Aircraft)
	})
	if res != nil {
		return res
	}

	// 登记入账写入所有权历史, 失败不影响航空器本身
	ledgerReq := &RequestLedgerOwnership{AircraftId: aircraft.ID}
	ledgerReq.SetAircraft(aircraft)
	if ledgerRes := fleetService.ledgerService.RecordOwnership(ledgerReq); ledgerRes.Data == nil {
		fleetService.logger.WarnF("Ownership ledger record failed for aircraft %s", aircraft.ID)
	}

	return NewApiResponse(&SuccessAddAircraft, Unsatisfied, (*ResponseAircraftAdd)(aircraft))
}

func (fleetService *FleetService) UpdateAircraft(req *RequestAircraftUpdate) *ApiResponse[ResponseAircraftUpdate] {
	if req.ID == "" {
		return NewApiResponse[ResponseAircraftUpdate](&ErrLackParam, Unsatisfied, nil)
	}
	req.Aircraft.ID = req.ID
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseAircraftUpdate](func() (*operation.Aircraft, error) {
		return fleetService.aircraftOperation.UpdateAircraft(&req.Aircraft)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessEditAircraft, Unsatisfied, (*ResponseAircraftUpdate)(aircraft))
}

func (fleetService *FleetService) DeleteAircraft(req *RequestAircraftDelete) *ApiResponse[ResponseAircraftDelete] {
	if req.ID == "" {
		return NewApiResponse[ResponseAircraftDelete](&ErrLackParam, Unsatisfied, nil)
	}
	found, err := fleetService.aircraftOperation.DeleteAircraft(req.ID)
	if err != nil {
		return NewApiResponse[ResponseAircraftDelete](&ErrDatabaseFail, Unsatisfied, nil)
	}
	if !found {
		return NewApiResponse[ResponseAircraftDelete](&ErrAircraftNotFound, Unsatisfied, nil)
	}
	data := ResponseAircraftDelete(true)
	return NewApiResponse(&SuccessDelAircraft, Unsatisfied, &data)
}

var (
	ErrPriorityInvalid     = ApiStatus{StatusName: "PRIORITY_INVALID", Description: "维修优先级不合法", HttpCode: BadRequest}
	ErrStatusInvalid       = ApiStatus{StatusName: "STATUS_INVALID", Description: "维修状态不合法", HttpCode: BadRequest}
	SuccessGetMaintenance  = ApiStatus{StatusName: "GET_MAINTENANCE_SUCCESS", Description: "获取维修项目成功", HttpCode: Ok}
	SuccessAddMaintenance  = ApiStatus{StatusName: "ADD_MAINTENANCE_SUCCESS", Description: "新增维修项目成功", HttpCode: Ok}
	SuccessEditMaintenance = ApiStatus{StatusName: "EDIT_MAINTENANCE_SUCCESS", Description: "更新维修项目成功", HttpCode: Ok}
	SuccessDelMaintenance  = ApiStatus{StatusName: "DELETE_MAINTENANCE_SUCCESS", Description: "删除维修项目成功", HttpCode: Ok}
)

func (fleetService *FleetService) GetMaintenanceItems(req *RequestMaintenanceList) *ApiResponse[ResponseMaintenanceList] {
	items, err := fleetService.maintenanceOperation.GetMaintenanceItems(req.AircraftId)
	if err != nil {
		return NewApiResponse[ResponseMaintenanceList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetMaintenance, Unsatisfied, &ResponseMaintenanceList{
		Items: items,
		Total: len(items),
	})
}

func (fleetService *FleetService) AddMaintenanceItem(req *RequestMaintenanceAdd) *ApiResponse[ResponseMaintenanceAdd] {
	if req.AircraftId == "" || req.ItemName == "" {
		return NewApiResponse[ResponseMaintenanceAdd](&ErrLackParam, Unsatisfied, nil)
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return NewApiResponse[ResponseMaintenanceAdd](&ErrPriorityInvalid, Unsatisfied, nil)
	}
	if req.Status != "" && !req.Status.Valid() {
		return NewApiResponse[ResponseMaintenanceAdd](&ErrStatusInvalid, Unsatisfied, nil)
	}
	item, res := CallDBFuncAndCheckError[operation.MaintenanceItem, ResponseMaintenanceAdd](func() (*operation.MaintenanceItem, error) {
		return fleetService.maintenanceOperation.AddMaintenanceItem(&req.MaintenanceItem)
	})
	if res != nil {
		return res
	}

	ledgerReq := &RequestLedgerMaintenance{ItemId: item.ID}
	ledgerReq.SetItem(item)
	if ledgerRes := fleetService.ledgerService.RecordMaintenance(ledgerReq); ledgerRes.Data == nil {
		fleetService.logger.WarnF("Ledger record failed for maintenance item %s", item.ID)
	}

	return NewApiResponse(&SuccessAddMaintenance, Unsatisfied, (*ResponseMaintenanceAdd)(item))
}

func (fleetService *FleetService) UpdateMaintenanceItem(req *RequestMaintenanceUpdate) *ApiResponse[ResponseMaintenanceUpdate] {
	if req.ID == "" {
		return NewApiResponse[ResponseMaintenanceUpdate](&ErrLackParam, Unsatisfied, nil)
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return NewApiResponse[ResponseMaintenanceUpdate](&ErrPriorityInvalid, Unsatisfied, nil)
	}
	if req.Status != nil && !req.Status.Valid() {
		return NewApiResponse[ResponseMaintenanceUpdate](&ErrStatusInvalid, Unsatisfied, nil)
	}
	item, res := CallDBFuncAndCheckError[operation.MaintenanceItem, ResponseMaintenanceUpdate](func() (*operation.MaintenanceItem, error) {
		return fleetService.maintenanceOperation.UpdateMaintenanceItem(req.ID, &req.MaintenancePatch)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessEditMaintenance, Unsatisfied, (*ResponseMaintenanceUpdate)(item))
}

func (fleetService *FleetService) DeleteMaintenanceItem(req *RequestMaintenanceDelete) *ApiResponse[ResponseMaintenanceDelete] {
	if req.ID == "" {
		return NewApiResponse[ResponseMaintenanceDelete](&ErrLackParam, Unsatisfied, nil)
	}
	found, err := fleetService.maintenanceOperation.DeleteMaintenanceItem(req.ID)
	if err != nil {
		return NewApiResponse[ResponseMaintenanceDelete](&ErrDatabaseFail, Unsatisfied, nil)
	}
	if !found {
		return NewApiResponse[ResponseMaintenanceDelete](&ErrMaintenanceNotFound, Unsatisfied, nil)
	}
	data := ResponseMaintenanceDelete(true)
	return NewApiResponse(&SuccessDelMaintenance, Unsatisfied, &data)
}

var (
	ErrEmailDisabled = ApiStatus{StatusName: "EMAIL_DISABLED", Description: "邮件服务未启用", HttpCode: BadRequest}
	SuccessRemind    = ApiStatus{StatusName: "SEND_REMINDERS_SUCCESS", Description: "维修提醒发送完成", HttpCode: Ok}
)

func remindable(status operation.MaintenanceStatus) bool {
	return status == operation.MaintenanceDue || status == operation.MaintenanceOverdue
}

// SendMaintenanceReminders 向机主发送到期维修提醒, 没有邮箱的航空器跳过
func (fleetService *FleetService) SendMaintenanceReminders(req *RequestMaintenanceRemind) *ApiResponse[ResponseMaintenanceRemind] {
	if !fleetService.config.Email.Enabled {
		return NewApiResponse[ResponseMaintenanceRemind](&ErrEmailDisabled, Unsatisfied, nil)
	}
	aircraft, err := fleetService.aircraftOperation.GetAircraft()
	if err != nil {
		return NewApiResponse[ResponseMaintenanceRemind](&ErrDatabaseFail, Unsatisfied, nil)
	}
	sent := 0
	for _, target := range aircraft {
		if req.AircraftId != "" && target.ID != req.AircraftId {
			continue
		}
		if target.OwnerEmail == "" {
			continue
		}
		items, err := fleetService.maintenanceOperation.GetMaintenanceItems(target.ID)
		if err != nil {
			return NewApiResponse[ResponseMaintenanceRemind](&ErrDatabaseFail, Unsatisfied, nil)
		}
		dueItems := utils.Filter(items, func(item *operation.MaintenanceItem) bool {
			return remindable(item.Status)
		})
		if len(dueItems) == 0 {
			continue
		}
		if err := fleetService.emailService.SendMaintenanceReminderEmail(target, dueItems); err != nil {
			fleetService.logger.ErrorF("SendMaintenanceReminderEmail failed for %s: %v", target.Registration, err)
			continue
		}
		sent++
	}
	return NewApiResponse(&SuccessRemind, Unsatisfied, &ResponseMaintenanceRemind{Sent: sent})
}

var (
	ErrQuantityInvalid = ApiStatus{StatusName: "QUANTITY_INVALID", Description: "零件数量必须大于0", HttpCode: BadRequest}
	ErrOrderStatus     = ApiStatus{StatusName: "ORDER_STATUS_INVALID", Description: "订单状态不合法", HttpCode: BadRequest}
	SuccessGetOrders   = ApiStatus{StatusName: "GET_ORDERS_SUCCESS", Description: "获取零件订单成功", HttpCode: Ok}
	SuccessAddOrder    = ApiStatus{StatusName: "ADD_ORDER_SUCCESS", Description: "新增零件订单成功", HttpCode: Ok}
	SuccessEditOrder   = ApiStatus{StatusName: "EDIT_ORDER_SUCCESS", Description: "更新订单状态成功", HttpCode: Ok}
)

func (fleetService *FleetService) GetPartOrders(req *RequestPartOrderList) *ApiResponse[ResponsePartOrderList] {
	orders, err := fleetService.partOrderOperation.GetPartOrders(req.AircraftId)
	if err != nil {
		return NewApiResponse[ResponsePartOrderList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetOrders, Unsatisfied, &ResponsePartOrderList{
		Items: orders,
		Total: len(orders),
	})
}

func (fleetService *FleetService) AddPartOrder(req *RequestPartOrderAdd) *ApiResponse[ResponsePartOrderAdd] {
	if req.PartNumber == "" || req.AircraftId == "" {
		return NewApiResponse[ResponsePartOrderAdd](&ErrLackParam, Unsatisfied, nil)
	}
	if req.Quantity <= 0 {
		return NewApiResponse[ResponsePartOrderAdd](&ErrQuantityInvalid, Unsatisfied, nil)
	}
	if req.Status != "" && !req.Status.Valid() {
		return NewApiResponse[ResponsePartOrderAdd](&ErrOrderStatus, Unsatisfied, nil)
	}
	order, res := CallDBFuncAndCheckError[operation.PartOrder, ResponsePartOrderAdd](func() (*operation.PartOrder, error) {
		return fleetService.partOrderOperation.AddPartOrder(&req.PartOrder)
	})
	if res != nil {
		return res
	}

	ledgerReq := &RequestLedgerPartOrder{OrderId: order.ID}
	ledgerReq.SetOrder(order)
	if ledgerRes := fleetService.ledgerService.RecordPartOrder(ledgerReq); ledgerRes.Data == nil {
		fleetService.logger.WarnF("Ledger record failed for part order %s", order.ID)
	}

	return NewApiResponse(&SuccessAddOrder, Unsatisfied, (*ResponsePartOrderAdd)(order))
}

func (fleetService *FleetService) UpdatePartOrderStatus(req *RequestPartOrderStatus) *ApiResponse[ResponsePartOrderStatus] {
	if req.ID == "" {
		return NewApiResponse[ResponsePartOrderStatus](&ErrLackParam, Unsatisfied, nil)
	}
	if !req.Status.Valid() {
		return NewApiResponse[ResponsePartOrderStatus](&ErrOrderStatus, Unsatisfied, nil)
	}
	order, res := CallDBFuncAndCheckError[operation.PartOrder, ResponsePartOrderStatus](func() (*operation.PartOrder, error) {
		return fleetService.partOrderOperation.UpdatePartOrderStatus(req.ID, req.Status)
	})
	if res != nil {
		return res
	}

	if order.Status == operation.OrderDelivered && fleetService.config.Email.Enabled {
		if aircraft, err := fleetService.aircraftOperation.GetAircraftById(order.AircraftId); err == nil && aircraft.OwnerEmail != "" {
			if err := fleetService.emailService.SendOrderDeliveredEmail(aircraft, order); err != nil {
				fleetService.logger.ErrorF("SendOrderDeliveredEmail failed for order %s: %v", order.ID, err)
			}
		}
	}

	return NewApiResponse(&SuccessEditOrder, Unsatisfied, (*ResponsePartOrderStatus)(order))
}

var (
	SuccessGetSuppliers  = ApiStatus{StatusName: "GET_SUPPLIERS_SUCCESS", Description: "获取供应商目录成功", HttpCode: Ok}
	SuccessGetSensorData = ApiStatus{StatusName: "GET_SENSOR_DATA_SUCCESS", Description: "获取传感器数据成功", HttpCode: Ok}
)

func (fleetService *FleetService) GetSuppliers(_ *RequestSupplierList) *ApiResponse[ResponseSupplierList] {
	suppliers, err := fleetService.supplierOperation.GetSuppliers()
	if err != nil {
		return NewApiResponse[ResponseSupplierList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetSuppliers, Unsatisfied, &ResponseSupplierList{
		Items: suppliers,
		Total: len(suppliers),
	})
}

func (fleetService *FleetService) GetSensorData(req *RequestSensorData) *ApiResponse[ResponseSensorData] {
	data, err := fleetService.sensorDataOperation.GetSensorData(req.FlightId)
	if err != nil {
		return NewApiResponse[ResponseSensorData](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetSensorData, Unsatisfied, &ResponseSensorData{
		Items: data,
		Total: len(data),
	})
}
