// Package controller
package controller

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FleetControllerInterface interface {
	GetAircraft(ctx echo.Context) error
	GetAircraftById(ctx echo.Context) error
	AddAircraft(ctx echo.Context) error
	UpdateAircraft(ctx echo.Context) error
	DeleteAircraft(ctx echo.Context) error
	GetMaintenanceItems(ctx echo.Context) error
	AddMaintenanceItem(ctx echo.Context) error
	UpdateMaintenanceItem(ctx echo.Context) error
	DeleteMaintenanceItem(ctx echo.Context) error
	SendMaintenanceReminders(ctx echo.Context) error
	GetPartOrders(ctx echo.Context) error
	AddPartOrder(ctx echo.Context) error
	UpdatePartOrderStatus(ctx echo.Context) error
	GetSuppliers(ctx echo.Context) error
	GetSensorData(ctx echo.Context) error
}

type FleetController struct {
	logger  log.LoggerInterface
	service FleetServiceInterface
}

func NewFleetHandler(logger log.LoggerInterface, service FleetServiceInterface) *FleetController {
	return &FleetController{
		logger:  logger,
		service: service,
	}
}

func (controller *FleetController) GetAircraft(ctx echo.Context) error {
	return controller.service.GetAircraft(&RequestAircraftList{}).Response(ctx)
}

func (controller *FleetController) GetAircraftById(ctx echo.Context) error {
	data := &RequestAircraftProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.GetAircraftById bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAircraftById(data).Response(ctx)
}

func (controller *FleetController) AddAircraft(ctx echo.Context) error {
	data := &RequestAircraftAdd{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.AddAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.AddAircraft(data).Response(ctx)
}

func (controller *FleetController) UpdateAircraft(ctx echo.Context) error {
	data := &RequestAircraftUpdate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.UpdateAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.UpdateAircraft(data).Response(ctx)
}

func (controller *FleetController) DeleteAircraft(ctx echo.Context) error {
	data := &RequestAircraftDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.DeleteAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.DeleteAircraft(data).Response(ctx)
}

func (controller *FleetController) GetMaintenanceItems(ctx echo.Context) error {
	data := &RequestMaintenanceList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.GetMaintenanceItems bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetMaintenanceItems(data).Response(ctx)
}

func (controller *FleetController) AddMaintenanceItem(ctx echo.Context) error {
	data := &RequestMaintenanceAdd{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.AddMaintenanceItem bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.AddMaintenanceItem(data).Response(ctx)
}

func (controller *FleetController) UpdateMaintenanceItem(ctx echo.Context) error {
	data := &RequestMaintenanceUpdate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.UpdateMaintenanceItem bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.UpdateMaintenanceItem(data).Response(ctx)
}

func (controller *FleetController) DeleteMaintenanceItem(ctx echo.Context) error {
	data := &RequestMaintenanceDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.DeleteMaintenanceItem bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.DeleteMaintenanceItem(data).Response(ctx)
}

func (controller *FleetController) SendMaintenanceReminders(ctx echo.Context) error {
	data := &RequestMaintenanceRemind{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.SendMaintenanceReminders bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.SendMaintenanceReminders(data).Response(ctx)
}

func (controller *FleetController) GetPartOrders(ctx echo.Context) error {
	data := &RequestPartOrderList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.GetPartOrders bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetPartOrders(data).Response(ctx)
}

func (controller *FleetController) AddPartOrder(ctx echo.Context) error {
	data := &RequestPartOrderAdd{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.AddPartOrder bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.AddPartOrder(data).Response(ctx)
}

func (controller *FleetController) UpdatePartOrderStatus(ctx echo.Context) error {
	data := &RequestPartOrderStatus{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.UpdatePartOrderStatus bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.UpdatePartOrderStatus(data).Response(ctx)
}

func (controller *FleetController) GetSuppliers(ctx echo.Context) error {
	return controller.service.GetSuppliers(&RequestSupplierList{}).Response(ctx)
}

func (controller *FleetController) GetSensorData(ctx echo.Context) error {
	data := &RequestSensorData{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FleetController.GetSensorData bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetSensorData(data).Response(ctx)
}
