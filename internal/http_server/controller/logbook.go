// Package controller
package controller

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type LogbookControllerInterface interface {
	GetEntries(ctx echo.Context) error
	GetEntry(ctx echo.Context) error
	AddEntry(ctx echo.Context) error
	UpdateEntry(ctx echo.Context) error
	DeleteEntry(ctx echo.Context) error
	GetFlightStats(ctx echo.Context) error
}

type LogbookController struct {
	logger  log.LoggerInterface
	service LogbookServiceInterface
}

func NewLogbookHandler(logger log.LoggerInterface, service LogbookServiceInterface) *LogbookController {
	return &LogbookController{
		logger:  logger,
		service: service,
	}
}

func (controller *LogbookController) GetEntries(ctx echo.Context) error {
	data := &RequestLogbookEntries{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("LogbookController.GetEntries bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetEntries(data).Response(ctx)
}

func (controller *LogbookController) GetEntry(ctx echo.Context) error {
	data := &RequestLogbookEntry{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("LogbookController.GetEntry bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetEntry(data).Response(ctx)
}

func (controller *LogbookController) AddEntry(ctx echo.Context) error {
	data := &RequestLogbookAdd{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("LogbookController.AddEntry bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.AddEntry(data).Response(ctx)
}

func (controller *LogbookController) UpdateEntry(ctx echo.Context) error {
	data := &RequestLogbookUpdate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("LogbookController.UpdateEntry bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.UpdateEntry(data).Response(ctx)
}

func (controller *LogbookController) DeleteEntry(ctx echo.Context) error {
	data := &RequestLogbookDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("LogbookController.DeleteEntry bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.DeleteEntry(data).Response(ctx)
}

func (controller *LogbookController) GetFlightStats(ctx echo.Context) error {
	data := &RequestFlightStats{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("LogbookController.GetFlightStats bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetFlightStats(data).Response(ctx)
}
