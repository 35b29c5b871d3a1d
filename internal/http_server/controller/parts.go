// Package controller
package controller

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type PartsControllerInterface interface {
	SearchParts(ctx echo.Context) error
	GetPartQuotes(ctx echo.Context) error
}

type PartsController struct {
	logger  log.LoggerInterface
	service PartsServiceInterface
}

func NewPartsHandler(logger log.LoggerInterface, service PartsServiceInterface) *PartsController {
	return &PartsController{
		logger:  logger,
		service: service,
	}
}

func (controller *PartsController) SearchParts(ctx echo.Context) error {
	data := &RequestPartSearch{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PartsController.SearchParts bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.SearchParts(data).Response(ctx)
}

func (controller *PartsController) GetPartQuotes(ctx echo.Context) error {
	data := &RequestPartQuotes{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PartsController.GetPartQuotes bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetPartQuotes(data).Response(ctx)
}
