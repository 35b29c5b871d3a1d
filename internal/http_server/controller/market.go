// Package controller
package controller

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type MarketControllerInterface interface {
	GetMarketAnalysis(ctx echo.Context) error
	GetMarketReport(ctx echo.Context) error
}

type MarketController struct {
	logger  log.LoggerInterface
	service MarketServiceInterface
}

func NewMarketHandler(logger log.LoggerInterface, service MarketServiceInterface) *MarketController {
	return &MarketController{
		logger:  logger,
		service: service,
	}
}

func (controller *MarketController) GetMarketAnalysis(ctx echo.Context) error {
	data := &RequestMarketAnalysis{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MarketController.GetMarketAnalysis bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetMarketAnalysis(data).Response(ctx)
}

func (controller *MarketController) GetMarketReport(ctx echo.Context) error {
	data := &RequestMarketReport{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MarketController.GetMarketReport bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetMarketReport(data).Response(ctx)
}
