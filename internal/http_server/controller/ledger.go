// Package controller
package controller

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type LedgerControllerInterface interface {
	GetTransactions(ctx echo.Context) error
	GetOnChainLogbook(ctx echo.Context) error
	GetContractInfo(ctx echo.Context) error
}

type LedgerController struct {
	logger  log.LoggerInterface
	service LedgerServiceInterface
}

func NewLedgerHandler(logger log.LoggerInterface, service LedgerServiceInterface) *LedgerController {
	return &LedgerController{
		logger:  logger,
		service: service,
	}
}

func (controller *LedgerController) GetTransactions(ctx echo.Context) error {
	return controller.service.GetTransactions(&RequestLedgerTransactions{}).Response(ctx)
}

func (controller *LedgerController) GetOnChainLogbook(ctx echo.Context) error {
	data := &RequestOnChainLogbook{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("LedgerController.GetOnChainLogbook bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetOnChainLogbook(data).Response(ctx)
}

func (controller *LedgerController) GetContractInfo(ctx echo.Context) error {
	return controller.service.GetContractInfo(&RequestLedgerContract{}).Response(ctx)
}
