// Package controller
package controller

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type UserControllerInterface interface {
	UserRegister(ctx echo.Context) error
	UserLogin(ctx echo.Context) error
	GetCurrentUserProfile(ctx echo.Context) error
}

type UserController struct {
	logger  log.LoggerInterface
	service UserServiceInterface
}

func NewUserHandler(logger log.LoggerInterface, service UserServiceInterface) *UserController {
	return &UserController{
		logger:  logger,
		service: service,
	}
}

func (controller *UserController) UserRegister(ctx echo.Context) error {
	data := &RequestUserRegister{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.UserRegister bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.UserRegister(data).Response(ctx)
}

func (controller *UserController) UserLogin(ctx echo.Context) error {
	data := &RequestUserLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.UserLogin bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.UserLogin(data).Response(ctx)
}

func (controller *UserController) GetCurrentUserProfile(ctx echo.Context) error {
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data := &RequestUserCurrentProfile{Uid: claim.Uid}
	return controller.service.GetCurrentProfile(data).Response(ctx)
}
