// Package service
package service

import (
	"errors"

	c "github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
)

type UserService struct {
	config        *c.HttpServerConfig
	userOperation operation.UserOperationInterface
}

func NewUserService(
	config *c.HttpServerConfig,
	userOperation operation.UserOperationInterface,
) *UserService {
	return &UserService{
		config:        config,
		userOperation: userOperation,
	}
}

var (
	SuccessRegister = ApiStatus{StatusName: "REGISTER_SUCCESS", Description: "注册成功", HttpCode: Ok}
)

func (userService *UserService) UserRegister(req *RequestUserRegister) *ApiResponse[ResponseUserRegister] {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return NewApiResponse[ResponseUserRegister](&ErrIllegalParam, Unsatisfied, nil)
	}
	if err := usernameValidator.CheckString(req.Username); err != nil {
		return NewApiResponse[ResponseUserRegister](err, Unsatisfied, nil)
	}
	if err := emailValidator.CheckString(req.Email); err != nil {
		return NewApiResponse[ResponseUserRegister](err, Unsatisfied, nil)
	}
	if err := passwordValidator.CheckString(req.Password); err != nil {
		return NewApiResponse[ResponseUserRegister](err, Unsatisfied, nil)
	}
	user, res := CallDBFuncAndCheckError[operation.User, ResponseUserRegister](func() (*operation.User, error) {
		return userService.userOperation.RegisterUser(&operation.User{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
		})
	})
	if res != nil {
		return res
	}
	token := NewClaims(userService.config.JWT, user, false)
	flushToken := NewClaims(userService.config.JWT, user, true)
	return NewApiResponse(&SuccessRegister, Unsatisfied, &ResponseUserRegister{
		User:       user,
		Token:      token.GenerateKey(),
		FlushToken: flushToken.GenerateKey(),
	})
}

var (
	ErrUsernameOrPassword = ApiStatus{StatusName: "WRONG_USERNAME_OR_PASSWORD", Description: "用户名或密码错误", HttpCode: BadRequest}
	SuccessLogin          = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "登陆成功", HttpCode: Ok}
)

func (userService *UserService) UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin] {
	if req.Username == "" || req.Password == "" {
		return NewApiResponse[ResponseUserLogin](&ErrIllegalParam, Unsatisfied, nil)
	}

	user, err := userService.userOperation.GetUserByUsername(req.Username)
	if errors.Is(err, operation.ErrUserNotFound) {
		// 避免暴露用户是否存在
		return NewApiResponse[ResponseUserLogin](&ErrUsernameOrPassword, Unsatisfied, nil)
	} else if err != nil {
		return NewApiResponse[ResponseUserLogin](&ErrDatabaseFail, Unsatisfied, nil)
	}

	if pass := userService.userOperation.VerifyUserPassword(user, req.Password); pass {
		token := NewClaims(userService.config.JWT, user, false)
		flushToken := NewClaims(userService.config.JWT, user, true)
		return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponseUserLogin{
			User:       user,
			Token:      token.GenerateKey(),
			FlushToken: flushToken.GenerateKey(),
		})
	} else {
		return NewApiResponse[ResponseUserLogin](&ErrUsernameOrPassword, Unsatisfied, nil)
	}
}

var (
	SuccessGetCurrentProfile = ApiStatus{StatusName: "GET_CURRENT_PROFILE_SUCCESS", Description: "获取当前用户信息成功", HttpCode: Ok}
)

func (userService *UserService) GetCurrentProfile(req *RequestUserCurrentProfile) *ApiResponse[ResponseUserCurrentProfile] {
	if user, err := userService.userOperation.GetUserByUid(req.Uid); errors.Is(err, operation.ErrUserNotFound) {
		return NewApiResponse[ResponseUserCurrentProfile](&ErrUserNotFound, Unsatisfied, nil)
	} else if err != nil {
		return NewApiResponse[ResponseUserCurrentProfile](&ErrDatabaseFail, Unsatisfied, nil)
	} else {
		return NewApiResponse(&SuccessGetCurrentProfile, Unsatisfied, (*ResponseUserCurrentProfile)(user))
	}
}
