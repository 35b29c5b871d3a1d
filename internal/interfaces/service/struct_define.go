// Package service
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	c "github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
	BadGateway          HttpCode = 502
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

type Claims struct {
	Uid        uint   `json:"uid"`
	Username   string `json:"username"`
	FlushToken bool   `json:"flushToken"`
	config     *c.JWTConfig
	jwt.RegisteredClaims
}

func NewClaims(config *c.JWTConfig, user *operation.User, flushToken bool) *Claims {
	expiredDuration := config.ExpiresDuration
	if flushToken {
		expiredDuration += config.RefreshDuration
	}
	return &Claims{
		Uid:        user.ID,
		Username:   user.Username,
		FlushToken: flushToken,
		config:     config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "AeroLedgerServer",
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiredDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "参数不正确", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "缺少参数", BadRequest}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "无权这么做", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "服务器内部错误", ServerInternalError}
	ErrUserNotFound          = ApiStatus{"USER_NOT_FOUND", "指定用户不存在", NotFound}
	ErrEntryNotFound         = ApiStatus{"ENTRY_NOT_FOUND", "飞行记录不存在", NotFound}
	ErrAircraftNotFound      = ApiStatus{"AIRCRAFT_NOT_FOUND", "航空器不存在", NotFound}
	ErrMaintenanceNotFound   = ApiStatus{"MAINTENANCE_NOT_FOUND", "维修项目不存在", NotFound}
	ErrOrderNotFound         = ApiStatus{"ORDER_NOT_FOUND", "零件订单不存在", NotFound}
	ErrOrderTransition       = ApiStatus{"ORDER_STATUS_CONFLICT", "订单状态不允许回退", Conflict}
	ErrRegisterFail          = ApiStatus{"REGISTER_FAIL", "注册失败", ServerInternalError}
	ErrIdentifierTaken       = ApiStatus{"USER_EXISTS", "用户已存在", BadRequest}
	ErrUpstreamFail          = ApiStatus{"UPSTREAM_ERROR", "上游服务请求失败", BadGateway}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "缺少JWT令牌或者令牌格式错误", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "无效或过期的JWT令牌", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "未知的JWT解析错误", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError 调用存储操作函数并处理错误
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrIdentifierCheck):
		return nil, NewApiResponse[T](&ErrRegisterFail, Unsatisfied, nil)
	case errors.Is(err, operation.ErrIdentifierTaken):
		return nil, NewApiResponse[T](&ErrIdentifierTaken, Unsatisfied, nil)
	case errors.Is(err, operation.ErrUserNotFound):
		return nil, NewApiResponse[T](&ErrUserNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrEntryNotFound):
		return nil, NewApiResponse[T](&ErrEntryNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrAircraftNotFound):
		return nil, NewApiResponse[T](&ErrAircraftNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrMaintenanceNotFound):
		return nil, NewApiResponse[T](&ErrMaintenanceNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrOrderNotFound):
		return nil, NewApiResponse[T](&ErrOrderNotFound, Unsatisfied, nil)
	case errors.Is(err, operation.ErrOrderTransition):
		return nil, NewApiResponse[T](&ErrOrderTransition, Unsatisfied, nil)
	case err != nil:
		slog.Error("Error in DB function", "err", err)
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}
