// Package service
package service

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
)

type UserServiceInterface interface {
	UserRegister(req *RequestUserRegister) *ApiResponse[ResponseUserRegister]
	UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin]
	GetCurrentProfile(req *RequestUserCurrentProfile) *ApiResponse[ResponseUserCurrentProfile]
}

type RequestUserRegister struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type ResponseUserRegister struct {
	User       *operation.User `json:"user"`
	Token      string          `json:"token"`
	FlushToken string          `json:"flush_token"`
}

type RequestUserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResponseUserLogin struct {
	User       *operation.User `json:"user"`
	Token      string          `json:"token"`
	FlushToken string          `json:"flush_token"`
}

type RequestUserCurrentProfile struct {
	Uid uint
}

type ResponseUserCurrentProfile operation.User
