// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrUserNotFound 指定用户不存在
	ErrUserNotFound = errors.New("user does not exist")
	// ErrIdentifierTaken 用户标识已被占用
	ErrIdentifierTaken = errors.New("user identifiers have been used")
	// ErrIdentifierCheck 用户标识查重失败
	ErrIdentifierCheck = errors.New("identifier check error")
	// ErrPasswordEncode 密码编码失败
	ErrPasswordEncode = errors.New("password encode error")
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	FullName  string    `gorm:"size:64" json:"fullName"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// UserOperationInterface 用户存储操作接口定义
type UserOperationInterface interface {
	// GetUserByUid 根据ID获取用户, 不存在时返回ErrUserNotFound
	GetUserByUid(uid uint) (user *User, err error)
	// GetUserByUsername 根据用户名获取用户, 不存在时返回ErrUserNotFound
	GetUserByUsername(username string) (user *User, err error)
	// RegisterUser 注册新用户, 标识重复时返回ErrIdentifierTaken
	RegisterUser(user *User) (saved *User, err error)
	// VerifyUserPassword 校验用户密码
	VerifyUserPassword(user *User, password string) bool
}
