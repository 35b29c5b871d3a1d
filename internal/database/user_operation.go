package database

import (
	"context"
	"errors"
	"time"

	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DatabaseUserOperation 数据库后端的用户存储
type DatabaseUserOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewDatabaseUserOperation(db *gorm.DB, queryTimeout time.Duration) *DatabaseUserOperation {
	return &DatabaseUserOperation{db: db, queryTimeout: queryTimeout}
}

func (userOperation *DatabaseUserOperation) GetUserByUid(uid uint) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("id = ?", uid).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return
}

func (userOperation *DatabaseUserOperation) GetUserByUsername(username string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("username = ?", username).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return
}

func (userOperation *DatabaseUserOperation) RegisterUser(user *User) (*User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()

	var count int64
	if err := userOperation.db.WithContext(ctx).Model(&User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error; err != nil {
		return nil, ErrIdentifierCheck
	}
	if count > 0 {
		return nil, ErrIdentifierTaken
	}

	encoded, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	user.Password = string(encoded)

	if err := userOperation.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (userOperation *DatabaseUserOperation) VerifyUserPassword(user *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
