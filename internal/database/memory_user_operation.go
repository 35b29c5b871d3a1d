package database

import (
	"sync"
	"time"

	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"github.com/open-hangar/aeroledger/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// MemoryUserOperation 进程内用户存储
type MemoryUserOperation struct {
	logger log.LoggerInterface
	mu     sync.Mutex
	nextId uint
	users  []*User
}

func NewMemoryUserOperation(logger log.LoggerInterface) *MemoryUserOperation {
	return &MemoryUserOperation{
		logger: logger,
		nextId: 1,
		users:  make([]*User, 0),
	}
}

func (userOperation *MemoryUserOperation) GetUserByUid(uid uint) (*User, error) {
	userOperation.mu.Lock()
	defer userOperation.mu.Unlock()
	user := utils.Find(userOperation.users, func(user *User) bool {
		return user.ID == uid
	})
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (userOperation *MemoryUserOperation) GetUserByUsername(username string) (*User, error) {
	userOperation.mu.Lock()
	defer userOperation.mu.Unlock()
	user := utils.Find(userOperation.users, func(user *User) bool {
		return user.Username == username
	})
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (userOperation *MemoryUserOperation) RegisterUser(user *User) (*User, error) {
	userOperation.mu.Lock()
	defer userOperation.mu.Unlock()

	taken := utils.Find(userOperation.users, func(existing *User) bool {
		return existing.Username == user.Username || existing.Email == user.Email
	})
	if taken != nil {
		return nil, ErrIdentifierTaken
	}

	encoded, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		userOperation.logger.ErrorF("Fail to encode user password: %v", err)
		return nil, ErrPasswordEncode
	}
	user.Password = string(encoded)
	user.ID = userOperation.nextId
	userOperation.nextId++
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	userOperation.users = append(userOperation.users, user)
	return user, nil
}

func (userOperation *MemoryUserOperation) VerifyUserPassword(user *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
