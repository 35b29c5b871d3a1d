// Package interfaces
package interfaces

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
