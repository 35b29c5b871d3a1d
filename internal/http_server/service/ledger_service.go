// Package service
package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/open-hangar/aeroledger/internal/interfaces/global"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/thanhpk/randstr"
)

// SimulatedLedgerService 模拟账本实现, 不连接真实链
// 交易凭证保存在进程内, 重启后清空
type SimulatedLedgerService struct {
	logger       log.LoggerInterface
	lock         sync.RWMutex
	transactions []*LedgerTransaction
}

func NewSimulatedLedgerService(logger log.LoggerInterface) *SimulatedLedgerService {
	return &SimulatedLedgerService{
		logger:       logger,
		transactions: make([]*LedgerTransaction, 0),
	}
}

func (ledgerService *SimulatedLedgerService) newTransaction(
	txType LedgerTransactionType,
	data map[string]any,
	gasBase, gasRange int64,
) *LedgerTransaction {
	transaction := &LedgerTransaction{
		ID:              randstr.Hex(16),
		TransactionHash: "0x" + randstr.Hex(32),
		BlockNumber:     global.LedgerBaseBlockNumber + rand.Int63n(global.LedgerBlockNumberRange),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Type:            txType,
		Data:            data,
		GasUsed:         gasBase + rand.Int63n(gasRange),
		Status:          LedgerStatusConfirmed,
	}
	ledgerService.lock.Lock()
	ledgerService.transactions = append(ledgerService.transactions, transaction)
	ledgerService.lock.Unlock()
	ledgerService.logger.DebugF("Ledger transaction %s recorded in block %d", transaction.TransactionHash, transaction.BlockNumber)
	return transaction
}

var (
	SuccessLedgerRecord = ApiStatus{StatusName: "LEDGER_RECORD_SUCCESS", Description: "账本记录成功", HttpCode: Ok}
)

func (ledgerService *SimulatedLedgerService) RecordFlightLog(req *RequestLedgerFlightLog) *ApiResponse[ResponseLedgerRecord] {
	entry := req.Entry()
	if entry == nil {
		return NewApiResponse[ResponseLedgerRecord](&ErrLackParam, Unsatisfied, nil)
	}
	transaction := ledgerService.newTransaction(LedgerTypeFlightLog, map[string]any{
		"aircraftId":     entry.AircraftIdent,
		"flightHours":    entry.TotalDuration,
		"route":          fmt.Sprintf("%s-%s", entry.RouteFrom, entry.RouteTo),
		"pilotSignature": entry.PilotSignature,
	}, 21000, 50000)
	return NewApiResponse(&SuccessLedgerRecord, Unsatisfied, (*ResponseLedgerRecord)(transaction))
}

func (ledgerService *SimulatedLedgerService) RecordMaintenance(req *RequestLedgerMaintenance) *ApiResponse[ResponseLedgerRecord] {
	item := req.Item()
	if item == nil {
		return NewApiResponse[ResponseLedgerRecord](&ErrLackParam, Unsatisfied, nil)
	}
	transaction := ledgerService.newTransaction(LedgerTypeMaintenance, map[string]any{
		"aircraftId":         item.AircraftId,
		"itemName":           item.ItemName,
		"partNumber":         item.PartNumber,
		"status":             item.Status,
		"hoursAtMaintenance": item.CurrentHours,
	}, 25000, 40000)
	return NewApiResponse(&SuccessLedgerRecord, Unsatisfied, (*ResponseLedgerRecord)(transaction))
}

func (ledgerService *SimulatedLedgerService) RecordPartOrder(req *RequestLedgerPartOrder) *ApiResponse[ResponseLedgerRecord] {
	order := req.Order()
	if order == nil {
		return NewApiResponse[ResponseLedgerRecord](&ErrLackParam, Unsatisfied, nil)
	}
	transaction := ledgerService.newTransaction(LedgerTypePartOrder, map[string]any{
		"partNumber": order.PartNumber,
		"supplier":   order.Supplier,
		"quantity":   order.Quantity,
		"totalPrice": order.TotalPrice,
		"aircraftId": order.AircraftId,
	}, 20000, 35000)
	return NewApiResponse(&SuccessLedgerRecord, Unsatisfied, (*ResponseLedgerRecord)(transaction))
}

// RecordOwnership 航空器登记入账, 交易凭证进入该机的所有权历史
func (ledgerService *SimulatedLedgerService) RecordOwnership(req *RequestLedgerOwnership) *ApiResponse[ResponseLedgerRecord] {
	aircraft := req.Aircraft()
	if aircraft == nil {
		return NewApiResponse[ResponseLedgerRecord](&ErrLackParam, Unsatisfied, nil)
	}
	transaction := ledgerService.newTransaction(LedgerTypeOwnership, map[string]any{
		"aircraftId":   aircraft.ID,
		"registration": aircraft.Registration,
		"makeModel":    aircraft.MakeModel,
		"owner":        aircraft.Owner,
	}, 30000, 45000)
	return NewApiResponse(&SuccessLedgerRecord, Unsatisfied, (*ResponseLedgerRecord)(transaction))
}

var (
	SuccessLedgerTransactions = ApiStatus{StatusName: "GET_TRANSACTIONS_SUCCESS", Description: "获取账本交易成功", HttpCode: Ok}
)

func (ledgerService *SimulatedLedgerService) GetTransactions(_ *RequestLedgerTransactions) *ApiResponse[ResponseLedgerTransactions] {
	ledgerService.lock.RLock()
	items := make([]*LedgerTransaction, len(ledgerService.transactions))
	copy(items, ledgerService.transactions)
	ledgerService.lock.RUnlock()
	return NewApiResponse(&SuccessLedgerTransactions, Unsatisfied, &ResponseLedgerTransactions{
		Items: items,
		Total: len(items),
	})
}

var (
	SuccessOnChainLogbook = ApiStatus{StatusName: "GET_ONCHAIN_LOGBOOK_SUCCESS", Description: "获取链上日志成功", HttpCode: Ok}
)

// GetOnChainLogbook 汇总该航空器已入账的飞行交易
func (ledgerService *SimulatedLedgerService) GetOnChainLogbook(req *RequestOnChainLogbook) *ApiResponse[ResponseOnChainLogbook] {
	if req.AircraftId == "" {
		return NewApiResponse[ResponseOnChainLogbook](&ErrLackParam, Unsatisfied, nil)
	}

	logbook := &ResponseOnChainLogbook{
		AircraftId:         req.AircraftId,
		LastUpdate:         time.Now().UTC().Format(time.RFC3339),
		MaintenanceHistory: make([]string, 0),
		OwnershipHistory:   make([]string, 0),
		VerificationStatus: "unverified",
	}

	ledgerService.lock.RLock()
	for _, transaction := range ledgerService.transactions {
		if transaction.Data["aircraftId"] != req.AircraftId {
			continue
		}
		switch transaction.Type {
		case LedgerTypeFlightLog:
			logbook.TotalFlights++
			if hours, ok := transaction.Data["flightHours"].(float64); ok {
				logbook.TotalHours += hours
			}
			logbook.LastUpdate = transaction.Timestamp
		case LedgerTypeMaintenance:
			logbook.MaintenanceHistory = append(logbook.MaintenanceHistory, transaction.TransactionHash)
		case LedgerTypeOwnership:
			logbook.OwnershipHistory = append(logbook.OwnershipHistory, transaction.TransactionHash)
		}
	}
	ledgerService.lock.RUnlock()

	if logbook.TotalFlights > 0 {
		logbook.VerificationStatus = "verified"
	}
	return NewApiResponse(&SuccessOnChainLogbook, Unsatisfied, logbook)
}

var (
	SuccessLedgerContract = ApiStatus{StatusName: "GET_CONTRACT_SUCCESS", Description: "获取合约信息成功", HttpCode: Ok}
)

func (ledgerService *SimulatedLedgerService) GetContractInfo(_ *RequestLedgerContract) *ApiResponse[ResponseLedgerContract] {
	return NewApiResponse(&SuccessLedgerContract, Unsatisfied, &ResponseLedgerContract{
		ContractAddress: global.LedgerContractAddress,
		Network:         global.LedgerNetworkName,
	})
}
