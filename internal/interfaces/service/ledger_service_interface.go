// Package service
package service

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
)

type LedgerTransactionType string

const (
	LedgerTypeFlightLog   LedgerTransactionType = "flight_log"
	LedgerTypeMaintenance LedgerTransactionType = "maintenance"
	LedgerTypePartOrder   LedgerTransactionType = "part_order"
	LedgerTypeOwnership   LedgerTransactionType = "ownership"
)

type LedgerTransactionStatus string

const (
	LedgerStatusPending   LedgerTransactionStatus = "pending"
	LedgerStatusConfirmed LedgerTransactionStatus = "confirmed"
	LedgerStatusFailed    LedgerTransactionStatus = "failed"
)

// LedgerTransaction 一笔账本交易凭证
type LedgerTransaction struct {
	ID              string                  `json:"id"`
	TransactionHash string                  `json:"transactionHash"`
	BlockNumber     int64                   `json:"blockNumber"`
	Timestamp       string                  `json:"timestamp"`
	Type            LedgerTransactionType   `json:"type"`
	Data            map[string]any          `json:"data"`
	GasUsed         int64                   `json:"gasUsed"`
	Status          LedgerTransactionStatus `json:"status"`
}

// OnChainLogbook 某架航空器在账本上的汇总视图
type OnChainLogbook struct {
	AircraftId         string   `json:"aircraftId"`
	TotalHours         float64  `json:"totalHours"`
	TotalFlights       int      `json:"totalFlights"`
	LastUpdate         string   `json:"lastUpdate"`
	MaintenanceHistory []string `json:"maintenanceHistory"`
	OwnershipHistory   []string `json:"ownershipHistory"`
	VerificationStatus string   `json:"verificationStatus"`
}

// LedgerServiceInterface 飞行记录账本服务, 当前为模拟实现
type LedgerServiceInterface interface {
	RecordFlightLog(req *RequestLedgerFlightLog) *ApiResponse[ResponseLedgerRecord]
	RecordMaintenance(req *RequestLedgerMaintenance) *ApiResponse[ResponseLedgerRecord]
	RecordPartOrder(req *RequestLedgerPartOrder) *ApiResponse[ResponseLedgerRecord]
	RecordOwnership(req *RequestLedgerOwnership) *ApiResponse[ResponseLedgerRecord]
	GetTransactions(req *RequestLedgerTransactions) *ApiResponse[ResponseLedgerTransactions]
	GetOnChainLogbook(req *RequestOnChainLogbook) *ApiResponse[ResponseOnChainLogbook]
	GetContractInfo(req *RequestLedgerContract) *ApiResponse[ResponseLedgerContract]
}

type RequestLedgerFlightLog struct {
	EntryId string `json:"entryId"`
	entry   *operation.LogbookEntry
}

func (req *RequestLedgerFlightLog) SetEntry(entry *operation.LogbookEntry) {
	req.entry = entry
}

func (req *RequestLedgerFlightLog) Entry() *operation.LogbookEntry {
	return req.entry
}

type RequestLedgerMaintenance struct {
	ItemId string `json:"itemId"`
	item   *operation.MaintenanceItem
}

func (req *RequestLedgerMaintenance) SetItem(item *operation.MaintenanceItem) {
	req.item = item
}

func (req *RequestLedgerMaintenance) Item() *operation.MaintenanceItem {
	return req.item
}

type RequestLedgerOwnership struct {
	AircraftId string `json:"aircraftId"`
	aircraft   *operation.Aircraft
}

func (req *RequestLedgerOwnership) SetAircraft(aircraft *operation.Aircraft) {
	req.aircraft = aircraft
}

func (req *RequestLedgerOwnership) Aircraft() *operation.Aircraft {
	return req.aircraft
}

type RequestLedgerPartOrder struct {
	OrderId string `json:"orderId"`
	order   *operation.PartOrder
}

func (req *RequestLedgerPartOrder) SetOrder(order *operation.PartOrder) {
	req.order = order
}

func (req *RequestLedgerPartOrder) Order() *operation.PartOrder {
	return req.order
}

type ResponseLedgerRecord LedgerTransaction

type RequestLedgerTransactions struct{}

type ResponseLedgerTransactions struct {
	Items []*LedgerTransaction `json:"items"`
	Total int                  `json:"total"`
}

type RequestOnChainLogbook struct {
	AircraftId string `param:"id"`
}

type ResponseOnChainLogbook OnChainLogbook

type RequestLedgerContract struct{}

type ResponseLedgerContract struct {
	ContractAddress string `json:"contractAddress"`
	Network         string `json:"network"`
}
