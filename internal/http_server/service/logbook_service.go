// Package service
package service

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
)

type LogbookService struct {
	logger           log.LoggerInterface
	logbookOperation operation.LogbookOperationInterface
	ledgerService    LedgerServiceInterface
}

func NewLogbookService(
	logger log.LoggerInterface,
	logbookOperation operation.LogbookOperationInterface,
	ledgerService LedgerServiceInterface,
) *LogbookService {
	return &LogbookService{
		logger:           logger,
		logbookOperation: logbookOperation,
		ledgerService:    ledgerService,
	}
}

var (
	SuccessGetEntries = ApiStatus{StatusName: "GET_ENTRIES_SUCCESS", Description: "获取飞行记录成功", HttpCode: Ok}
	SuccessGetEntry   = ApiStatus{StatusName: "GET_ENTRY_SUCCESS", Description: "获取飞行记录详情成功", HttpCode: Ok}
	SuccessAddEntry   = ApiStatus{StatusName: "ADD_ENTRY_SUCCESS", Description: "新增飞行记录成功", HttpCode: Ok}
	SuccessEditEntry  = ApiStatus{StatusName: "EDIT_ENTRY_SUCCESS", Description: "更新飞行记录成功", HttpCode: Ok}
	SuccessDelEntry   = ApiStatus{StatusName: "DELETE_ENTRY_SUCCESS", Description: "删除飞行记录成功", HttpCode: Ok}
	SuccessGetStats   = ApiStatus{StatusName: "GET_STATS_SUCCESS", Description: "获取飞行统计成功", HttpCode: Ok}
)

func (logbookService *LogbookService) getEntries(aircraftIdent string) ([]*operation.LogbookEntry, error) {
	if aircraftIdent == "" {
		return logbookService.logbookOperation.GetEntries()
	}
	return logbookService.logbookOperation.GetEntriesByAircraft(aircraftIdent)
}

func (logbookService *LogbookService) GetEntries(req *RequestLogbookEntries) *ApiResponse[ResponseLogbookEntries] {
	entries, err := logbookService.getEntries(req.AircraftIdent)
	if err != nil {
		return NewApiResponse[ResponseLogbookEntries](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetEntries, Unsatisfied, &ResponseLogbookEntries{
		Items: entries,
		Total: len(entries),
	})
}

func (logbookService *LogbookService) GetEntry(req *RequestLogbookEntry) *ApiResponse[ResponseLogbookEntry] {
	if req.ID == "" {
		return NewApiResponse[ResponseLogbookEntry](&ErrLackParam, Unsatisfied, nil)
	}
	entry, res := CallDBFuncAndCheckError[operation.LogbookEntry, ResponseLogbookEntry](func() (*operation.LogbookEntry, error) {
		return logbookService.logbookOperation.GetEntryById(req.ID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetEntry, Unsatisfied, (*ResponseLogbookEntry)(entry))
}

var (
	ErrDurationInvalid = ApiStatus{StatusName: "DURATION_INVALID", Description: "飞行时长不能为负数", HttpCode: BadRequest}
)

func (logbookService *LogbookService) AddEntry(req *RequestLogbookAdd) *ApiResponse[ResponseLogbookAdd] {
	if req.AircraftIdent == "" {
		return NewApiResponse[ResponseLogbookAdd](&ErrLackParam, Unsatisfied, nil)
	}
	if req.TotalDuration < 0 {
		return NewApiResponse[ResponseLogbookAdd](&ErrDurationInvalid, Unsatisfied, nil)
	}
	entry, res := CallDBFuncAndCheckError[operation.LogbookEntry, ResponseLogbookAdd](func() (*operation.LogbookEntry, error) {
		return logbookService.logbookOperation.AddEntry(&req.LogbookEntry)
	})
	if res != nil {
		return res
	}

	// 入账失败不影响记录本身
	ledgerReq := &RequestLedgerFlightLog{EntryId: entry.ID}
	ledgerReq.SetEntry(entry)
	if ledgerRes := logbookService.ledgerService.RecordFlightLog(ledgerReq); ledgerRes.Data == nil {
		logbookService.logger.WarnF("Ledger record failed for entry %s", entry.ID)
	}

	return NewApiResponse(&SuccessAddEntry, Unsatisfied, (*ResponseLogbookAdd)(entry))
}

func (logbookService *LogbookService) UpdateEntry(req *RequestLogbookUpdate) *ApiResponse[ResponseLogbookUpdate] {
	if req.ID == "" {
		return NewApiResponse[ResponseLogbookUpdate](&ErrLackParam, Unsatisfied, nil)
	}
	if req.TotalDuration != nil && *req.TotalDuration < 0 {
		return NewApiResponse[ResponseLogbookUpdate](&ErrDurationInvalid, Unsatisfied, nil)
	}
	entry, res := CallDBFuncAndCheckError[operation.LogbookEntry, ResponseLogbookUpdate](func() (*operation.LogbookEntry, error) {
		return logbookService.logbookOperation.UpdateEntry(req.ID, &req.LogbookEntryPatch)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessEditEntry, Unsatisfied, (*ResponseLogbookUpdate)(entry))
}

func (logbookService *LogbookService) DeleteEntry(req *RequestLogbookDelete) *ApiResponse[ResponseLogbookDelete] {
	if req.ID == "" {
		return NewApiResponse[ResponseLogbookDelete](&ErrLackParam, Unsatisfied, nil)
	}
	found, err := logbookService.logbookOperation.DeleteEntry(req.ID)
	if err != nil {
		return NewApiResponse[ResponseLogbookDelete](&ErrDatabaseFail, Unsatisfied, nil)
	}
	if !found {
		return NewApiResponse[ResponseLogbookDelete](&ErrEntryNotFound, Unsatisfied, nil)
	}
	data := ResponseLogbookDelete(true)
	return NewApiResponse(&SuccessDelEntry, Unsatisfied, &data)
}

func (logbookService *LogbookService) GetFlightStats(req *RequestFlightStats) *ApiResponse[ResponseFlightStats] {
	entries, err := logbookService.getEntries(req.AircraftIdent)
	if err != nil {
		return NewApiResponse[ResponseFlightStats](&ErrDatabaseFail, Unsatisfied, nil)
	}
	stats := operation.ComputeFlightStats(entries)
	return NewApiResponse(&SuccessGetStats, Unsatisfied, (*ResponseFlightStats)(stats))
}
