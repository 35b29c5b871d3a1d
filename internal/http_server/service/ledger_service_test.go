// Package service
package service

import (
	"strings"
	"testing"

	"github.com/open-hangar/aeroledger/internal/interfaces/global"
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
)

type testLogger struct{}

func (logger *testLogger) Init(debug bool)                   {}
func (logger *testLogger) ShutdownCallback() global.Callable { return nil }
func (logger *testLogger) Debug(msg string, v ...interface{})  {}
func (logger *testLogger) DebugF(msg string, v ...interface{}) {}
func (logger *testLogger) Info(msg string, v ...interface{})   {}
func (logger *testLogger) InfoF(msg string, v ...interface{})  {}
func (logger *testLogger) Warn(msg string, v ...interface{})   {}
func (logger *testLogger) WarnF(msg string, v ...interface{})  {}
func (logger *testLogger) Error(msg string, v ...interface{})  {}
func (logger *testLogger) ErrorF(msg string, v ...interface{}) {}
func (logger *testLogger) Fatal(msg string, v ...interface{})  {}
func (logger *testLogger) FatalF(msg string, v ...interface{}) {}

func TestSimulatedLedgerServiceRecordFlightLog(t *testing.T) {
	ledgerService := NewSimulatedLedgerService(&testLogger{})
	req := &RequestLedgerFlightLog{}
	req.SetEntry(&operation.LogbookEntry{
		AircraftIdent:  "N12345",
		TotalDuration:  1.2,
		RouteFrom:      "KSMO",
		RouteTo:        "KVNY",
		PilotSignature: "Pat Boone",
	})
	response := ledgerService.RecordFlightLog(req)
	if response.Data == nil {
		t.Fatalf("RecordFlightLog: expected transaction data, got %+v", response)
	}

	pass, fail := 0, 0
	transaction := response.Data
	if !strings.HasPrefix(transaction.TransactionHash, "0x") || len(transaction.TransactionHash) != 66 {
		t.Errorf("unexpected transaction hash %q", transaction.TransactionHash)
		fail++
	} else {
		pass++
	}
	if transaction.BlockNumber < global.LedgerBaseBlockNumber ||
		transaction.BlockNumber >= global.LedgerBaseBlockNumber+global.LedgerBlockNumberRange {
		t.Errorf("block number %d outside simulated range", transaction.BlockNumber)
		fail++
	} else {
		pass++
	}
	if transaction.GasUsed < 21000 || transaction.GasUsed >= 71000 {
		t.Errorf("gas used %d outside flight log range", transaction.GasUsed)
		fail++
	} else {
		pass++
	}
	if transaction.Status != LedgerStatusConfirmed {
		t.Errorf("expected confirmed status, got %q", transaction.Status)
		fail++
	} else {
		pass++
	}
	if transaction.Data["route"] != "KSMO-KVNY" {
		t.Errorf("expected route KSMO-KVNY, got %v", transaction.Data["route"])
		fail++
	} else {
		pass++
	}
	t.Logf("TestSimulatedLedgerServiceRecordFlightLog: %d pass, %d fail", pass, fail)
}

func TestSimulatedLedgerServiceRecordWithoutPayload(t *testing.T) {
	ledgerService := NewSimulatedLedgerService(&testLogger{})
	if response := ledgerService.RecordFlightLog(&RequestLedgerFlightLog{}); response.Data != nil {
		t.Errorf("RecordFlightLog without entry should not record, got %+v", response.Data)
	}
	if response := ledgerService.RecordMaintenance(&RequestLedgerMaintenance{}); response.Data != nil {
		t.Errorf("RecordMaintenance without item should not record, got %+v", response.Data)
	}
	if response := ledgerService.RecordPartOrder(&RequestLedgerPartOrder{}); response.Data != nil {
		t.Errorf("RecordPartOrder without order should not record, got %+v", response.Data)
	}
	transactions := ledgerService.GetTransactions(&RequestLedgerTransactions{})
	if transactions.Data.Total != 0 {
		t.Errorf("expected empty ledger, got %d transactions", transactions.Data.Total)
	}
}

func TestSimulatedLedgerServiceOnChainLogbook(t *testing.T) {
	ledgerService := NewSimulatedLedgerService(&testLogger{})

	flight := &RequestLedgerFlightLog{}
	flight.SetEntry(&operation.LogbookEntry{AircraftIdent: "N12345", TotalDuration: 1.2, RouteFrom: "KSMO", RouteTo: "KVNY"})
	ledgerService.RecordFlightLog(flight)

	flight = &RequestLedgerFlightLog{}
	flight.SetEntry(&operation.LogbookEntry{AircraftIdent: "N12345", TotalDuration: 0.8, RouteFrom: "KVNY", RouteTo: "KSMO"})
	ledgerService.RecordFlightLog(flight)

	maintenance := &RequestLedgerMaintenance{}
	maintenance.SetItem(&operation.MaintenanceItem{AircraftId: "N12345", ItemName: "Oil Change"})
	ledgerService.RecordMaintenance(maintenance)

	ownership := &RequestLedgerOwnership{AircraftId: "N12345"}
	ownership.SetAircraft(&operation.Aircraft{ID: "N12345", Registration: "N12345", Owner: "Pat Boone"})
	ledgerService.RecordOwnership(ownership)

	other := &RequestLedgerFlightLog{}
	other.SetEntry(&operation.LogbookEntry{AircraftIdent: "N67890", TotalDuration: 3.0})
	ledgerService.RecordFlightLog(other)

	response := ledgerService.GetOnChainLogbook(&RequestOnChainLogbook{AircraftId: "N12345"})
	if response.Data == nil {
		t.Fatalf("GetOnChainLogbook: expected logbook, got %+v", response)
	}

	pass, fail := 0, 0
	logbook := response.Data
	if logbook.TotalFlights != 2 {
		t.Errorf("expected 2 flights, got %d", logbook.TotalFlights)
		fail++
	} else {
		pass++
	}
	if diff := logbook.TotalHours - 2.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected 2.0 total hours, got %v", logbook.TotalHours)
		fail++
	} else {
		pass++
	}
	if len(logbook.MaintenanceHistory) != 1 {
		t.Errorf("expected 1 maintenance record, got %d", len(logbook.MaintenanceHistory))
		fail++
	} else {
		pass++
	}
	if len(logbook.OwnershipHistory) != 1 {
		t.Errorf("expected 1 ownership record, got %d", len(logbook.OwnershipHistory))
		fail++
	} else {
		pass++
	}
	if logbook.VerificationStatus != "verified" {
		t.Errorf("expected verified status, got %q", logbook.VerificationStatus)
		fail++
	} else {
		pass++
	}

	empty := ledgerService.GetOnChainLogbook(&RequestOnChainLogbook{AircraftId: "N00000"})
	if empty.Data.VerificationStatus != "unverified" {
		t.Errorf("expected unverified status for unknown aircraft, got %q", empty.Data.VerificationStatus)
		fail++
	} else {
		pass++
	}
	t.Logf("TestSimulatedLedgerServiceOnChainLogbook: %d pass, %d fail", pass, fail)
}

func TestSimulatedLedgerServiceContractInfo(t *testing.T) {
	ledgerService := NewSimulatedLedgerService(&testLogger{})
	response := ledgerService.GetContractInfo(&RequestLedgerContract{})
	if response.Data.ContractAddress != global.LedgerContractAddress {
		t.Errorf("unexpected contract address %q", response.Data.ContractAddress)
	}
	if response.Data.Network != global.LedgerNetworkName {
		t.Errorf("unexpected network %q", response.Data.Network)
	}
}
