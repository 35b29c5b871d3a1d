package database

import (
	"errors"
	"testing"

	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
)

func TestMemoryPartOrderOperationTransitions(t *testing.T) {
	partOrderOperation := NewMemoryPartOrderOperation(&testLogger{}, nil)
	order, err := partOrderOperation.AddPartOrder(&PartOrder{
		PartNumber: "OIL-15W50-6QT",
		PartName:   "Aviation Oil",
		Quantity:   6,
		UnitPrice:  12.5,
		AircraftId: "aircraft-1",
	})
	if err != nil {
		t.Fatalf("AddPartOrder: unexpected error %v", err)
	}

	pass, fail := 0, 0
	if order.Status != OrderPending {
		t.Errorf("AddPartOrder: expected default status %q, got %q", OrderPending, order.Status)
		fail++
	} else {
		pass++
	}
	if order.TotalPrice != 75 {
		t.Errorf("AddPartOrder: expected total price 75, got %v", order.TotalPrice)
		fail++
	} else {
		pass++
	}

	testCases := []struct {
		status   OrderStatus
		expected error
	}{
		{OrderOrdered, nil},
		{OrderShipped, nil},
		{OrderShipped, nil},
		{OrderOrdered, ErrOrderTransition},
		{OrderDelivered, nil},
		{OrderPending, ErrOrderTransition},
		{OrderInstalled, nil},
	}
	for index, testCase := range testCases {
		_, err := partOrderOperation.UpdatePartOrderStatus(order.ID, testCase.status)
		if !errors.Is(err, testCase.expected) {
			t.Errorf("transition %d to %q: expected %v, got %v", index, testCase.status, testCase.expected, err)
			fail++
		} else {
			pass++
		}
	}

	if _, err := partOrderOperation.UpdatePartOrderStatus("missing", OrderOrdered); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("UpdatePartOrderStatus missing: expected ErrOrderNotFound, got %v", err)
		fail++
	} else {
		pass++
	}
	t.Logf("TestMemoryPartOrderOperationTransitions: %d pass, %d fail", pass, fail)
}

func TestMemoryMaintenanceOperationDefaultsAndFilter(t *testing.T) {
	maintenanceOperation := NewMemoryMaintenanceOperation(&testLogger{}, nil)
	item, err := maintenanceOperation.AddMaintenanceItem(&MaintenanceItem{
		AircraftId: "aircraft-1",
		ItemName:   "Oil Change",
		DueHours:   1250,
	})
	if err != nil {
		t.Fatalf("AddMaintenanceItem: unexpected error %v", err)
	}

	pass, fail := 0, 0
	if item.Status != MaintenanceUpcoming {
		t.Errorf("expected default status %q, got %q", MaintenanceUpcoming, item.Status)
		fail++
	} else {
		pass++
	}
	if item.Priority != PriorityMedium {
		t.Errorf("expected default priority %q, got %q", PriorityMedium, item.Priority)
		fail++
	} else {
		pass++
	}

	_, _ = maintenanceOperation.AddMaintenanceItem(&MaintenanceItem{
		AircraftId: "aircraft-2",
		ItemName:   "Annual Inspection",
		Status:     MaintenanceDue,
		Priority:   PriorityCritical,
	})

	items, err := maintenanceOperation.GetMaintenanceItems("aircraft-1")
	if err != nil {
		t.Fatalf("GetMaintenanceItems: unexpected error %v", err)
	}
	if len(items) != 1 || items[0].ItemName != "Oil Change" {
		t.Errorf("aircraft filter: expected single Oil Change item, got %+v", items)
		fail++
	} else {
		pass++
	}
	items, _ = maintenanceOperation.GetMaintenanceItems("")
	if len(items) != 2 {
		t.Errorf("empty filter: expected 2 items, got %d", len(items))
		fail++
	} else {
		pass++
	}

	status := MaintenanceCompleted
	updated, err := maintenanceOperation.UpdateMaintenanceItem(item.ID, &MaintenancePatch{Status: &status})
	if err != nil || updated.Status != MaintenanceCompleted {
		t.Errorf("UpdateMaintenanceItem: expected completed status, got %+v (err %v)", updated, err)
		fail++
	} else {
		pass++
	}
	if _, err := maintenanceOperation.UpdateMaintenanceItem("missing", &MaintenancePatch{}); !errors.Is(err, ErrMaintenanceNotFound) {
		t.Errorf("UpdateMaintenanceItem missing: expected ErrMaintenanceNotFound, got %v", err)
		fail++
	} else {
		pass++
	}
	t.Logf("TestMemoryMaintenanceOperationDefaultsAndFilter: %d pass, %d fail", pass, fail)
}

func TestMemoryFleetOperationSnapshotIsolation(t *testing.T) {
	pass, fail := 0, 0

	partOrderOperation := NewMemoryPartOrderOperation(&testLogger{}, nil)
	order, _ := partOrderOperation.AddPartOrder(&PartOrder{PartNumber: "SPARK-REM40E", PartName: "Spark Plug", Quantity: 1, AircraftId: "aircraft-1"})
	orderSnapshot, _ := partOrderOperation.GetPartOrderById(order.ID)
	if _, err := partOrderOperation.UpdatePartOrderStatus(order.ID, OrderOrdered); err != nil {
		t.Fatalf("UpdatePartOrderStatus: unexpected error %v", err)
	}
	if orderSnapshot.Status != OrderPending {
		t.Errorf("order snapshot mutated by later status update: %q", orderSnapshot.Status)
		fail++
	} else {
		pass++
	}

	maintenanceOperation := NewMemoryMaintenanceOperation(&testLogger{}, nil)
	item, _ := maintenanceOperation.AddMaintenanceItem(&MaintenanceItem{AircraftId: "aircraft-1", ItemName: "Oil Change"})
	items, _ := maintenanceOperation.GetMaintenanceItems("aircraft-1")
	itemSnapshot := items[0]
	name := "Oil Change and Filter"
	if _, err := maintenanceOperation.UpdateMaintenanceItem(item.ID, &MaintenancePatch{ItemName: &name}); err != nil {
		t.Fatalf("UpdateMaintenanceItem: unexpected error %v", err)
	}
	if itemSnapshot.ItemName != "Oil Change" {
		t.Errorf("maintenance snapshot mutated by later update: %q", itemSnapshot.ItemName)
		fail++
	} else {
		pass++
	}

	aircraftOperation := NewMemoryAircraftOperation(&testLogger{}, nil)
	saved, _ := aircraftOperation.AddAircraft(&Aircraft{Registration: "N12345", MakeModel: "Cessna 172"})
	aircraftSnapshot, _ := aircraftOperation.GetAircraftById(saved.ID)
	aircraftSnapshot.Owner = "tampered"
	current, _ := aircraftOperation.GetAircraftById(saved.ID)
	if current.Owner != "" {
		t.Errorf("store polluted through returned pointer: %q", current.Owner)
		fail++
	} else {
		pass++
	}

	t.Logf("TestMemoryFleetOperationSnapshotIsolation: %d pass, %d fail", pass, fail)
}

func TestMaintenanceItemPercentComplete(t *testing.T) {
	pass, fail := 0, 0
	testCases := []struct {
		currentHours float64
		dueHours     float64
		expected     float64
	}{
		{625, 1250, 50},
		{1250, 1250, 100},
		{2000, 1250, 100},
		{-10, 1250, 0},
		{100, 0, 0},
	}
	for _, testCase := range testCases {
		item := &MaintenanceItem{CurrentHours: testCase.currentHours, DueHours: testCase.dueHours}
		if actual := item.PercentComplete(); actual != testCase.expected {
			t.Errorf("PercentComplete(%v/%v): expected %v, got %v", testCase.currentHours, testCase.dueHours, testCase.expected, actual)
			fail++
		} else {
			pass++
		}
	}
	t.Logf("TestMaintenanceItemPercentComplete: %d pass, %d fail", pass, fail)
}

func TestMemoryAircraftOperationLifecycle(t *testing.T) {
	aircraftOperation := NewMemoryAircraftOperation(&testLogger{}, nil)
	saved, err := aircraftOperation.AddAircraft(&Aircraft{
		Registration: " n12345 ",
		MakeModel:    "Cessna 172",
		Year:         1998,
	})
	if err != nil {
		t.Fatalf("AddAircraft: unexpected error %v", err)
	}

	pass, fail := 0, 0
	if saved.Registration != "N12345" {
		t.Errorf("AddAircraft: expected normalized registration N12345, got %q", saved.Registration)
		fail++
	} else {
		pass++
	}

	saved.CurrentHours = 1250.5
	updated, err := aircraftOperation.UpdateAircraft(saved)
	if err != nil || updated.CurrentHours != 1250.5 {
		t.Errorf("UpdateAircraft: expected 1250.5 hours, got %+v (err %v)", updated, err)
		fail++
	} else {
		pass++
	}
	if !updated.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("UpdateAircraft: createdAt should be preserved")
		fail++
	} else {
		pass++
	}

	if _, err := aircraftOperation.GetAircraftById("missing"); !errors.Is(err, ErrAircraftNotFound) {
		t.Errorf("GetAircraftById missing: expected ErrAircraftNotFound, got %v", err)
		fail++
	} else {
		pass++
	}

	found, _ := aircraftOperation.DeleteAircraft(saved.ID)
	if !found {
		t.Errorf("DeleteAircraft: expected found")
		fail++
	} else {
		pass++
	}
	aircraft, _ := aircraftOperation.GetAircraft()
	if len(aircraft) != 0 {
		t.Errorf("expected empty fleet after delete, got %d", len(aircraft))
		fail++
	} else {
		pass++
	}
	t.Logf("TestMemoryAircraftOperationLifecycle: %d pass, %d fail", pass, fail)
}
