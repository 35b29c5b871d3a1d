package database

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/open-hangar/aeroledger/internal/interfaces/global"
	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
)

// testLogger 测试用空日志器
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

// fakeBlobStore 进程内blob存储, 预置内容用于模拟回读
type fakeBlobStore struct {
	blobs map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (store *fakeBlobStore) LoadBlob(key string) ([]byte, error) {
	data, ok := store.blobs[key]
	if !ok {
		return nil, errors.New("blob does not exist")
	}
	return data, nil
}

func (store *fakeBlobStore) SaveBlob(key string, data []byte) error {
	store.blobs[key] = data
	return nil
}

func TestMemoryLogbookOperationAddAndGet(t *testing.T) {
	logbookOperation := NewMemoryLogbookOperation(&testLogger{}, newFakeBlobStore(), nil)
	pass, fail := 0, 0

	seen := make(map[string]bool)
	for index := 0; index < 5; index++ {
		saved, err := logbookOperation.AddEntry(&LogbookEntry{
			Date:          "2025-05-25",
			AircraftIdent: "N12345",
			TotalDuration: 1.0,
		})
		if err != nil {
			t.Errorf("AddEntry %d: unexpected error %v", index, err)
			fail++
			continue
		}
		if saved.ID == "" || seen[saved.ID] {
			t.Errorf("AddEntry %d: id %q is empty or duplicated", index, saved.ID)
			fail++
			continue
		}
		seen[saved.ID] = true
		pass++
	}

	entries, err := logbookOperation.GetEntries()
	if err != nil {
		t.Errorf("GetEntries: unexpected error %v", err)
		fail++
	} else if len(entries) != 5 {
		t.Errorf("GetEntries: expected 5 entries, got %d", len(entries))
		fail++
	} else {
		pass++
	}
	t.Logf("TestMemoryLogbookOperationAddAndGet: %d pass, %d fail", pass, fail)
}

func TestMemoryLogbookOperationSortAndFilter(t *testing.T) {
	logbookOperation := NewMemoryLogbookOperation(&testLogger{}, nil, nil)
	_, _ = logbookOperation.AddEntry(&LogbookEntry{Date: "2025-05-24", AircraftIdent: "n12345", Remarks: "first"})
	_, _ = logbookOperation.AddEntry(&LogbookEntry{Date: "2025-05-25", AircraftIdent: "N12345", Remarks: "second"})
	_, _ = logbookOperation.AddEntry(&LogbookEntry{Date: "2025-05-25", AircraftIdent: "N67890", Remarks: "third"})

	entries, err := logbookOperation.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries: unexpected error %v", err)
	}
	pass, fail := 0, 0
	expectedOrder := []string{"second", "third", "first"}
	for index, remarks := range expectedOrder {
		if entries[index].Remarks != remarks {
			t.Errorf("entry %d: expected %q, got %q", index, remarks, entries[index].Remarks)
			fail++
		} else {
			pass++
		}
	}

	// 机尾号过滤大小写不敏感
	filtered, err := logbookOperation.GetEntriesByAircraft(" n12345 ")
	if err != nil {
		t.Fatalf("GetEntriesByAircraft: unexpected error %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("GetEntriesByAircraft: expected 2 entries, got %d", len(filtered))
		fail++
	} else {
		pass++
	}
	t.Logf("TestMemoryLogbookOperationSortAndFilter: %d pass, %d fail", pass, fail)
}

func TestMemoryLogbookOperationUpdateAndDelete(t *testing.T) {
	logbookOperation := NewMemoryLogbookOperation(&testLogger{}, newFakeBlobStore(), nil)
	saved, _ := logbookOperation.AddEntry(&LogbookEntry{Date: "2025-05-25", AircraftIdent: "N12345", TotalDuration: 1.2})

	pass, fail := 0, 0
	newDuration := 1.5
	updated, err := logbookOperation.UpdateEntry(saved.ID, &LogbookEntryPatch{TotalDuration: &newDuration})
	if err != nil || updated.TotalDuration != 1.5 {
		t.Errorf("UpdateEntry: expected duration 1.5, got %v (err %v)", updated, err)
		fail++
	} else {
		pass++
	}
	if updated.AircraftIdent != "N12345" {
		t.Errorf("UpdateEntry: untouched field changed, got %q", updated.AircraftIdent)
		fail++
	} else {
		pass++
	}

	if _, err := logbookOperation.UpdateEntry("missing", &LogbookEntryPatch{}); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("UpdateEntry missing: expected ErrEntryNotFound, got %v", err)
		fail++
	} else {
		pass++
	}

	found, err := logbookOperation.DeleteEntry(saved.ID)
	if err != nil || !found {
		t.Errorf("DeleteEntry: expected found, got %v (err %v)", found, err)
		fail++
	} else {
		pass++
	}
	found, err = logbookOperation.DeleteEntry(saved.ID)
	if err != nil || found {
		t.Errorf("DeleteEntry twice: expected not found, got %v (err %v)", found, err)
		fail++
	} else {
		pass++
	}
	t.Logf("TestMemoryLogbookOperationUpdateAndDelete: %d pass, %d fail", pass, fail)
}

func TestMemoryLogbookOperationSnapshotIsolation(t *testing.T) {
	logbookOperation := NewMemoryLogbookOperation(&testLogger{}, nil, nil)
	saved, _ := logbookOperation.AddEntry(&LogbookEntry{Date: "2025-05-25", AircraftIdent: "N12345", Remarks: "original"})

	pass, fail := 0, 0
	entries, _ := logbookOperation.GetEntries()
	snapshot := entries[0]
	byId, _ := logbookOperation.GetEntryById(saved.ID)

	remarks := "rewritten"
	if _, err := logbookOperation.UpdateEntry(saved.ID, &LogbookEntryPatch{Remarks: &remarks}); err != nil {
		t.Fatalf("UpdateEntry: unexpected error %v", err)
	}

	// 读取结果是值拷贝, 后续更新不能改写已经取走的记录
	if snapshot.Remarks != "original" {
		t.Errorf("GetEntries snapshot mutated by later update: %q", snapshot.Remarks)
		fail++
	} else {
		pass++
	}
	if byId.Remarks != "original" {
		t.Errorf("GetEntryById snapshot mutated by later update: %q", byId.Remarks)
		fail++
	} else {
		pass++
	}

	// 反向同理, 改写读取结果不能污染存储
	snapshot.Remarks = "tampered"
	current, _ := logbookOperation.GetEntryById(saved.ID)
	if current.Remarks != "rewritten" {
		t.Errorf("store polluted through returned pointer: %q", current.Remarks)
		fail++
	} else {
		pass++
	}
	t.Logf("TestMemoryLogbookOperationSnapshotIsolation: %d pass, %d fail", pass, fail)
}

func TestMemoryLogbookOperationPersistence(t *testing.T) {
	store := newFakeBlobStore()
	first := NewMemoryLogbookOperation(&testLogger{}, store, nil)
	saved, _ := first.AddEntry(&LogbookEntry{Date: "2025-05-25", AircraftIdent: "N12345", TotalDuration: 1.2})

	// 用同一个存储重建, 持久化内容应覆盖种子数据
	second := NewMemoryLogbookOperation(&testLogger{}, store, []*LogbookEntry{
		{ID: "seed", Date: "2024-01-01", AircraftIdent: "N00000"},
	})
	entries, err := second.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries: unexpected error %v", err)
	}
	if len(entries) != 1 || entries[0].ID != saved.ID {
		t.Errorf("expected persisted entry %q to survive restart, got %+v", saved.ID, entries)
	}
}

func TestMemoryLogbookOperationCorruptedBlob(t *testing.T) {
	store := newFakeBlobStore()
	store.blobs[global.FlightsBlobKey] = []byte("not json")

	seed := []*LogbookEntry{{ID: "seed", Date: "2025-01-01", AircraftIdent: "N12345"}}
	logbookOperation := NewMemoryLogbookOperation(&testLogger{}, store, seed)
	entries, err := logbookOperation.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries: unexpected error %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "seed" {
		t.Errorf("corrupted blob should keep seed entries, got %+v", entries)
	}

	// 后续写入正常覆盖损坏内容
	if _, err := logbookOperation.AddEntry(&LogbookEntry{Date: "2025-05-25", AircraftIdent: "N12345"}); err != nil {
		t.Fatalf("AddEntry: unexpected error %v", err)
	}
	var persisted []*LogbookEntry
	if err := json.Unmarshal(store.blobs[global.FlightsBlobKey], &persisted); err != nil {
		t.Errorf("persisted blob should be valid JSON after write: %v", err)
	} else if len(persisted) != 2 {
		t.Errorf("expected 2 persisted entries, got %d", len(persisted))
	}
}
