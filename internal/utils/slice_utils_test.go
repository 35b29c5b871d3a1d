// Package utils
package utils

import "testing"

type record struct {
	id   string
	hour float64
}

func TestFindAndFindIndex(t *testing.T) {
	records := []*record{
		{"1", 1.2},
		{"2", 0.8},
		{"3", 2.4},
	}
	pass := 0
	fail := 0

	found := Find(records, func(element *record) bool { return element.id == "2" })
	if found == nil || found.hour != 0.8 {
		fail++
		t.Errorf("Find(id=2) = %+v; expected hour 0.8", found)
	}
	pass++

	if missing := Find(records, func(element *record) bool { return element.id == "9" }); missing != nil {
		fail++
		t.Errorf("Find(id=9) = %+v; expected nil", missing)
	}
	pass++

	if index := FindIndex(records, func(element *record) bool { return element.id == "3" }); index != 2 {
		fail++
		t.Errorf("FindIndex(id=3) = %d; expected 2", index)
	}
	pass++

	if index := FindIndex(records, func(element *record) bool { return element.id == "9" }); index != -1 {
		fail++
		t.Errorf("FindIndex(id=9) = %d; expected -1", index)
	}
	pass++

	t.Logf("TestFindAndFindIndex: %d pass, %d fail", pass, fail)
}

func TestFilter(t *testing.T) {
	records := []*record{
		{"1", 1.2},
		{"2", 0.8},
		{"3", 2.4},
	}
	filtered := Filter(records, func(element *record) bool { return element.hour >= 1 })
	if len(filtered) != 2 {
		t.Errorf("Filter(hour>=1) returned %d records; expected 2", len(filtered))
	}
	empty := Filter(records, func(element *record) bool { return false })
	if len(empty) != 0 {
		t.Errorf("Filter(none) returned %d records; expected 0", len(empty))
	}
}

func TestReverseForEach(t *testing.T) {
	src := []int{1, 2, 3}
	result := make([]int, 0, len(src))
	ReverseForEach(src, func(idx int, element int) {
		result = append(result, element)
	})
	for i, expected := range []int{3, 2, 1} {
		if result[i] != expected {
			t.Errorf("ReverseForEach order at %d = %d; expected %d", i, result[i], expected)
		}
	}
}
