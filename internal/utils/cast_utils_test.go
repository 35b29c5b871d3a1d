// Package utils
package utils

import "testing"

func ExampleStrToFloat() {
	StrToFloat("1.2", 0)
}

func ExampleStrToInt() {
	StrToInt("3", 0)
}

func TestStrToFloat(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue float64
		expected     float64
	}{
		{"1.2", 0, 1.2},
		{"1250.5", 1, 1250.5},
		{"N12345", 0, 0},
		{"", 2.5, 2.5},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToFloat(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToFloat(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
		pass++
	}
	t.Logf("TestStrToFloat: %d pass, %d fail", pass, fail)
}

func TestStrToInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"3", 0, 3},
		{"21000", 1, 21000},
		{"N12345", 0, 0},
		{"", 6, 6},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToInt(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
		pass++
	}
	t.Logf("TestStrToInt: %d pass, %d fail", pass, fail)
}
