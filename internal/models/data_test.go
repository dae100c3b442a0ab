package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecordSerialization(t *testing.T) {
	rec := Record{
		RegionID: 9,
		Year:     2001,
		Week:     14,
		SMN:      0.071,
		SMT:      261.53,
		VCI:      48.26,
		TCI:      30.11,
		VHI:      39.19,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Failed to marshal record: %v", err)
	}

	var decoded Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal record: %v", err)
	}

	if decoded != rec {
		t.Errorf("Round-tripped record differs: got %+v, want %+v", decoded, rec)
	}
}

func TestDatasetEmpty(t *testing.T) {
	var nilDataset *Dataset
	if !nilDataset.Empty() {
		t.Error("nil dataset should be empty")
	}

	ds := &Dataset{BuiltAt: time.Now()}
	if !ds.Empty() {
		t.Error("dataset without records should be empty")
	}

	ds.Records = append(ds.Records, Record{RegionID: 1, Year: 1982, Week: 1})
	if ds.Empty() {
		t.Error("dataset with a record should not be empty")
	}
}

func TestParseParameter(t *testing.T) {
	tests := []struct {
		input    string
		expected Parameter
	}{
		{"VCI", ParamVCI},
		{"vci", ParamVCI},
		{"TCI", ParamTCI},
		{"VHI", ParamVHI},
		{"", ParamVHI},
		{"garbage", ParamVHI},
	}

	for _, tt := range tests {
		if got := ParseParameter(tt.input); got != tt.expected {
			t.Errorf("ParseParameter(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParameterValue(t *testing.T) {
	rec := Record{VCI: 10, TCI: 20, VHI: 30}

	if v := ParamVCI.Value(rec); v != 10 {
		t.Errorf("VCI value = %v, want 10", v)
	}
	if v := ParamTCI.Value(rec); v != 20 {
		t.Errorf("TCI value = %v, want 20", v)
	}
	if v := ParamVHI.Value(rec); v != 30 {
		t.Errorf("VHI value = %v, want 30", v)
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		input    string
		expected SortMode
	}{
		{"asc", SortAscending},
		{"ascending", SortAscending},
		{"desc", SortDescending},
		{"descending", SortDescending},
		{"none", SortNone},
		{"", SortNone},
	}

	for _, tt := range tests {
		if got := ParseSortMode(tt.input); got != tt.expected {
			t.Errorf("ParseSortMode(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
