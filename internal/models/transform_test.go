// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package models

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
)

func sampleExternal(locDate string) ExternalRecord {
	return ExternalRecord{
		ActiveBeaconRef: "BCN-0042",
		Loc:             []float64{-77.1428, -12.0464},
		LocDate:         locDate,
		Heading:         270,
		Speed:           11.5,
		MobileName:      "DON LUCHO II",
		MobileTypeName:  "Fishing vessel",
	}
}

func TestTransformRecord(t *testing.T) {
	t.Parallel()

	ext := sampleExternal("2024-03-15_14:30:00")
	rec, err := TransformRecord(&ext)
	if err != nil {
		t.Fatalf("TransformRecord() error = %v", err)
	}

	want := InternalRecord{
		ID:                   "BCN-0042",
		Longitude:            -77.1428,
		Latitude:             -12.0464,
		TransmissionDateTime: "2024/03/15 09:30:00",
		Course:               270,
		Speed:                11.5,
		MobileName:           "DON LUCHO II",
		MobileTypeName:       "Fishing vessel",
	}
	if rec != want {
		t.Errorf("TransformRecord() = %+v, want %+v", rec, want)
	}
}

func TestTransformRecord_DateArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		locDate string
		want    string
	}{
		{"same day", "2024-03-15_14:30:00", "2024/03/15 09:30:00"},
		{"crosses midnight", "2024-03-15_03:10:59", "2024/03/14 22:10:59"},
		{"crosses year", "2024-01-01_00:00:00", "2023/12/31 19:00:00"},
		{"crosses leap day", "2024-03-01_04:59:59", "2024/02/29 23:59:59"},
		{"exactly five hours", "2024-07-04_05:00:00", "2024/07/04 00:00:00"},
		// No DST: a US DST transition date shifts by exactly five hours too
		{"dst transition date", "2024-03-10_08:00:00", "2024/03/10 03:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ext := sampleExternal(tt.locDate)
			rec, err := TransformRecord(&ext)
			if err != nil {
				t.Fatalf("TransformRecord(%q) error = %v", tt.locDate, err)
			}
			if rec.TransmissionDateTime != tt.want {
				t.Errorf("TransformRecord(%q).TransmissionDateTime = %q, want %q", tt.locDate, rec.TransmissionDateTime, tt.want)
			}
		})
	}
}

func TestTransformRecord_InvalidLocDate(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"not-a-date",
		"2024-03-15T14:30:00Z",
		"2024-13-01_00:00:00",
		"2024-02-30_10:00:00",
		"15-03-2024_14:30:00",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			ext := sampleExternal(in)
			_, err := TransformRecord(&ext)
			if err == nil {
				t.Fatalf("TransformRecord(%q) expected error, got nil", in)
			}
			if !errors.Is(err, ErrInvalidLocDate) {
				t.Errorf("expected ErrInvalidLocDate, got %v", err)
			}
		})
	}
}

func TestTransformRecord_InvalidLoc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		loc  []float64
	}{
		{"missing", nil},
		{"empty", []float64{}},
		{"one value", []float64{-77.1}},
		{"three values", []float64{-77.1, -12.0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ext := sampleExternal("2024-03-15_14:30:00")
			ext.Loc = tt.loc
			_, err := TransformRecord(&ext)
			if !errors.Is(err, ErrInvalidLoc) {
				t.Errorf("expected ErrInvalidLoc, got %v", err)
			}
		})
	}
}

func TestTransformRecords_NullLoc(t *testing.T) {
	t.Parallel()

	body := `{"data":[{"activeBeaconRef":"B1","loc":null,"locDate":"2024-03-15_14:30:00"}]}`
	var resp ExternalRecordsResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, err := TransformRecords(*resp.Data); !errors.Is(err, ErrInvalidLoc) {
		t.Errorf("expected ErrInvalidLoc for null loc, got %v", err)
	}
}

func TestTransformRecords(t *testing.T) {
	t.Parallel()

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()
		batch := []ExternalRecord{
			sampleExternal("2024-03-15_06:00:00"),
			sampleExternal("2024-03-15_07:00:00"),
			sampleExternal("2024-03-15_08:00:00"),
		}
		got, err := TransformRecords(batch)
		if err != nil {
			t.Fatalf("TransformRecords() error = %v", err)
		}
		want := []string{"2024/03/15 01:00:00", "2024/03/15 02:00:00", "2024/03/15 03:00:00"}
		if len(got) != len(want) {
			t.Fatalf("expected %d records, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i].TransmissionDateTime != want[i] {
				t.Errorf("record %d: got %q, want %q", i, got[i].TransmissionDateTime, want[i])
			}
		}
	})

	t.Run("empty batch yields empty non-nil slice", func(t *testing.T) {
		t.Parallel()
		got, err := TransformRecords(nil)
		if err != nil {
			t.Fatalf("TransformRecords(nil) error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("one malformed record fails the batch", func(t *testing.T) {
		t.Parallel()
		batch := []ExternalRecord{
			sampleExternal("2024-03-15_06:00:00"),
			sampleExternal("garbage"),
		}
		got, err := TransformRecords(batch)
		if !errors.Is(err, ErrInvalidLocDate) {
			t.Fatalf("expected ErrInvalidLocDate, got %v", err)
		}
		if got != nil {
			t.Errorf("expected nil records on failure, got %d", len(got))
		}
	})
}

func TestTransformRecords_Idempotent(t *testing.T) {
	t.Parallel()

	batch := []ExternalRecord{
		sampleExternal("2024-03-15_00:00:01"),
		sampleExternal("2024-03-15_23:59:59"),
	}

	first, err := TransformRecords(batch)
	if err != nil {
		t.Fatalf("first transform: %v", err)
	}
	second, err := TransformRecords(batch)
	if err != nil {
		t.Fatalf("second transform: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("expected byte-identical output:\n%s\n%s", a, b)
	}
}

func TestExternalRecordsResponse_DecodeUpstreamBody(t *testing.T) {
	t.Parallel()

	body := `{"data":[{"activeBeaconRef":"B1","loc":[-80.5,-3.25],"locDate":"2024-03-15_14:30:00","heading":12,"speed":3.4,"mobileName":"M1","mobileTypeName":"T1"}]}`

	var resp ExternalRecordsResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.Data == nil {
		t.Fatal("expected data to be present")
	}
	want := []ExternalRecord{{
		ActiveBeaconRef: "B1",
		Loc:             []float64{-80.5, -3.25},
		LocDate:         "2024-03-15_14:30:00",
		Heading:         12,
		Speed:           3.4,
		MobileName:      "M1",
		MobileTypeName:  "T1",
	}}
	if !reflect.DeepEqual(*resp.Data, want) {
		t.Errorf("decoded = %+v, want %+v", *resp.Data, want)
	}

	var missing ExternalRecordsResponse
	if err := json.Unmarshal([]byte(`{"message":"oops"}`), &missing); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if missing.Data != nil {
		t.Error("expected nil data when key is absent")
	}
}

func TestNewRecordsResponse(t *testing.T) {
	t.Parallel()

	resp := NewRecordsResponse(nil)
	if !resp.Success {
		t.Error("expected success")
	}
	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"success":true,"data":[]}` {
		t.Errorf("unexpected payload: %s", out)
	}
}
