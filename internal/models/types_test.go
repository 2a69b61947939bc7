package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTripUsesCalendarFormat(t *testing.T) {
	var payload struct {
		EntryDate Date  `json:"entryDate"`
		Optional  *Date `json:"optional"`
	}
	if err := json.Unmarshal([]byte(`{"entryDate":"2026-01-15","optional":null}`), &payload); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if payload.EntryDate.String() != "2026-01-15" {
		t.Fatalf("unexpected date: %s", payload.EntryDate)
	}
	if payload.Optional != nil {
		t.Fatalf("expected nil optional date, got %v", payload.Optional)
	}

	encoded, err := json.Marshal(payload.EntryDate)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(encoded) != `"2026-01-15"` {
		t.Fatalf("unexpected encoding: %s", encoded)
	}
}

func TestDateAcceptsTimestampAndRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-03-01T23:15:00Z"`), &d); err != nil {
		t.Fatalf("Unmarshal timestamp: %v", err)
	}
	if d.String() != "2026-03-01" {
		t.Fatalf("expected truncation to 2026-03-01, got %s", d)
	}

	if err := json.Unmarshal([]byte(`"15.01.2026"`), &d); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
	if err := json.Unmarshal([]byte(`20260115`), &d); err == nil {
		t.Fatalf("expected error for numeric date")
	}
}

func TestDateValueRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2026, 2, 3, 17, 45, 0, 0, time.FixedZone("CET", 3600)))
	value, err := d.DateValue()
	if err != nil {
		t.Fatalf("DateValue: %v", err)
	}
	if !value.Valid {
		t.Fatalf("expected valid pg date")
	}

	var scanned Date
	if err := scanned.ScanDate(value); err != nil {
		t.Fatalf("ScanDate: %v", err)
	}
	if scanned.String() != "2026-02-03" {
		t.Fatalf("unexpected scanned date: %s", scanned)
	}

	zero, _ := Date{}.DateValue()
	if zero.Valid {
		t.Fatalf("zero date should encode as NULL")
	}
}

func TestNumberAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]float64{
		`85.5`:     85.5,
		`"85.5"`:   85.5,
		`" 72,3 "`: 72.3,
		`0`:        0,
	}
	for input, want := range cases {
		var n Number
		if err := json.Unmarshal([]byte(input), &n); err != nil {
			t.Fatalf("Unmarshal(%s): %v", input, err)
		}
		if float64(n) != want {
			t.Fatalf("Unmarshal(%s) = %v, want %v", input, n, want)
		}
	}

	var n Number
	if err := json.Unmarshal([]byte(`"heavy"`), &n); err == nil {
		t.Fatalf("expected error for non numeric string")
	}
	if err := json.Unmarshal([]byte(`true`), &n); err == nil {
		t.Fatalf("expected error for boolean")
	}
}

func TestNumberFloat64HandlesNil(t *testing.T) {
	var missing *Number
	if missing.Float64() != nil {
		t.Fatalf("expected nil for nil number")
	}
	present := Number(12.5)
	if got := present.Float64(); got == nil || *got != 12.5 {
		t.Fatalf("unexpected float: %v", got)
	}
}
