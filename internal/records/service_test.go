// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package records

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/beacongate/internal/models"
	"github.com/tomtom215/beacongate/internal/upstream"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// fakeFetcher records every query and answers from a per-call script.
type fakeFetcher struct {
	mu      sync.Mutex
	queries []upstream.Query
	results []fakeResult
}

type fakeResult struct {
	data []models.ExternalRecord
	err  error
}

func (f *fakeFetcher) FetchPositions(_ context.Context, q upstream.Query) ([]models.ExternalRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.queries)
	f.queries = append(f.queries, q)
	if i < len(f.results) {
		return f.results[i].data, f.results[i].err
	}
	return []models.ExternalRecord{}, nil
}

func (f *fakeFetcher) calls() []upstream.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]upstream.Query(nil), f.queries...)
}

func ext(id, locDate string) models.ExternalRecord {
	return models.ExternalRecord{
		ActiveBeaconRef: id,
		Loc:             []float64{-77.1, -12.0},
		LocDate:         locDate,
		Heading:         90,
		Speed:           5,
		MobileName:      "VESSEL " + id,
		MobileTypeName:  "Fishing vessel",
	}
}

func newTestService(f Fetcher, now time.Time) *Service {
	return NewService(f, fixedClock{t: now}, time.UTC)
}

func TestService_LastHour(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{results: []fakeResult{{data: []models.ExternalRecord{ext("A", "2024-03-15_14:30:00")}}}}
	svc := newTestService(f, time.Now())

	resp, err := svc.LastHour(context.Background())
	if err != nil {
		t.Fatalf("LastHour() error = %v", err)
	}
	if !resp.Success || len(resp.Data) != 1 {
		t.Fatalf("LastHour() = %+v, want one record", resp)
	}
	if got := resp.Data[0].TransmissionDateTime; got != "2024/03/15 09:30:00" {
		t.Errorf("TransmissionDateTime = %q, want %q", got, "2024/03/15 09:30:00")
	}

	calls := f.calls()
	if len(calls) != 1 || calls[0].Since != 3600 || calls[0].Range != nil {
		t.Errorf("queries = %+v, want single since=3600", calls)
	}
}

func TestService_LastHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hours     int
		wantErr   bool
		wantSince int
	}{
		{hours: 1, wantErr: true},
		{hours: 2, wantSince: 7200},
		{hours: 12, wantSince: 43200},
		{hours: 24, wantSince: 86400},
		{hours: 25, wantErr: true},
		{hours: 0, wantErr: true},
		{hours: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(time.Duration(tt.hours*int(time.Hour)).String(), func(t *testing.T) {
			t.Parallel()

			f := &fakeFetcher{}
			svc := newTestService(f, time.Now())
			_, err := svc.LastHours(context.Background(), tt.hours)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHours) {
					t.Errorf("LastHours(%d) error = %v, want ErrInvalidHours", tt.hours, err)
				}
				if n := len(f.calls()); n != 0 {
					t.Errorf("LastHours(%d) made %d upstream calls, want 0", tt.hours, n)
				}
				return
			}
			if err != nil {
				t.Fatalf("LastHours(%d) error = %v", tt.hours, err)
			}
			calls := f.calls()
			if len(calls) != 1 || calls[0].Since != tt.wantSince {
				t.Errorf("LastHours(%d) queries = %+v, want since=%d", tt.hours, calls, tt.wantSince)
			}
		})
	}
}

func TestService_AllDay_SplitThreshold(t *testing.T) {
	t.Parallel()

	day := func(h, m, s, ns int) time.Time {
		return time.Date(2024, 3, 15, h, m, s, ns, time.UTC)
	}

	tests := []struct {
		name      string
		now       time.Time
		wantCalls int
	}{
		{"just after midnight", day(0, 0, 1, 0), 1},
		{"mid morning", day(9, 15, 0, 0), 1},
		{"exactly 11:59:59.000", day(11, 59, 59, 0), 1},
		{"11:59:59.001", day(11, 59, 59, int(time.Millisecond)), 2},
		{"noon", day(12, 0, 0, 0), 2},
		{"late evening", day(23, 59, 59, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &fakeFetcher{}
			svc := newTestService(f, tt.now)
			if _, err := svc.AllDay(context.Background()); err != nil {
				t.Fatalf("AllDay() error = %v", err)
			}

			calls := f.calls()
			if len(calls) != tt.wantCalls {
				t.Fatalf("AllDay() made %d calls, want %d", len(calls), tt.wantCalls)
			}

			if tt.wantCalls == 1 {
				want := models.DateRange{From: "2024-03-15_00:00:00", To: "2024-03-15_23:59:59"}
				if calls[0].Range == nil || *calls[0].Range != want {
					t.Errorf("range = %+v, want %+v", calls[0].Range, want)
				}
				return
			}

			wantMorning := models.DateRange{From: "2024-03-15_00:00:00", To: "2024-03-15_11:59:59"}
			wantAfternoon := models.DateRange{From: "2024-03-15_12:00:00", To: "2024-03-15_23:59:59"}
			if calls[0].Range == nil || *calls[0].Range != wantMorning {
				t.Errorf("first range = %+v, want %+v", calls[0].Range, wantMorning)
			}
			if calls[1].Range == nil || *calls[1].Range != wantAfternoon {
				t.Errorf("second range = %+v, want %+v", calls[1].Range, wantAfternoon)
			}
		})
	}
}

func TestService_AllDay_UsesConfiguredLocation(t *testing.T) {
	t.Parallel()

	// 16:30 UTC is 11:30 at UTC-5, before the split in that zone
	loc := time.FixedZone("UTC-5", -5*3600)
	f := &fakeFetcher{}
	svc := NewService(f, fixedClock{t: time.Date(2024, 3, 15, 16, 30, 0, 0, time.UTC)}, loc)

	if _, err := svc.AllDay(context.Background()); err != nil {
		t.Fatalf("AllDay() error = %v", err)
	}
	if n := len(f.calls()); n != 1 {
		t.Errorf("AllDay() made %d calls, want 1", n)
	}
}

func TestService_AllDay_DayRollsWithLocation(t *testing.T) {
	t.Parallel()

	// 02:00 UTC on the 16th is still the 15th at UTC-5
	loc := time.FixedZone("UTC-5", -5*3600)
	f := &fakeFetcher{}
	svc := NewService(f, fixedClock{t: time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC)}, loc)

	if _, err := svc.AllDay(context.Background()); err != nil {
		t.Fatalf("AllDay() error = %v", err)
	}
	calls := f.calls()
	if len(calls) != 2 {
		t.Fatalf("AllDay() made %d calls, want 2", len(calls))
	}
	if got := calls[0].Range.From; got != "2024-03-15_00:00:00" {
		t.Errorf("first range from = %q, want 2024-03-15_00:00:00", got)
	}
}

func TestService_AllDay_ConcatenatesInOrder(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{results: []fakeResult{
		{data: []models.ExternalRecord{ext("M1", "2024-03-15_08:00:00"), ext("M2", "2024-03-15_09:00:00")}},
		{data: []models.ExternalRecord{ext("A1", "2024-03-15_13:00:00")}},
	}}
	svc := newTestService(f, time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC))

	resp, err := svc.AllDay(context.Background())
	if err != nil {
		t.Fatalf("AllDay() error = %v", err)
	}

	var ids []string
	for _, r := range resp.Data {
		ids = append(ids, r.ID)
	}
	want := []string{"M1", "M2", "A1"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}
}

func TestService_SplitShortCircuits(t *testing.T) {
	t.Parallel()

	rowLimit := upstream.RowLimit(upstream.DefaultMaxRows)

	t.Run("first half fails", func(t *testing.T) {
		t.Parallel()

		f := &fakeFetcher{results: []fakeResult{{err: rowLimit}}}
		svc := newTestService(f, time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC))

		resp, err := svc.AllDay(context.Background())
		if resp != nil {
			t.Errorf("AllDay() resp = %+v, want nil", resp)
		}
		if !upstream.IsRowLimit(err) {
			t.Errorf("AllDay() error = %v, want row limit", err)
		}
		if n := len(f.calls()); n != 1 {
			t.Errorf("AllDay() made %d calls, want 1", n)
		}
	})

	t.Run("second half fails", func(t *testing.T) {
		t.Parallel()

		netErr := upstream.Network("connection refused", errors.New("dial tcp"))
		f := &fakeFetcher{results: []fakeResult{
			{data: []models.ExternalRecord{ext("M1", "2024-03-15_08:00:00")}},
			{err: netErr},
		}}
		svc := newTestService(f, time.Now())

		resp, err := svc.SelectDay(context.Background(), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
		if resp != nil {
			t.Errorf("SelectDay() resp = %+v, want nil (no partial data)", resp)
		}
		fe, ok := upstream.AsFetchError(err)
		if !ok || fe.Kind != upstream.KindNetwork {
			t.Errorf("SelectDay() error = %v, want network FetchError", err)
		}
	})
}

func TestService_SelectDay(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{}
	svc := newTestService(f, time.Now())

	day, err := ParseDay("29-02-2024")
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	if _, err := svc.SelectDay(context.Background(), day); err != nil {
		t.Fatalf("SelectDay() error = %v", err)
	}

	calls := f.calls()
	if len(calls) != 2 {
		t.Fatalf("SelectDay() made %d calls, want 2", len(calls))
	}
	want := []models.DateRange{
		{From: "2024-02-29_00:00:00", To: "2024-02-29_11:59:59"},
		{From: "2024-02-29_12:00:00", To: "2024-02-29_23:59:59"},
	}
	for i := range want {
		if calls[i].Range == nil || *calls[i].Range != want[i] {
			t.Errorf("call %d range = %+v, want %+v", i, calls[i].Range, want[i])
		}
	}
}

func TestService_DateRange(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{}
	svc := newTestService(f, time.Now())

	day, err := ParseDay("01-01-2024")
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	resp, err := svc.DateRange(context.Background(), day)
	if err != nil {
		t.Fatalf("DateRange() error = %v", err)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("DateRange() data = %v, want empty non-nil slice", resp.Data)
	}

	calls := f.calls()
	want := models.DateRange{From: "2024-01-01_00:00:00", To: "2024-01-01_23:59:59"}
	if len(calls) != 1 || calls[0].Range == nil || *calls[0].Range != want {
		t.Errorf("DateRange() queries = %+v, want single %+v", calls, want)
	}
}

func TestService_ByID(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{}
	now := time.Date(2024, 3, 15, 10, 20, 30, 0, time.FixedZone("UTC-5", -5*3600))
	svc := newTestService(f, now)

	if _, err := svc.ByID(context.Background(), "BCN-7"); err != nil {
		t.Fatalf("ByID() error = %v", err)
	}

	calls := f.calls()
	if len(calls) != 1 {
		t.Fatalf("ByID() made %d calls, want 1", len(calls))
	}
	q := calls[0]
	if q.BeaconRef != "BCN-7" {
		t.Errorf("BeaconRef = %q, want BCN-7", q.BeaconRef)
	}
	want := models.DateRange{From: "2024-02-15_15:20:30", To: "2024-03-15_15:20:30"}
	if q.Range == nil || *q.Range != want {
		t.Errorf("range = %+v, want %+v", q.Range, want)
	}
}

func TestService_ByID_Empty(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{}
	svc := newTestService(f, time.Now())

	for _, id := range []string{"", "   "} {
		if _, err := svc.ByID(context.Background(), id); !errors.Is(err, ErrEmptyID) {
			t.Errorf("ByID(%q) error = %v, want ErrEmptyID", id, err)
		}
	}
	if n := len(f.calls()); n != 0 {
		t.Errorf("ByID() made %d calls, want 0", n)
	}
}

func TestService_TransformFailure(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{results: []fakeResult{{data: []models.ExternalRecord{
		ext("A", "2024-03-15_14:30:00"),
		ext("B", "not a date"),
	}}}}
	svc := newTestService(f, time.Now())

	resp, err := svc.LastHour(context.Background())
	if resp != nil {
		t.Errorf("LastHour() resp = %+v, want nil", resp)
	}
	if !errors.Is(err, models.ErrInvalidLocDate) {
		t.Errorf("LastHour() error = %v, want ErrInvalidLocDate", err)
	}
}
