// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/beacongate/internal/logging"
	"github.com/tomtom215/beacongate/internal/metrics"
	"github.com/tomtom215/beacongate/internal/models"
	"github.com/tomtom215/beacongate/internal/upstream"
)

// Operation names, used in logs and metric labels.
const (
	OpLastHour  = "last_hour"
	OpLastHours = "last_hours"
	OpAllDay    = "all_day"
	OpSelectDay = "select_day"
	OpDateRange = "date_range"
	OpByID      = "by_id"
)

var (
	// ErrInvalidHours is returned by LastHours outside [MinHours, MaxHours].
	ErrInvalidHours = fmt.Errorf("hours must be between %d and %d", MinHours, MaxHours)

	// ErrEmptyID is returned by ByID for a blank beacon reference.
	ErrEmptyID = errors.New("beacon id must not be empty")
)

// Fetcher performs one upstream positions call.
type Fetcher interface {
	FetchPositions(ctx context.Context, q upstream.Query) ([]models.ExternalRecord, error)
}

// Service plans upstream calls for each record operation, runs them in
// order and reshapes the merged result.
//
// A plan has one or two steps. Steps run sequentially; the first failure
// aborts the plan and no partial data is returned. Upstream failures are
// passed through as the *upstream.FetchError the client produced.
type Service struct {
	fetcher Fetcher
	clock   Clock
	loc     *time.Location
}

// NewService creates a Service. loc is the zone in which "today" and the
// noon split are evaluated for AllDay.
func NewService(fetcher Fetcher, clock Clock, loc *time.Location) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{fetcher: fetcher, clock: clock, loc: loc}
}

// LastHour returns positions reported in the last 3600 seconds.
func (s *Service) LastHour(ctx context.Context) (*models.RecordsResponse, error) {
	return s.run(ctx, OpLastHour, upstream.Query{Since: SinceSeconds(1)})
}

// LastHours returns positions reported in the last hours hours.
func (s *Service) LastHours(ctx context.Context, hours int) (*models.RecordsResponse, error) {
	if hours < MinHours || hours > MaxHours {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHours, hours)
	}
	return s.run(ctx, OpLastHours, upstream.Query{Since: SinceSeconds(hours)})
}

// AllDay returns today's positions so far. Up to 11:59:59.000 one full-day
// call is enough; after that the day is fetched in two halves so neither
// call reaches the upstream row ceiling.
func (s *Service) AllDay(ctx context.Context) (*models.RecordsResponse, error) {
	now := s.clock.Now().In(s.loc)

	if !isAfterSplitThreshold(now) {
		full := FullDay(now)
		return s.run(ctx, OpAllDay, upstream.Query{Range: &full})
	}

	morning, afternoon := SplitDay(now)
	return s.run(ctx, OpAllDay,
		upstream.Query{Range: &morning},
		upstream.Query{Range: &afternoon},
	)
}

// SelectDay returns the positions of a past day, always as two half-day calls.
func (s *Service) SelectDay(ctx context.Context, day time.Time) (*models.RecordsResponse, error) {
	morning, afternoon := SplitDay(day)
	return s.run(ctx, OpSelectDay,
		upstream.Query{Range: &morning},
		upstream.Query{Range: &afternoon},
	)
}

// DateRange returns the positions of a day in a single full-day call.
func (s *Service) DateRange(ctx context.Context, day time.Time) (*models.RecordsResponse, error) {
	full := FullDay(day)
	return s.run(ctx, OpDateRange, upstream.Query{Range: &full})
}

// ByID returns one beacon's positions over the last calendar month.
func (s *Service) ByID(ctx context.Context, id string) (*models.RecordsResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	lookback := DefaultLookback(s.clock.Now())
	return s.run(ctx, OpByID, upstream.Query{Range: &lookback, BeaconRef: id})
}

// run executes the plan steps in order and transforms the concatenated result.
func (s *Service) run(ctx context.Context, op string, steps ...upstream.Query) (*models.RecordsResponse, error) {
	ctx = logging.ContextWithOperation(ctx, op)
	log := logging.Ctx(ctx)

	if len(steps) > 1 {
		metrics.RecordSplitFetch(op)
		log.Debug().Int("steps", len(steps)).Msg("Splitting day query")
	}

	var raw []models.ExternalRecord
	for i, q := range steps {
		batch, err := s.fetcher.FetchPositions(ctx, q)
		if err != nil {
			if upstream.IsRowLimit(err) {
				metrics.RecordRowLimitHit(op)
			}
			log.Warn().Err(err).Int("step", i+1).Int("steps", len(steps)).Msg("Records fetch aborted")
			return nil, err
		}
		raw = append(raw, batch...)
	}

	out, err := models.TransformRecords(raw)
	if err != nil {
		log.Error().Err(err).Int("records", len(raw)).Msg("Upstream returned a malformed record")
		return nil, err
	}

	log.Debug().Int("records", len(out)).Msg("Records served")
	return models.NewRecordsResponse(out), nil
}
