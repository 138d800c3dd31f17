// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	// UpstreamTimeLayout is the timestamp layout used by the upstream API,
	// both in locDate and in from/to query parameters.
	UpstreamTimeLayout = "2006-01-02_15:04:05"

	// TransmissionTimeLayout is the layout of InternalRecord.TransmissionDateTime.
	TransmissionTimeLayout = "2006/01/02 15:04:05"

	// DisplayOffset is the fixed shift applied to upstream UTC timestamps.
	// It is plain arithmetic, not a zone: no DST is applied.
	DisplayOffset = -5 * time.Hour
)

var (
	// ErrInvalidLocDate is returned when an upstream record carries a locDate
	// that cannot be parsed.
	ErrInvalidLocDate = errors.New("invalid locDate in upstream record")

	// ErrInvalidLoc is returned when an upstream record's loc is not a
	// [longitude, latitude] pair.
	ErrInvalidLoc = errors.New("invalid loc in upstream record")
)

// TransformRecord maps one upstream record to the client-facing shape.
func TransformRecord(ext *ExternalRecord) (InternalRecord, error) {
	ts, err := time.ParseInLocation(UpstreamTimeLayout, ext.LocDate, time.UTC)
	if err != nil {
		return InternalRecord{}, fmt.Errorf("%w: beacon %q locDate %q", ErrInvalidLocDate, ext.ActiveBeaconRef, ext.LocDate)
	}
	if len(ext.Loc) != 2 {
		return InternalRecord{}, fmt.Errorf("%w: beacon %q has %d coordinates", ErrInvalidLoc, ext.ActiveBeaconRef, len(ext.Loc))
	}

	return InternalRecord{
		ID:                   ext.ActiveBeaconRef,
		Longitude:            ext.Loc[0],
		Latitude:             ext.Loc[1],
		TransmissionDateTime: ts.Add(DisplayOffset).Format(TransmissionTimeLayout),
		Course:               ext.Heading,
		Speed:                ext.Speed,
		MobileName:           ext.MobileName,
		MobileTypeName:       ext.MobileTypeName,
	}, nil
}

// TransformRecords maps a batch, preserving order. The first malformed
// record aborts the batch.
func TransformRecords(ext []ExternalRecord) ([]InternalRecord, error) {
	out := make([]InternalRecord, 0, len(ext))
	for i := range ext {
		rec, err := TransformRecord(&ext[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
