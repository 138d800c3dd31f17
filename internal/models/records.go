// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

package models

// ExternalRecord is a single positional report from the upstream tracking API.
//
// Loc is [longitude, latitude] and must hold exactly two values. LocDate is "YYYY-MM-DD_HH:MM:SS" and implicitly UTC.
// Heading is in compass degrees (0-360); Speed is non-negative.
type ExternalRecord struct {
	ActiveBeaconRef string    `json:"activeBeaconRef"`
	Loc             []float64 `json:"loc"`
	LocDate         string    `json:"locDate"`
	Heading         float64   `json:"heading"`
	Speed           float64   `json:"speed"`
	MobileName      string    `json:"mobileName"`
	MobileTypeName  string    `json:"mobileTypeName"`
}

// ExternalRecordsResponse is the upstream success body.
// Data is a pointer so a body without the "data" key can be told apart
// from an empty result.
type ExternalRecordsResponse struct {
	Data *[]ExternalRecord `json:"data"`
}

// InternalRecord is the record shape served to Beacongate clients.
type InternalRecord struct {
	ID                   string  `json:"id"`
	Longitude            float64 `json:"longitude"`
	Latitude             float64 `json:"latitude"`
	TransmissionDateTime string  `json:"transmissionDateTime"` // YYYY/MM/DD HH:MM:SS, UTC-5
	Course               float64 `json:"course"`
	Speed                float64 `json:"speed"`
	MobileName           string  `json:"mobileName"`
	MobileTypeName       string  `json:"mobileTypeName"`
}

// RecordsResponse is the envelope for every record query.
// Success == false implies Data is empty and Error is set.
type RecordsResponse struct {
	Success bool             `json:"success"`
	Data    []InternalRecord `json:"data"`
	Error   string           `json:"error,omitempty"`
}

// NewRecordsResponse wraps transformed records in a successful envelope.
// A nil slice is normalized so the payload always carries "data": [].
func NewRecordsResponse(records []InternalRecord) *RecordsResponse {
	if records == nil {
		records = []InternalRecord{}
	}
	return &RecordsResponse{
		Success: true,
		Data:    records,
	}
}

// DateRange is an upstream query window in "YYYY-MM-DD_HH:MM:SS" form.
// No timezone suffix is sent; the upstream treats both ends as its local time.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
