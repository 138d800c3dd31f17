// Beacongate - Vessel Tracking Records Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/beacongate

/*
Package models defines the record shapes exchanged by Beacongate.

There are two sides:

  - ExternalRecord: a positional report exactly as the upstream tracking API
    returns it (beacon reference, [lon, lat] pair, "YYYY-MM-DD_HH:MM:SS" UTC
    timestamp, heading, speed, mobile name and type).
  - InternalRecord: the simplified shape returned to Beacongate clients, with
    the timestamp shifted to UTC-5 and rendered as "YYYY/MM/DD HH:MM:SS".

TransformRecord maps one to the other. It is a pure function: the same input
always yields the same output, so repeated queries over a fixed window produce
byte-identical payloads.

RecordsResponse is the envelope every record query answers with. A failed
query never carries data.

DateRange is the upstream from/to window. It is produced by the records
package and never persisted.
*/
package models
