// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lunisolar_test

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	lunisolar "github.com/isgasho/chinese-lunisolar-calendar"
	"google.golang.org/genproto/googleapis/type/date"
)

func TestSolarDateFromTime(t *testing.T) {
	for _, tc := range []struct {
		when             time.Time
		year, month, day int
	}{
		{time.Date(2021, 10, 15, 12, 0, 0, 0, time.UTC), 2021, 10, 15},
		{time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC), 0, 1, 1},
		{time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), 2024, 2, 29},
		// 01:00 on the 16th in UTC+8 is still the 15th in UTC.
		{time.Date(2021, 10, 16, 1, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)), 2021, 10, 15},
		{time.Date(2021, 10, 15, 23, 0, 0, 0, time.FixedZone("UTC-8", -8*3600)), 2021, 10, 16},
	} {
		sd, err := lunisolar.SolarDateFromTime(tc.when)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.when, err)
			continue
		}
		if got, want := sd, newSolarDate(t, tc.year, tc.month, tc.day); got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}

	for _, tc := range []time.Time{
		time.Date(-1, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(65536, 6, 1, 0, 0, 0, 0, time.UTC),
	} {
		_, err := lunisolar.SolarDateFromTime(tc)
		if err == nil {
			t.Errorf("failed to return an error: %v", tc)
			continue
		}
		if !errors.Is(err, lunisolar.ErrOutOfRange) {
			t.Errorf("%v: got %v, want %v", tc, err, lunisolar.ErrOutOfRange)
		}
	}
}

func TestSolarDateUTC(t *testing.T) {
	sd := newSolarDate(t, 2021, 10, 15)
	if got, want := sd.UTC(), time.Date(2021, 10, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	back, err := lunisolar.SolarDateFromTime(sd.UTC())
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := back, sd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSolarDateFromCivil(t *testing.T) {
	for _, tc := range []civil.Date{
		{Year: 2021, Month: 10, Day: 15},
		{Year: 0, Month: 1, Day: 1},
		{Year: 2000, Month: 2, Day: 29},
	} {
		sd, err := lunisolar.SolarDateFromCivil(tc)
		if err != nil {
			t.Errorf("failed: %v: %v", tc, err)
			continue
		}
		if got, want := sd.CivilDate(), tc; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []struct {
		cd  civil.Date
		err error
	}{
		{civil.Date{Year: -1, Month: 1, Day: 1}, lunisolar.ErrOutOfRange},
		{civil.Date{Year: 65536, Month: 1, Day: 1}, lunisolar.ErrOutOfRange},
		{civil.Date{Year: 2021, Month: 13, Day: 1}, lunisolar.ErrIncorrectMonth},
		{civil.Date{Year: 2021, Month: 2, Day: 30}, lunisolar.ErrIncorrectDay},
	} {
		_, err := lunisolar.SolarDateFromCivil(tc.cd)
		if err == nil {
			t.Errorf("failed to return an error: %v", tc.cd)
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%v: got %v, want %v", tc.cd, err, tc.err)
		}
	}
}

func TestSolarDateFromProto(t *testing.T) {
	sd, err := lunisolar.SolarDateFromProto(&date.Date{Year: 2021, Month: 10, Day: 15})
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := sd, newSolarDate(t, 2021, 10, 15); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sd.Proto(), (&date.Date{Year: 2021, Month: 10, Day: 15}); got.GetYear() != want.GetYear() || got.GetMonth() != want.GetMonth() || got.GetDay() != want.GetDay() {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []struct {
		pd  *date.Date
		err error
	}{
		{nil, lunisolar.ErrOutOfRange},
		{&date.Date{Year: -1, Month: 1, Day: 1}, lunisolar.ErrOutOfRange},
		// The proto type's year-only and year-and-month forms carry no
		// full date and are rejected.
		{&date.Date{Year: 2021}, lunisolar.ErrIncorrectMonth},
		{&date.Date{Year: 2021, Month: 10}, lunisolar.ErrIncorrectDay},
		{&date.Date{Year: 2021, Month: 2, Day: 30}, lunisolar.ErrIncorrectDay},
	} {
		_, err := lunisolar.SolarDateFromProto(tc.pd)
		if err == nil {
			t.Errorf("failed to return an error: %v", tc.pd)
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%v: got %v, want %v", tc.pd, err, tc.err)
		}
	}
}
