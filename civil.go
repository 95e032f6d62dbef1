// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lunisolar

import (
	"time"

	"cloud.google.com/go/civil"
)

// SolarDateFromCivil returns the SolarDate for the given civil date.
// civil.Date is an open struct and carries no validity guarantee, so
// the date is fully validated here.
func SolarDateFromCivil(cd civil.Date) (SolarDate, error) {
	return NewSolarDate(cd.Year, int(cd.Month), cd.Day)
}

// CivilDate returns the civil.Date equivalent of the date.
func (sd SolarDate) CivilDate() civil.Date {
	return civil.Date{
		Year:  int(sd.Year()),
		Month: time.Month(sd.Month()),
		Day:   int(sd.Day()),
	}
}
