// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lunisolar

import (
	"fmt"

	"google.golang.org/genproto/googleapis/type/date"
)

// SolarDateFromProto returns the SolarDate for the given google.type.Date
// message. The message must carry a full date: a nil message reports
// ErrOutOfRange and the year-only or year-and-month forms that the proto
// type permits report ErrIncorrectMonth or ErrIncorrectDay.
func SolarDateFromProto(pd *date.Date) (SolarDate, error) {
	if pd == nil {
		return 0, fmt.Errorf("nil date message: %w", ErrOutOfRange)
	}
	return NewSolarDate(int(pd.GetYear()), int(pd.GetMonth()), int(pd.GetDay()))
}

// Proto returns the date as a google.type.Date message.
func (sd SolarDate) Proto() *date.Date {
	return &date.Date{
		Year:  int32(sd.Year()),
		Month: int32(sd.Month()),
		Day:   int32(sd.Day()),
	}
}
