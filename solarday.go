// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lunisolar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/isgasho/chinese-lunisolar-calendar/chinesenum"
)

// SolarDay represents a day of a month in the solar calendar, in the
// range 1-31. Whether a given day exists in a particular month is the
// concern of SolarDate, not of SolarDay itself.
type SolarDay uint8

// NewSolarDay creates a new SolarDay from a day number in the range 1-31.
func NewSolarDay(day int) (SolarDay, error) {
	if day < 1 || day > 31 {
		return 0, fmt.Errorf("invalid solar day: %d: %w", day, ErrIncorrectDay)
	}
	return SolarDay(day), nil
}

// ParseNumericSolarDay parses a 1 or 2 digit numeric day in the range
// 1-31, with an optional 日 suffix.
func ParseNumericSolarDay(val string) (SolarDay, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(val, dayUnit))
	if err != nil {
		return 0, fmt.Errorf("invalid solar day: %q: %w", val, ErrIncorrectDay)
	}
	return NewSolarDay(n)
}

// ParseChineseSolarDay parses a Chinese cardinal day such as 十五, with
// the 日 suffix optional.
func ParseChineseSolarDay(val string) (SolarDay, error) {
	n, err := chinesenum.ParseCardinal(strings.TrimSuffix(val, dayUnit))
	if err != nil {
		return 0, fmt.Errorf("invalid solar day: %q: %w", val, ErrIncorrectDay)
	}
	return NewSolarDay(n)
}

// Parse parses a day in either numeric or Chinese cardinal format.
func (d *SolarDay) Parse(val string) error {
	if n, err := ParseNumericSolarDay(val); err == nil {
		*d = n
		return nil
	}
	n, err := ParseChineseSolarDay(val)
	if err != nil {
		return err
	}
	*d = n
	return nil
}

// String returns the Chinese cardinal form of the day without a unit,
// eg. 十五 for 15. The 日 unit is written by SolarDate.
func (d SolarDay) String() string {
	if d < 1 || d > 31 {
		return fmt.Sprintf("%%!SolarDay(%d)", uint8(d))
	}
	return chinesenum.Cardinal(int(d))
}
