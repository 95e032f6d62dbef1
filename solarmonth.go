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

// SolarMonth represents a month in the solar calendar, in the range 1-12.
type SolarMonth uint8

// NewSolarMonth creates a new SolarMonth from a month number in the
// range 1-12.
func NewSolarMonth(month int) (SolarMonth, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid solar month: %d: %w", month, ErrIncorrectMonth)
	}
	return SolarMonth(month), nil
}

// ParseNumericSolarMonth parses a 1 or 2 digit numeric month in the
// range 1-12, with an optional 月 suffix.
func ParseNumericSolarMonth(val string) (SolarMonth, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(val, monthUnit))
	if err != nil {
		return 0, fmt.Errorf("invalid solar month: %q: %w", val, ErrIncorrectMonth)
	}
	return NewSolarMonth(n)
}

// ParseChineseSolarMonth parses a Chinese cardinal month such as 十月
// or 十, with the 月 suffix optional.
func ParseChineseSolarMonth(val string) (SolarMonth, error) {
	n, err := chinesenum.ParseCardinal(strings.TrimSuffix(val, monthUnit))
	if err != nil {
		return 0, fmt.Errorf("invalid solar month: %q: %w", val, ErrIncorrectMonth)
	}
	return NewSolarMonth(n)
}

// Parse parses a month in either numeric or Chinese cardinal format.
func (m *SolarMonth) Parse(val string) error {
	if n, err := ParseNumericSolarMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseChineseSolarMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// String returns the Chinese display form of the month with its unit,
// eg. 十月 for October.
func (m SolarMonth) String() string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("%%!SolarMonth(%d)", uint8(m))
	}
	return chinesenum.Cardinal(int(m)) + monthUnit
}
