// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lunisolar

import (
	"fmt"
	"strconv"

	"github.com/isgasho/chinese-lunisolar-calendar/chinesenum"
)

// SolarYear represents a year in the solar calendar. Every value in
// 0-65535 is a valid year.
type SolarYear uint16

// ParseNumericSolarYear parses an Arabic numeral year in the range
// 0-65535, eg. "2021".
func ParseNumericSolarYear(val string) (SolarYear, error) {
	n, err := strconv.ParseUint(val, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid solar year: %q: %w", val, ErrIncorrectYear)
	}
	return SolarYear(n), nil
}

// ParseChineseSolarYear parses a positional Chinese numeral year,
// eg. "二〇二一".
func ParseChineseSolarYear(val string) (SolarYear, error) {
	n, err := chinesenum.ParseDigits(val)
	if err != nil {
		return 0, fmt.Errorf("invalid solar year: %q: %w", val, ErrIncorrectYear)
	}
	return SolarYear(n), nil
}

// Parse parses a year in either Arabic or Chinese numeral format.
func (y *SolarYear) Parse(val string) error {
	if n, err := ParseNumericSolarYear(val); err == nil {
		*y = n
		return nil
	}
	n, err := ParseChineseSolarYear(val)
	if err != nil {
		return err
	}
	*y = n
	return nil
}

// AppendChinese appends the positional Chinese numeral form of the year
// to dst and returns the extended buffer.
func (y SolarYear) AppendChinese(dst []byte) []byte {
	return chinesenum.AppendDigits(dst, uint16(y))
}

// Chinese returns the positional Chinese numeral form of the year,
// eg. 二〇二一 for 2021.
func (y SolarYear) Chinese() string {
	return chinesenum.Digits(uint16(y))
}

func (y SolarYear) String() string {
	return y.Chinese()
}
