// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lunisolar provides support for working with Chinese calendar
// dates. This covers the solar (Gregorian) calendar as written in
// Chinese: dates of the form 二〇二一年十月十五日 and their numeric
// yyyy-mm-dd equivalents.
package lunisolar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrOutOfRange indicates a year outside the supported range 0-65535.
	ErrOutOfRange = errors.New("solar date out of range")
	// ErrIncorrectYear indicates a malformed or missing solar year.
	ErrIncorrectYear = errors.New("incorrect solar year")
	// ErrIncorrectMonth indicates a malformed or out of range solar month.
	ErrIncorrectMonth = errors.New("incorrect solar month")
	// ErrIncorrectDay indicates a malformed solar day or one that does
	// not exist in its month.
	ErrIncorrectDay = errors.New("incorrect solar day")
)

// SolarDate represents a date in the solar calendar as a packed year,
// month and day. The value is immutable and comparable; the ordering of
// two SolarDates is chronological. The zero value is not a valid date.
type SolarDate uint32

// NewSolarDate creates a new SolarDate from the specified year, month
// and day. The year must be in the range 0-65535, the month 1-12 and
// the day must exist in that month, taking leap years into account.
// Any invalid day reports ErrIncorrectDay, including one outside 1-31.
func NewSolarDate(year, month, day int) (SolarDate, error) {
	if year < 0 || year > 0xffff {
		return 0, fmt.Errorf("year %d outside 0-65535: %w", year, ErrOutOfRange)
	}
	m, err := NewSolarMonth(month)
	if err != nil {
		return 0, err
	}
	d, err := NewSolarDay(day)
	if err != nil {
		return 0, err
	}
	if int(d) > DaysInSolarMonth(SolarYear(year), m) {
		return 0, fmt.Errorf("no day %d in %04d-%02d: %w", day, year, month, ErrIncorrectDay)
	}
	return SolarDate(uint32(year)<<16 | uint32(m)<<8 | uint32(d)), nil
}

// SolarDateFromTime returns the SolarDate for the instant t, normalized
// to UTC.
func SolarDateFromTime(t time.Time) (SolarDate, error) {
	year, month, day := t.UTC().Date()
	if year < 0 || year > 0xffff {
		return 0, fmt.Errorf("year %d outside 0-65535: %w", year, ErrOutOfRange)
	}
	// month and day from time.Time are calendrically valid.
	return SolarDate(uint32(year)<<16 | uint32(month)<<8 | uint32(day)), nil
}

var nowFunc = time.Now

// Today returns the current date in UTC.
func Today() SolarDate {
	sd, _ := SolarDateFromTime(nowFunc())
	return sd
}

// UTC returns the time.Time for midnight UTC on the date.
func (sd SolarDate) UTC() time.Time {
	return time.Date(int(sd.Year()), time.Month(sd.Month()), int(sd.Day()), 0, 0, 0, 0, time.UTC)
}

// Year returns the year component of the date.
func (sd SolarDate) Year() SolarYear {
	return SolarYear(sd >> 16)
}

// Month returns the month component of the date.
func (sd SolarDate) Month() SolarMonth {
	return SolarMonth(sd >> 8 & 0xff)
}

// Day returns the day component of the date.
func (sd SolarDate) Day() SolarDay {
	return SolarDay(sd & 0xff)
}

// IsValid returns true if the date has a month in 1-12 and a day that
// exists in that month for its year. The zero value is invalid.
func (sd SolarDate) IsValid() bool {
	m, d := sd.Month(), sd.Day()
	return m >= 1 && m <= 12 && d >= 1 && int(d) <= DaysInSolarMonth(sd.Year(), m)
}

const (
	yearUnit       = "年"
	monthUnit      = "月"
	dayUnit        = "日"
	fullWidthSpace = "　"

	// The unit markers and the full-width space are all 3 bytes in UTF-8.
	unitLen = len(yearUnit)
)

// indexUnit returns the byte index of the first occurrence of unit in s,
// falling back to the full-width space, or -1 if neither is present.
func indexUnit(s, unit string) int {
	if i := strings.Index(s, unit); i >= 0 {
		return i
	}
	return strings.Index(s, fullWidthSpace)
}

// ParseSolarDate parses a Chinese textual date of the form
// <year>年<month>月<day>日, eg. 二〇二一年十月十五日 or 2021年10月15日.
// A full-width space may stand in for any of the unit markers and the
// trailing 日 may be omitted.
func ParseSolarDate(val string) (SolarDate, error) {
	i := indexUnit(val, yearUnit)
	if i < 0 {
		return 0, fmt.Errorf("no year marker in %q: %w", val, ErrIncorrectYear)
	}
	var year SolarYear
	if err := year.Parse(strings.TrimSpace(val[:i])); err != nil {
		return 0, err
	}
	val = val[i+unitLen:]
	i = indexUnit(val, monthUnit)
	if i < 0 {
		return 0, fmt.Errorf("no month marker in %q: %w", val, ErrIncorrectMonth)
	}
	var month SolarMonth
	if err := month.Parse(strings.TrimSpace(val[:i+unitLen])); err != nil {
		return 0, err
	}
	var day SolarDay
	if err := day.Parse(strings.TrimSpace(val[i+unitLen:])); err != nil {
		return 0, err
	}
	return NewSolarDate(int(year), int(month), int(day))
}

// ParseNumericSolarDate parses a numeric date of the form yyyy-mm-dd.
// The zero padding of each component is optional.
func ParseNumericSolarDate(val string) (SolarDate, error) {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid date %q, expected format '2006-01-02': %w", val, ErrIncorrectYear)
	}
	year, err := ParseNumericSolarYear(parts[0])
	if err != nil {
		return 0, err
	}
	month, err := ParseNumericSolarMonth(parts[1])
	if err != nil {
		return 0, err
	}
	day, err := ParseNumericSolarDay(parts[2])
	if err != nil {
		return 0, err
	}
	return NewSolarDate(int(year), int(month), int(day))
}

// Parse parses a date in either numeric or Chinese textual format.
func (sd *SolarDate) Parse(val string) error {
	if d, err := ParseNumericSolarDate(val); err == nil {
		*sd = d
		return nil
	}
	d, err := ParseSolarDate(val)
	if err != nil {
		return err
	}
	*sd = d
	return nil
}

// ChineseString returns the Chinese textual form of the date,
// eg. 二〇二一年十月十五日.
func (sd SolarDate) ChineseString() string {
	buf := make([]byte, 0, 36)
	buf = sd.Year().AppendChinese(buf)
	buf = append(buf, yearUnit...)
	buf = append(buf, sd.Month().String()...)
	buf = append(buf, sd.Day().String()...)
	buf = append(buf, dayUnit...)
	return string(buf)
}

// NumericString returns the date in zero padded yyyy-mm-dd form.
func (sd SolarDate) NumericString() string {
	return fmt.Sprintf("%04d-%02d-%02d", int(sd.Year()), int(sd.Month()), int(sd.Day()))
}

func (sd SolarDate) String() string {
	return sd.ChineseString()
}
