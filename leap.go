// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lunisolar

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int // days in each month of a leap year
)

func daysInMonthInit(year SolarYear, month int) int {
	switch month {
	case 2:
		return DaysInFebruary(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthInit(2024, i+1)
	}
}

// DaysInSolarMonth returns the number of days in the given month for
// the given year, taking leap years into account.
func DaysInSolarMonth(year SolarYear, month SolarMonth) int {
	if IsLeapSolarYear(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// IsLeapSolarYear returns true if the given year is a leap year.
func IsLeapSolarYear(year SolarYear) bool {
	y := int(year)
	return y%4 == 0 && y%100 != 0 || y%400 == 0
}

// DaysInFebruary returns the number of days in February for the given year.
func DaysInFebruary(year SolarYear) int {
	if IsLeapSolarYear(year) {
		return 29
	}
	return 28
}
