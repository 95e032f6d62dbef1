// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chinesenum provides rendering and parsing of Chinese numerals
// as used by the solar calendar types: positional digit strings for years
// (2021 is 二〇二一) and cardinal numbers for months and days (15 is 十五).
package chinesenum

import (
	"errors"
	"fmt"
	"slices"
)

var (
	digits     = []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	digitRunes = []rune("〇一二三四五六七八九")
)

// ErrNumeral is returned, wrapped, for any input that is not a
// well formed Chinese numeral.
var ErrNumeral = errors.New("invalid chinese numeral")

// AppendDigits appends the positional Chinese digit form of n to dst
// and returns the extended buffer. Each decimal digit of n is written
// in turn, so 2021 appends 二〇二一 and 5 appends 五.
func AppendDigits(dst []byte, n uint16) []byte {
	if n == 0 {
		return append(dst, digits[0]...)
	}
	var buf [5]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n % 10)
		n /= 10
	}
	for _, d := range buf[i:] {
		dst = append(dst, digits[d]...)
	}
	return dst
}

// Digits returns the positional Chinese digit form of n.
func Digits(n uint16) string {
	return string(AppendDigits(nil, n))
}

// ParseDigits parses a positional Chinese digit string as produced by
// Digits. 零 is accepted for zero in addition to 〇.
func ParseDigits(s string) (uint16, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty value: %w", ErrNumeral)
	}
	var n uint32
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok {
			return 0, fmt.Errorf("invalid digit %q in %q: %w", r, s, ErrNumeral)
		}
		n = n*10 + uint32(d)
		if n > 0xffff {
			return 0, fmt.Errorf("value out of range: %q: %w", s, ErrNumeral)
		}
	}
	return uint16(n), nil
}

func digitValue(r rune) (int, bool) {
	if r == '零' {
		return 0, true
	}
	if i := slices.Index(digitRunes, r); i >= 0 {
		return i, true
	}
	return 0, false
}

// AppendCardinal appends the Chinese cardinal form of n, which must be
// in the range 1-99, to dst and returns the extended buffer. 10 appends
// 十, 15 appends 十五 and 21 appends 二十一.
func AppendCardinal(dst []byte, n int) []byte {
	if n < 1 || n > 99 {
		return append(dst, fmt.Sprintf("%%!Cardinal(%d)", n)...)
	}
	if n >= 20 {
		dst = append(dst, digits[n/10]...)
	}
	if n >= 10 {
		dst = append(dst, "十"...)
	}
	if n%10 != 0 {
		dst = append(dst, digits[n%10]...)
	}
	return dst
}

// Cardinal returns the Chinese cardinal form of n, which must be in the
// range 1-99.
func Cardinal(n int) string {
	return string(AppendCardinal(nil, n))
}

// ParseCardinal parses a Chinese cardinal number in the range 1-99 as
// produced by Cardinal: a lone digit (五), ten with an optional units
// digit (十, 十五), or a tens digit followed by 十 and an optional units
// digit (二十, 二十一).
func ParseCardinal(s string) (int, error) {
	runes := []rune(s)
	ten := slices.Index(runes, '十')
	if ten == -1 {
		if len(runes) != 1 {
			return 0, fmt.Errorf("invalid cardinal %q: %w", s, ErrNumeral)
		}
		d, ok := digitValue(runes[0])
		if !ok || d == 0 {
			return 0, fmt.Errorf("invalid digit %q: %w", s, ErrNumeral)
		}
		return d, nil
	}
	tens := 1
	if ten > 0 {
		d, ok := digitValue(runes[0])
		if ten != 1 || !ok || d == 0 {
			return 0, fmt.Errorf("invalid tens digit in %q: %w", s, ErrNumeral)
		}
		tens = d
	}
	units := 0
	if rest := runes[ten+1:]; len(rest) > 0 {
		d, ok := digitValue(rest[0])
		if len(rest) != 1 || !ok || d == 0 {
			return 0, fmt.Errorf("invalid units digit in %q: %w", s, ErrNumeral)
		}
		units = d
	}
	return tens*10 + units, nil
}
