package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
)

var ErrInvalidMoney = errs.Define("amount must be a non-negative decimal with at most two fraction digits", errs.ErrInvalidInput)

// Money is an amount in minor units. Decimal strings are parsed exactly so
// that equality checks never depend on float rounding.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrInvalidMoney
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney accepts "300", "300.5" and "300.50".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidMoney
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || !isDigits(whole) {
		return Money{}, ErrInvalidMoney
	}
	if hasFrac && (frac == "" || len(frac) > 2 || !isDigits(frac)) {
		return Money{}, ErrInvalidMoney
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > (1<<62)/100 {
		return Money{}, ErrInvalidMoney
	}
	minor, _ := strconv.ParseInt(frac, 10, 64)
	return Money{cents: units*100 + minor}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
