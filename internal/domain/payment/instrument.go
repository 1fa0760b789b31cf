package payment

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const maxHolderLength = 100

// Instrument is a validated card. Only the summary outlives the request; the
// full number and CVV are never persisted.
type Instrument struct {
	number string
	holder string
	month  int
	year   int
	cvv    string
}

// CardSummary is what gets stored alongside a payment.
type CardSummary struct {
	Last4  string
	Brand  Brand
	Holder string
	Expiry string
}

func NewInstrument(number, holder, expiry, cvv string, today time.Time) (Instrument, error) {
	digits := normalizeNumber(number)
	if len(digits) < 12 || len(digits) > 19 || !isDigits(digits) || !Luhn(digits) {
		return Instrument{}, ErrCardNumber
	}

	holder = strings.TrimSpace(holder)
	if holder == "" || utf8.RuneCountInString(holder) > maxHolderLength {
		return Instrument{}, ErrCardHolder
	}

	month, year, err := parseExpiry(expiry)
	if err != nil {
		return Instrument{}, err
	}
	// valid through the last day of the expiry month
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	y, m, d := today.Date()
	if !time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Before(firstOfNext) {
		return Instrument{}, ErrCardExpired
	}

	cvv = strings.TrimSpace(cvv)
	if (len(cvv) != 3 && len(cvv) != 4) || !isDigits(cvv) {
		return Instrument{}, ErrCardCVV
	}

	return Instrument{number: digits, holder: holder, month: month, year: year, cvv: cvv}, nil
}

// Luhn validates digits with the mod-10 checksum. The input must be digits only.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

func (i Instrument) Last4() string {
	return i.number[len(i.number)-4:]
}


func (i Instrument) Brand() Brand {
	n := i.number
	switch {
	case strings.HasPrefix(n, "4"):
		return BrandVisa
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return BrandAmex
	}
	if len(n) >= 4 {
		p2, _ := strconv.Atoi(n[:2])
		p4, _ := strconv.Atoi(n[:4])
		if (p2 >= 51 && p2 <= 55) || (p4 >= 2221 && p4 <= 2720) {
			return BrandMastercard
		}
	}
	return BrandUnknown
}

func (i Instrument) Summary() CardSummary {
	return CardSummary{
		Last4:  i.Last4(),
		Brand:  i.Brand(),
		Holder: i.holder,
		Expiry: formatExpiry(i.month, i.year),
	}
}

func normalizeNumber(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

func parseExpiry(s string) (int, int, error) {
	mm, yy, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || len(mm) != 2 || len(yy) != 2 || !isDigits(mm) || !isDigits(yy) {
		return 0, 0, ErrCardExpiry
	}
	month, _ := strconv.Atoi(mm)
	year, _ := strconv.Atoi(yy)
	if month < 1 || month > 12 {
		return 0, 0, ErrCardExpiry
	}
	return month, 2000 + year, nil
}

func formatExpiry(month, year int) string {
	return fmt.Sprintf("%02d/%02d", month, year%100)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
