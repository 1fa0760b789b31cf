//go:build unit

package payment_test

import (
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestLuhn(t *testing.T) {
	valid := []string{"4111111111111111", "5555555555554444", "378282246310005", "4012888888881881"}
	for _, n := range valid {
		assert.True(t, payment.Luhn(n), n)
	}

	// every single-digit mutation of a valid number must fail
	base := []byte("4111111111111111")
	for i := range base {
		mutated := make([]byte, len(base))
		copy(mutated, base)
		mutated[i] = '0' + (base[i]-'0'+1)%10
		assert.False(t, payment.Luhn(string(mutated)), string(mutated))
	}

	assert.False(t, payment.Luhn(""))
}

func TestNewInstrument(t *testing.T) {
	cases := []struct {
		name   string
		number string
		holder string
		expiry string
		cvv    string
		errIs  error
	}{
		{name: "valid visa", number: "4111 1111 1111 1111", holder: "Hanako Sato", expiry: "12/27", cvv: "123"},
		{name: "dashes are ignored", number: "5555-5555-5555-4444", holder: "Hanako Sato", expiry: "12/27", cvv: "1234"},
		{name: "expires this month", number: "4111111111111111", holder: "Hanako Sato", expiry: "06/25", cvv: "123"},
		{name: "expired last month", number: "4111111111111111", holder: "Hanako Sato", expiry: "05/25", cvv: "123", errIs: payment.ErrCardExpired},
		{name: "checksum failure", number: "4111111111111112", holder: "Hanako Sato", expiry: "12/27", cvv: "123", errIs: payment.ErrCardNumber},
		{name: "too short", number: "41111111111", holder: "Hanako Sato", expiry: "12/27", cvv: "123", errIs: payment.ErrCardNumber},
		{name: "letters", number: "4111a11111111111", holder: "Hanako Sato", expiry: "12/27", cvv: "123", errIs: payment.ErrCardNumber},
		{name: "bad expiry format", number: "4111111111111111", holder: "Hanako Sato", expiry: "2027-12", cvv: "123", errIs: payment.ErrCardExpiry},
		{name: "month 13", number: "4111111111111111", holder: "Hanako Sato", expiry: "13/27", cvv: "123", errIs: payment.ErrCardExpiry},
		{name: "cvv letters", number: "4111111111111111", holder: "Hanako Sato", expiry: "12/27", cvv: "12a", errIs: payment.ErrCardCVV},
		{name: "cvv too long", number: "4111111111111111", holder: "Hanako Sato", expiry: "12/27", cvv: "12345", errIs: payment.ErrCardCVV},
		{name: "missing holder", number: "4111111111111111", holder: "  ", expiry: "12/27", cvv: "123", errIs: payment.ErrCardHolder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := payment.NewInstrument(tc.number, tc.holder, tc.expiry, tc.cvv, today)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, payment.ErrInvalidInstrument))
			assert.True(t, errs.Is(err, errs.ErrInvalidInput))
		})
	}
}

func TestInstrument_Summary(t *testing.T) {
	inst, err := payment.NewInstrument("5555 5555 5555 4444", " Hanako Sato ", "01/28", "123", today)
	require.NoError(t, err)

	assert.Equal(t, payment.CardSummary{
		Last4:  "4444",
		Brand:  payment.BrandMastercard,
		Holder: "Hanako Sato",
		Expiry: "01/28",
	}, inst.Summary())
}

func TestInstrument_Brand(t *testing.T) {
	cases := map[string]payment.Brand{
		"4111111111111111": payment.BrandVisa,
		"378282246310005":  payment.BrandAmex,
		"2223003122003222": payment.BrandMastercard,
		"6011111111111117": payment.BrandUnknown,
	}
	for number, want := range cases {
		inst, err := payment.NewInstrument(number, "A", "12/27", "123", today)
		require.NoError(t, err, number)
		assert.Equal(t, want, inst.Brand(), number)
	}
}
