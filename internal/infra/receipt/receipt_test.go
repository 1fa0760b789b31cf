//go:build unit

package receipt_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra/receipt"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() *queries.ReceiptView {
	paidAt := time.Date(2024, 6, 1, 1, 30, 0, 0, time.UTC)
	return &queries.ReceiptView{
		PaymentView: queries.PaymentView{
			ID:          uuid.MustParse("6f1c3b0e-3c1a-4f57-9a35-2a1f4f8f0b11"),
			BookingID:   uuid.New(),
			UserID:      uuid.New(),
			AmountCents: 30000,
			Status:      "completed",
			PaidAt:      &paidAt,
			CardLast4:   "4242",
			CardBrand:   "visa",
			CardHolder:  "Ada Lovelace",
			CardExpiry:  "12/30",
		},
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		HotelName:  "Harbor View",
		RoomNumber: "101",
		UserEmail:  "ada@example.com",
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		b := receipt.NewBuilder(time.FixedZone("JST", 9*60*60))

		pdf, filename, err := b.Build(sampleReceipt())

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
		assert.Equal(t, "receipt_6f1c3b0e-3c1a-4f57-9a35-2a1f4f8f0b11.pdf", filename)
	})

	t.Run("without paid_at", func(t *testing.T) {
		r := sampleReceipt()
		r.PaidAt = nil

		pdf, _, err := receipt.NewBuilder(nil).Build(r)

		require.NoError(t, err)
		assert.NotEmpty(t, pdf)
	})

	t.Run("corrupt stay dates are rejected", func(t *testing.T) {
		r := sampleReceipt()
		r.CheckOut = r.CheckIn

		_, _, err := receipt.NewBuilder(nil).Build(r)

		assert.Error(t, err)
	})
}
