package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/phpdave11/gofpdf"
)

const timestampLayout = "2006-01-02 15:04 MST"

// Builder renders payment receipts as single page A4 PDFs.
type Builder struct {
	loc *time.Location
}

func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{loc: loc}
}

// Build returns the PDF bytes and a download file name.
func (b *Builder) Build(r *queries.ReceiptView) ([]byte, string, error) {
	amount, err := common.NewMoney(r.AmountCents)
	if err != nil {
		return nil, "", err
	}
	period, err := booking.NewStayPeriod(r.CheckIn, r.CheckOut)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.Cell(45, 7, label)
		pdf.Cell(0, 7, value)
		pdf.Ln(7)
	}
	line("Receipt no.", r.ID.String())
	if r.PaidAt != nil {
		line("Paid at", r.PaidAt.In(b.loc).Format(timestampLayout))
	}
	line("Guest", r.UserEmail)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Hotel", r.HotelName)
	line("Room", r.RoomNumber)
	line("Booking", r.BookingID.String())
	line("Check-in", period.CheckIn().Format(booking.DateLayout))
	line("Check-out", period.CheckOut().Format(booking.DateLayout))
	line("Nights", fmt.Sprintf("%d", period.Nights()))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payment")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Card", fmt.Sprintf("%s **** %s", strings.ToUpper(r.CardBrand), r.CardLast4))
	line("Card holder", r.CardHolder)
	pdf.SetFont("Helvetica", "B", 12)
	line("Total", amount.String())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", errs.Wrap(err, "render receipt")
	}

	filename := fmt.Sprintf("receipt_%s.pdf", r.ID.String())
	return buf.Bytes(), filename, nil
}
