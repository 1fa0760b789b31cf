package payment

import "github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

var (
	ErrInvalidInstrument = errs.Define("invalid payment instrument", errs.ErrInvalidInput)
	ErrCardNumber        = cardErr("card number must be 12 to 19 digits and pass the checksum")
	ErrCardExpired       = cardErr("card has expired")
	ErrCardExpiry        = cardErr("expiry must use the MM/YY format")
	ErrCardCVV           = cardErr("cvv must be 3 or 4 digits")
	ErrCardHolder        = cardErr("card holder name is required")

	ErrAmountMismatch = errs.Define("payment amount must equal the booking total", errs.ErrInvalidInput)
	ErrInvalidStatus  = errs.Define("invalid payment status", errs.ErrInvalidInput)

	ErrPaymentNotFound  = errs.Define("payment not found", errs.ErrNotFound)
	ErrAlreadyPaid      = errs.Define("booking already has a payment", errs.ErrConflict)
	ErrBookingCancelled = errs.Define("cancelled booking cannot be paid", errs.ErrConflict)
	ErrPayerMismatch    = errs.Define("payer must be the authenticated user", errs.ErrForbidden)
)

func cardErr(msg string) error {
	return errs.Mark(errs.Define(msg, errs.ErrInvalidInput), ErrInvalidInstrument)
}
