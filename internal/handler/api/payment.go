package api

import (
	"fmt"
	"net/http"

	reqdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/request"
	resdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/response"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/httperr"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ReceiptRenderer turns a completed payment into a printable document.
type ReceiptRenderer interface {
	Build(r *queries.ReceiptView) ([]byte, string, error)
}

type PaymentHandler struct {
	cmds     commands.PaymentCommands
	q        queries.PaymentQueries
	receipts ReceiptRenderer
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries, receipts ReceiptRenderer) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q, receipts: receipts}
}

// @Summary Pay booking
// @Description Settles a pending booking. The amount must equal the booking total exactly.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID idempotency key"
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	in, err := req.ToInput(actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	result, err := h.cmds.Pay(c.Request.Context(), in, actor, key)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, result.PaymentID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	markReplay(c, result.Replayed)
	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary List payments
// @Description Guests can only list their own payments.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "User ID"
// @Param booking_id query string false "Booking ID"
// @Param status query string false "pending|completed|failed|refunded"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	items, err := h.q.List(c.Request.Context(), actor, filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": resdto.FromPaymentList(items)})
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Payment receipt
// @Description PDF receipt of a completed payment
// @Tags payments
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {file} file
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.q.GetReceipt(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	pdf, filename, err := h.receipts.Build(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render receipt", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
