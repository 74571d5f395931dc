package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/agromart/internal/server/http/dto"
	"github.com/polkiloo/agromart/internal/usecase"
)

// PaymentHandler processes payment evidence and its verification.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler creates PaymentHandler instance.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Record handles POST /api/orders/:id/payments.
func (h *PaymentHandler) Record(c *gin.Context) {
	orderID, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.RecordPayment(c.Request.Context(), orderID, usecase.RecordPaymentInput{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Notes:         req.Notes,
		EvidenceRef:   req.EvidenceRef,
	})
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPaymentResponse(payment))
}

// List handles GET /api/orders/:id/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	orderID, ok := IDParam(c, "id")
	if !ok {
		return
	}

	payments, err := h.facade.ListPayments(c.Request.Context(), orderID)
	if err != nil {
		WriteError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, dto.NewPaymentResponse(&payments[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Verify handles POST /api/payments/:id/verify.
func (h *PaymentHandler) Verify(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.facade.VerifyPayment(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentResponse(payment))
}

// Reject handles POST /api/payments/:id/reject.
func (h *PaymentHandler) Reject(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.RejectPayment(c.Request.Context(), id, CurrentUserID(c), req.Reason)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentResponse(payment))
}

// Refund handles POST /api/payments/:id/refund.
func (h *PaymentHandler) Refund(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.RefundPayment(c.Request.Context(), id, CurrentUserID(c), req.Reason)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentResponse(payment))
}
