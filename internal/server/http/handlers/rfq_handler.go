package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/server/http/dto"
	"github.com/polkiloo/agromart/internal/usecase"
)

// RfqHandler processes sourcing requests and seller quotes.
type RfqHandler struct {
	facade RfqFacade
}

// NewRfqHandler creates RfqHandler instance.
func NewRfqHandler(facade RfqFacade) *RfqHandler {
	return &RfqHandler{facade: facade}
}

// Create handles POST /api/rfqs.
func (h *RfqHandler) Create(c *gin.Context) {
	var req dto.CreateRfqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	rfq, err := h.facade.CreateRfq(c.Request.Context(), CurrentUserID(c), usecase.CreateRfqInput{
		Product:          req.Product,
		Quantity:         req.Quantity,
		QuantityUnit:     req.QuantityUnit,
		DeliveryLocation: req.DeliveryLocation,
		ValidUntil:       req.ValidUntil,
	})
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRfqResponse(rfq))
}

// List handles GET /api/rfqs. Buyers see their own requests, everyone else
// sees the board of open ones.
func (h *RfqHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		rfqs []model.Rfq
		err  error
	)
	if CurrentUserRole(c) == model.RoleBuyer {
		rfqs, err = h.facade.ListRfqsByBuyer(ctx, CurrentUserID(c))
	} else {
		rfqs, err = h.facade.ListOpenRfqs(ctx)
	}
	if err != nil {
		WriteError(c, err)
		return
	}

	resp := make([]dto.RfqResponse, 0, len(rfqs))
	for i := range rfqs {
		resp = append(resp, dto.NewRfqResponse(&rfqs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/rfqs/:id.
func (h *RfqHandler) Get(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	rfq, err := h.facade.GetRfq(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRfqResponse(rfq))
}

// SubmitQuote handles POST /api/rfqs/:id/quotes.
func (h *RfqHandler) SubmitQuote(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	quote, err := h.facade.SubmitQuote(c.Request.Context(), CurrentUserID(c), id, usecase.SubmitQuoteInput{
		Price:          req.Price,
		Quantity:       req.Quantity,
		QuantityUnit:   req.QuantityUnit,
		ShippingMethod: req.ShippingMethod,
		ShippingTerms:  req.ShippingTerms,
		DeliveryDate:   req.DeliveryDate,
		ValidUntil:     req.ValidUntil,
	})
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// ListQuotes handles GET /api/rfqs/:id/quotes.
func (h *RfqHandler) ListQuotes(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	quotes, err := h.facade.ListQuotes(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}

	resp := make([]dto.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		resp = append(resp, dto.NewQuoteResponse(&quotes[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AcceptQuote handles POST /api/quotes/:id/accept.
func (h *RfqHandler) AcceptQuote(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.AcceptQuote(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// RejectQuote handles POST /api/quotes/:id/reject.
func (h *RfqHandler) RejectQuote(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	quote, err := h.facade.RejectQuote(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}
