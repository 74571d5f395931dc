package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
	"github.com/polkiloo/agromart/internal/server/http/dto"
)

// OrderHandler processes order lifecycle requests.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders. Buyers and sellers see their own side of
// the book; inspectors and admins see everything.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)

	var filter repository.OrderFilter
	switch CurrentUserRole(c) {
	case model.RoleBuyer:
		filter.BuyerID = &userID
	case model.RoleSeller:
		filter.SellerID = &userID
	}
	if status := c.Query("status"); status != "" {
		filter.Statuses = []model.OrderStatus{model.OrderStatus(status)}
	}

	orders, err := h.facade.ListOrders(c.Request.Context(), filter)
	if err != nil {
		WriteError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, dto.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, ok := h.visibleOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// History handles GET /api/orders/:id/history.
func (h *OrderHandler) History(c *gin.Context) {
	order, ok := h.visibleOrder(c)
	if !ok {
		return
	}

	history, err := h.facade.OrderHistory(c.Request.Context(), order.ID)
	if err != nil {
		WriteError(c, err)
		return
	}

	resp := make([]dto.HistoryEntryResponse, 0, len(history))
	for i := range history {
		resp = append(resp, dto.NewHistoryEntryResponse(&history[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Advance handles POST /api/orders/:id/advance.
func (h *OrderHandler) Advance(c *gin.Context) {
	order, ok := h.visibleOrder(c)
	if !ok {
		return
	}

	var req dto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.AdvanceOrder(c.Request.Context(), order.ID, CurrentUserID(c), model.OrderStatus(req.Status), req.Notes)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(updated))
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	order, ok := h.visibleOrder(c)
	if !ok {
		return
	}

	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.CancelOrder(c.Request.Context(), order.ID, CurrentUserID(c), req.Reason)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(updated))
}

// UpdateShipping handles PUT /api/orders/:id/shipping.
func (h *OrderHandler) UpdateShipping(c *gin.Context) {
	order, ok := h.visibleOrder(c)
	if !ok {
		return
	}

	var req dto.UpdateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.UpdateOrderShipping(c.Request.Context(), order.ID, model.ShippingDetails{
		Method:      req.Shipping.Method,
		Terms:       req.Shipping.Terms,
		Origin:      req.Shipping.Origin,
		Destination: req.Shipping.Destination,
	}, req.EstimatedDeliveryDate)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(updated))
}

// visibleOrder loads the order from the :id parameter and enforces that the
// caller is a party to it, an inspector, or an admin. A hidden order reads
// as not found, never as forbidden.
func (h *OrderHandler) visibleOrder(c *gin.Context) (*model.Order, bool) {
	id, ok := IDParam(c, "id")
	if !ok {
		return nil, false
	}

	order, err := h.facade.GetOrder(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return nil, false
	}

	userID := CurrentUserID(c)
	switch CurrentUserRole(c) {
	case model.RoleAdmin, model.RoleInspector:
		return order, true
	default:
		if order.BuyerID == userID || order.SellerID == userID {
			return order, true
		}
	}
	c.Status(http.StatusNotFound)
	return nil, false
}
