package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/server/http/dto"
	"github.com/polkiloo/agromart/internal/usecase"
)

// InspectionHandler processes quality inspection requests.
type InspectionHandler struct {
	facade InspectionFacade
}

// NewInspectionHandler creates InspectionHandler instance.
func NewInspectionHandler(facade InspectionFacade) *InspectionHandler {
	return &InspectionHandler{facade: facade}
}

// Create handles POST /api/orders/:id/inspections.
func (h *InspectionHandler) Create(c *gin.Context) {
	orderID, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	record, err := h.facade.CreateInspection(c.Request.Context(), orderID, CurrentUserID(c), usecase.CreateInspectionInput{
		Location:       req.Location,
		InspectionDate: req.InspectionDate,
	})
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewInspectionResponse(record))
}

// List handles GET /api/orders/:id/inspections.
func (h *InspectionHandler) List(c *gin.Context) {
	orderID, ok := IDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.facade.ListInspections(c.Request.Context(), orderID)
	if err != nil {
		WriteError(c, err)
		return
	}

	resp := make([]dto.InspectionResponse, 0, len(records))
	for i := range records {
		resp = append(resp, dto.NewInspectionResponse(&records[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/inspections/:id.
func (h *InspectionHandler) Get(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.facade.GetInspection(c.Request.Context(), id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewInspectionResponse(record))
}

// UpdateChecklist handles PUT /api/inspections/:id/checklist.
func (h *InspectionHandler) UpdateChecklist(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.ChecklistItem, 0, len(req.Checklist))
	for _, item := range req.Checklist {
		items = append(items, model.ChecklistItem{
			Item:   item.Item,
			Status: model.ChecklistItemStatus(item.Status),
			Notes:  item.Notes,
		})
	}

	record, err := h.facade.UpdateInspectionChecklist(c.Request.Context(), id, items)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewInspectionResponse(record))
}

// AddPhoto handles POST /api/inspections/:id/photos.
func (h *InspectionHandler) AddPhoto(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	record, err := h.facade.AddInspectionPhoto(c.Request.Context(), id, req.Path, req.Caption)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewInspectionResponse(record))
}

// Complete handles POST /api/inspections/:id/complete.
func (h *InspectionHandler) Complete(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CompleteInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	record, err := h.facade.CompleteInspection(c.Request.Context(), id, req.Notes)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewInspectionResponse(record))
}
