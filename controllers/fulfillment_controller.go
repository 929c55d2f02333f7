package controllers

import (
	"strconv"

	"cerocafe-backend/entity"
	"cerocafe-backend/pkg/resp"
	"cerocafe-backend/services"
	"cerocafe-backend/utils"

	"github.com/gin-gonic/gin"
)

type FulfillmentController struct {
	Fulfillment *services.FulfillmentService
}

func NewFulfillmentController(f *services.FulfillmentService) *FulfillmentController {
	return &FulfillmentController{Fulfillment: f}
}

func currentActor(c *gin.Context) services.Actor {
	return services.Actor{
		ID:   utils.CurrentUserID(c),
		Name: utils.CurrentUserName(c),
		Role: utils.CurrentRole(c),
	}
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// POST /orders/:id/confirm (staff/owner) — print then confirm
func (fc *FulfillmentController) Confirm(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	o, err := fc.Fulfillment.ConfirmAndPrint(c.Request.Context(), id, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /orders/:id/print (staff/owner) — resend the kitchen ticket
func (fc *FulfillmentController) Reprint(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	if err := fc.Fulfillment.Reprint(c.Request.Context(), id, currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"printed": true})
}

type transitionReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (staff/owner)
func (fc *FulfillmentController) Advance(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	var req transitionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := fc.Fulfillment.Advance(id, req.Status, currentActor(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, o)
}
