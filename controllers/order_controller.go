package controllers

import (
	"strconv"

	"cerocafe-backend/entity"
	"cerocafe-backend/pkg/resp"
	"cerocafe-backend/services"
	"cerocafe-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders — direct take-away checkout
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// logged-in customers get linked to their account
	if uid := utils.CurrentUserID(c); uid != 0 && req.Customer.AccountID == nil {
		req.Customer.AccountID = &uid
	}

	o, err := oc.Orders.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /orders?status=&limit= (staff/owner)
func (oc *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		status = &st
	}
	orders, err := oc.Orders.List(status, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	o, err := oc.Orders.Get(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, o)
}
