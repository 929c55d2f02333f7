package controllers

import (
	"strconv"

	"cerocafe-backend/entity"
	"cerocafe-backend/pkg/resp"
	"cerocafe-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	all := c.Query("all") == "true"
	dishes, err := mc.Menu.List(all)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, dishes)
}

type dishReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Category    string `json:"category"`
	Available   *bool  `json:"available"`
}

// POST /menu (staff/owner)
func (mc *MenuController) Create(c *gin.Context) {
	var req dishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d := entity.Dish{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available == nil || *req.Available,
	}
	if err := mc.Menu.Create(&d, currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /menu/:id (staff/owner)
func (mc *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.Menu.Update(uint(id), updates, currentActor(c)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
