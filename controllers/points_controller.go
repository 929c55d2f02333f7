package controllers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"cerocafe-backend/entity"
	"cerocafe-backend/pkg/resp"
	"cerocafe-backend/services"
	"cerocafe-backend/utils"

	"github.com/gin-gonic/gin"
)

// Pusher is the notification collaborator; sends are best-effort.
type Pusher interface {
	Send(ctx context.Context, accountID uint, title, body string) error
}

type PointsController struct {
	Points *services.PointsService
	Push   Pusher
}

func NewPointsController(points *services.PointsService, push Pusher) *PointsController {
	return &PointsController{Points: points, Push: push}
}

type applyPointsReq struct {
	Dni       string           `json:"dni" binding:"required"`
	Amount    int64            `json:"amount" binding:"required"`
	Direction entity.Direction `json:"direction" binding:"required"`
}

// POST /points (staff/owner)
func (pc *PointsController) Apply(c *gin.Context) {
	var req applyPointsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	actor := services.Actor{
		ID:   utils.CurrentUserID(c),
		Name: utils.CurrentUserName(c),
		Role: utils.CurrentRole(c),
	}

	result, err := pc.Points.ApplyPoints(req.Dni, req.Amount, req.Direction, actor)
	if err != nil {
		serviceError(c, err)
		return
	}

	// best effort: a missed push never rolls back the mutation
	if pc.Push != nil {
		go func(accountID uint, amount, balance int64, direction entity.Direction) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			verb := "earned"
			if direction == entity.DirectionSubtract {
				verb = "redeemed"
			}
			body := fmt.Sprintf("You %s %d points. New balance: %d", verb, amount, balance)
			if err := pc.Push.Send(ctx, accountID, "Points update", body); err != nil {
				log.Printf("points push failed for account %d: %v", accountID, err)
			}
		}(result.AccountID, req.Amount, result.NewBalance, req.Direction)
	}

	resp.OK(c, result)
}

// GET /points/:dni/history?limit=
func (pc *PointsController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := pc.Points.History(c.Param("dni"), limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, entries)
}

// GET /points/leaderboard?top=&metric=
func (pc *PointsController) Leaderboard(c *gin.Context) {
	top, _ := strconv.Atoi(c.DefaultQuery("top", "10"))
	rows, err := pc.Points.Leaderboard(top, c.DefaultQuery("metric", services.MetricBalance))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, rows)
}
