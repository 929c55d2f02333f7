package controllers

import (
	"errors"

	"cerocafe-backend/pkg/resp"
	"cerocafe-backend/services"

	"github.com/gin-gonic/gin"
)

// serviceError maps the service sentinels onto the response envelope so
// every controller speaks the same status codes.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrInvalidAmount):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrDishNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrPrintUnavailable),
		errors.Is(err, services.ErrGatewayUnavailable):
		resp.BadGateway(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
