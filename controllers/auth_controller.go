package controllers

import (
	"net/http"

	"cerocafe-backend/pkg/resp"
	"cerocafe-backend/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Dni      string `json:"dni" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(req.Dni, req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "dni": user.Dni, "email": user.Email,
		"name": user.Name, "phone": user.Phone, "role": user.Role,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "dni": user.Dni, "email": user.Email,
			"name": user.Name, "role": user.Role, "balancePoints": user.BalancePoints,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	idVal, _ := c.Get("userId")
	id, _ := idVal.(uint)
	user, err := a.Auth.GetProfile(id)
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "dni": user.Dni, "email": user.Email,
		"name": user.Name, "phone": user.Phone, "role": user.Role,
		"balancePoints": user.BalancePoints,
	})
}
