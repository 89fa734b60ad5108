package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hgpnguyen/restaurant/pkg/resp"
	"github.com/hgpnguyen/restaurant/services"
	"github.com/hgpnguyen/restaurant/utils"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "email": user.Email})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username, "email": user.Email},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "username": user.Username, "email": user.Email,
		"role": utils.CurrentRole(c),
	})
}
