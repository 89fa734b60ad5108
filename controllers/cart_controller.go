package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/pkg/resp"
	"github.com/hgpnguyen/restaurant/services"
	"github.com/hgpnguyen/restaurant/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	rows, subtotal, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows, "subtotal": subtotal})
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	row, err := h.Svc.Add(uid, &req)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyInCart) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, row)
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
