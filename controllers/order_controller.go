package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/pkg/resp"
	"github.com/hgpnguyen/restaurant/services"
	"github.com/hgpnguyen/restaurant/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders — convert the caller's cart into an order
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	order, err := h.Svc.Place(uid)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	items, err := h.Svc.Repo.GetOrderItems(order.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, services.ViewOrder(utils.CurrentRole(c), order, items))
}

// GET /orders — scoped by role: manager all, crew their deliveries, customer their own
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, err := h.Svc.List(role, uid, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]any, 0, len(orders))
	for i := range orders {
		out = append(out, services.ViewOrder(role, &orders[i], nil))
	}
	resp.OK(c, gin.H{"items": out, "total": total, "page": page, "limit": limit})
}

// GET /orders/:id — same scope as list, applied inside the fetch
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := h.Svc.Detail(role, uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, services.ViewOrder(role, &detail.Order, detail.Items))
}

// PUT /orders/:id (manager)
func (h *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}
	resp.OK(c, services.ViewOrder(entity.RoleManager, order, nil))
}

// PATCH /orders/:id (manager or delivery crew) — the shape the caller may
// send depends on their current role, decided here per request
func (h *OrderController) PartialUpdate(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if role == entity.RoleDeliveryCrew {
		var req services.DeliveryUpdateIn
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		order, err := h.Svc.MarkDelivered(uid, uint(id), &req)
		if err != nil {
			h.writeUpdateError(c, err)
			return
		}
		resp.OK(c, services.ViewOrder(role, order, nil))
		return
	}

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}
	resp.OK(c, services.ViewOrder(role, order, nil))
}

// DELETE /orders/:id (manager)
func (h *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (h *OrderController) writeUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrNotDeliveryCrew), errors.Is(err, services.ErrStatusInvalid):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
