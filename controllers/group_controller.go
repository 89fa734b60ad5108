package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/pkg/resp"
	"github.com/hgpnguyen/restaurant/services"
)

// GroupController exposes one roster per role group. The group name is fixed
// at registration time, not taken from the client.
type GroupController struct {
	Svc   *services.GroupService
	Group string
}

func NewGroupController(s *services.GroupService, group string) *GroupController {
	return &GroupController{Svc: s, Group: group}
}

// GET /groups/{role}/users (manager)
func (ctl *GroupController) List(c *gin.Context) {
	users, err := ctl.Svc.ListMembers(ctl.Group)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
	}
	resp.OK(c, gin.H{"users": out})
}

type AddMemberRequest struct {
	Username string `json:"username" binding:"required"`
}

// POST /groups/{role}/users (manager)
func (ctl *GroupController) Add(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Svc.AddMember(req.Username, ctl.Group)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "email": user.Email})
}

// DELETE /groups/{role}/users/:id (manager)
func (ctl *GroupController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Svc.RemoveMember(uint(id), ctl.Group); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
