package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/pkg/resp"
	"github.com/hgpnguyen/restaurant/repository"
)

type MenuController struct {
	Repo *repository.CatalogRepository
}

func NewMenuController(repo *repository.CatalogRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /menu-items?category=&featured=&search=&ordering=&page=&limit=
func (ctl *MenuController) List(c *gin.Context) {
	var f repository.MenuItemFilter
	if v := c.Query("category"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			cid := uint(id)
			f.CategoryID = &cid
		}
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		f.Featured = &featured
	}
	f.Search = c.Query("search")
	f.Ordering = c.Query("ordering")
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := ctl.Repo.ListMenuItems(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": f.Page, "limit": f.Limit})
}

// GET /menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := ctl.Repo.GetMenuItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

type MenuItemIn struct {
	Title      string  `json:"title" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Featured   bool    `json:"featured"`
	CategoryID uint    `json:"categoryId" binding:"required"`
}

// POST /menu-items (manager)
func (ctl *MenuController) Create(c *gin.Context) {
	var req MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ok, err := ctl.Repo.CategoryExists(req.CategoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.BadRequest(c, "category not found")
		return
	}

	item := entity.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if err := ctl.Repo.CreateMenuItem(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type MenuItemPatch struct {
	Title      *string  `json:"title"`
	Price      *float64 `json:"price"`
	Featured   *bool    `json:"featured"`
	CategoryID *uint    `json:"categoryId"`
}

// PUT/PATCH /menu-items/:id (manager)
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := ctl.Repo.GetMenuItem(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req MenuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			resp.BadRequest(c, "price must be greater than zero")
			return
		}
		updates["price"] = *req.Price
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.CategoryID != nil {
		ok, err := ctl.Repo.CategoryExists(*req.CategoryID)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if !ok {
			resp.BadRequest(c, "category not found")
			return
		}
		updates["category_id"] = *req.CategoryID
	}

	if len(updates) > 0 {
		if err := ctl.Repo.UpdateMenuItem(uint(id), updates); err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	item, err := ctl.Repo.GetMenuItem(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id (manager)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := ctl.Repo.GetMenuItem(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if err := ctl.Repo.DeleteMenuItem(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
