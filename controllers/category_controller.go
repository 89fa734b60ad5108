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

type CategoryController struct {
	Repo *repository.CatalogRepository
}

func NewCategoryController(repo *repository.CatalogRepository) *CategoryController {
	return &CategoryController{Repo: repo}
}

// GET /menu-items/category
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /menu-items/category/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cat, err := ctl.Repo.GetCategory(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

type CategoryIn struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
}

// POST /menu-items/category (manager)
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Title: req.Title, Slug: req.Slug}
	if err := ctl.Repo.CreateCategory(&cat); err != nil {
		// title/slug are unique
		resp.Conflict(c, "category title or slug already exists")
		return
	}
	resp.Created(c, cat)
}

type CategoryPatch struct {
	Title *string `json:"title"`
	Slug  *string `json:"slug"`
}

// PUT/PATCH /menu-items/category/:id (manager)
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := ctl.Repo.GetCategory(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req CategoryPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if len(updates) > 0 {
		if err := ctl.Repo.UpdateCategory(uint(id), updates); err != nil {
			resp.Conflict(c, "category title or slug already exists")
			return
		}
	}

	cat, err := ctl.Repo.GetCategory(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /menu-items/category/:id (manager)
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := ctl.Repo.GetCategory(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if err := ctl.Repo.DeleteCategory(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
