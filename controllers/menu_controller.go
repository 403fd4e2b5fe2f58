package controllers

import (
	"strconv"

	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/resp"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
	"github.com/AmaraNavaneetha/Flavour-Hub/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// foodItemFilter reads ?categoryId=&q=&sort=&page=&limit=
func foodItemFilter(c *gin.Context) repository.FoodItemFilter {
	catID, _ := strconv.ParseUint(c.Query("categoryId"), 10, 64)
	return repository.FoodItemFilter{
		CategoryID: uint(catID),
		Search:     c.Query("q"),
		Sort:       c.Query("sort"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	}
}

// GET /menu/categories
func (h *MenuController) Categories(c *gin.Context) {
	items, err := h.Svc.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/items
func (h *MenuController) Items(c *gin.Context) {
	page, err := h.Svc.Items(c.Request.Context(), foodItemFilter(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": page.Items, "page": page.Page, "limit": page.Limit,
		"total": page.Total, "totalPages": page.TotalPages, "sorts": repository.SortKeys()})
}

// GET /menu/items/:id
func (h *MenuController) Item(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.Svc.Item(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}
