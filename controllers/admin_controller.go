package controllers

import (
	"errors"
	"net/http"

	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/resp"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
	"github.com/AmaraNavaneetha/Flavour-Hub/services"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
)

// AdminController is the back-office: categories, item types, food items
// and the dashboard.
type AdminController struct {
	Categories *services.CategoryService
	Items      *services.FoodItemService
	ItemTypes  *services.ItemTypeService
	Dashboard  *services.DashboardService
	UploadDir  string
}

func NewAdminController(
	categories *services.CategoryService,
	items *services.FoodItemService,
	itemTypes *services.ItemTypeService,
	dashboard *services.DashboardService,
	uploadDir string,
) *AdminController {
	return &AdminController{Categories: categories, Items: items, ItemTypes: itemTypes, Dashboard: dashboard, UploadDir: uploadDir}
}

// optionalImage saves the "image" form file when one was sent.
func (h *AdminController) optionalImage(c *gin.Context, folder string) (string, bool) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", true
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return "", false
	}
	path, err := utils.SaveUploadedImage(c, fh, h.UploadDir, folder)
	if errors.Is(err, utils.ErrImageTooLarge) || errors.Is(err, utils.ErrNotAnImage) {
		resp.BadRequest(c, err.Error())
		return "", false
	}
	if err != nil {
		fail(c, err)
		return "", false
	}
	return path, true
}

// GET /admin/dashboard
func (h *AdminController) GetDashboard(c *gin.Context) {
	d, err := h.Dashboard.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

// ---------------- Categories ----------------

// GET /admin/categories?q=&sort=&page=&limit=
func (h *AdminController) ListCategories(c *gin.Context) {
	page, err := h.Categories.List(c.Request.Context(), repository.CategoryFilter{
		Search: c.Query("q"),
		Sort:   c.Query("sort"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /admin/categories/:id
func (h *AdminController) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cat, err := h.Categories.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// POST /admin/categories (json or multipart with "image")
func (h *AdminController) CreateCategory(c *gin.Context) {
	var in services.CategoryIn
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	path, ok := h.optionalImage(c, "categories")
	if !ok {
		return
	}
	in.ImagePath = path
	cat, err := h.Categories.Create(c.Request.Context(), in)
	if err != nil {
		utils.RemoveUpload(h.UploadDir, path)
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /admin/categories/:id
func (h *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.CategoryIn
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	path, ok := h.optionalImage(c, "categories")
	if !ok {
		return
	}
	in.ImagePath = path
	cat, err := h.Categories.Update(c.Request.Context(), id, in)
	if err != nil {
		utils.RemoveUpload(h.UploadDir, path)
		fail(c, err)
		return
	}
	resp.Message(c, "Category updated.", cat)
}

// PATCH /admin/categories/:id/status
func (h *AdminController) ToggleCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	active, err := h.Categories.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "categoryStatus": active})
}

// DELETE /admin/categories/:id
func (h *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Categories.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Category deleted.", gin.H{"id": id})
}

// ---------------- Item types ----------------

// GET /admin/item-types
func (h *AdminController) ListItemTypes(c *gin.Context) {
	items, err := h.ItemTypes.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/item-types
func (h *AdminController) CreateItemType(c *gin.Context) {
	var body struct {
		ItemTypeName string `json:"itemTypeName" form:"itemTypeName" binding:"required"`
	}
	if err := c.ShouldBind(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.ItemTypes.Create(c.Request.Context(), body.ItemTypeName)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, t)
}

// ---------------- Food items ----------------

// GET /admin/food-items?categoryId=&q=&sort=&page=&limit=
func (h *AdminController) ListFoodItems(c *gin.Context) {
	page, err := h.Items.List(c.Request.Context(), foodItemFilter(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /admin/food-items/:id
func (h *AdminController) GetFoodItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.Items.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /admin/food-items (json or multipart with "image")
func (h *AdminController) CreateFoodItem(c *gin.Context) {
	var in services.FoodItemIn
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	path, ok := h.optionalImage(c, "fooditems")
	if !ok {
		return
	}
	in.ImagePath = path
	item, err := h.Items.Create(c.Request.Context(), in)
	if err != nil {
		utils.RemoveUpload(h.UploadDir, path)
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /admin/food-items/:id
func (h *AdminController) UpdateFoodItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.FoodItemIn
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	path, ok := h.optionalImage(c, "fooditems")
	if !ok {
		return
	}
	in.ImagePath = path
	item, err := h.Items.Update(c.Request.Context(), id, in)
	if err != nil {
		utils.RemoveUpload(h.UploadDir, path)
		fail(c, err)
		return
	}
	resp.Message(c, "Food item updated.", item)
}

// PATCH /admin/food-items/:id/availability
func (h *AdminController) SetAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Items.SetAvailability(c.Request.Context(), id, *body.IsAvailable)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /admin/food-items/:id/tags
func (h *AdminController) SetTags(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var tags services.Tags
	if err := c.ShouldBindJSON(&tags); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Items.SetTags(c.Request.Context(), id, tags)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/food-items/:id
func (h *AdminController) DeleteFoodItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Items.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Food item deleted.", gin.H{"id": id})
}
