package controllers

import (
	"fmt"
	"net/http"

	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/resp"
	"github.com/AmaraNavaneetha/Flavour-Hub/services"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := h.Svc.PlaceOrder(c.Request.Context(), utils.CurrentUserID(c), utils.CurrentSession(c), req.PaymentMethod)
	if err != nil {
		checkoutFailed(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"ok":       true,
		"message":  fmt.Sprintf("Order #%d placed successfully.", res.OrderID),
		"data":     res,
		"redirect": fmt.Sprintf("/orders/%d", res.OrderID),
	})
}

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	items, err := h.Svc.ListForUser(c.Request.Context(), utils.CurrentUserID(c), queryInt(c, "limit"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (h *OrderController) DetailMine(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.DetailForUser(c.Request.Context(), utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /staff/orders
func (h *OrderController) Board(c *gin.Context) {
	page, err := h.Svc.ListAll(c.Request.Context(), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /staff/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}
