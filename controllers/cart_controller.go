package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/cart"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/resp"
	"github.com/AmaraNavaneetha/Flavour-Hub/services"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc    *services.CartService
	Orders *services.OrderService
}

func NewCartController(s *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{Svc: s, Orders: orders}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.Svc.View(utils.CurrentSession(c)))
}

// POST /cart/items/:id
func (h *CartController) Add(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, line, err := h.Svc.Add(c.Request.Context(), utils.CurrentSession(c), id)
	if errors.Is(err, cart.ErrItemNotFound) {
		resp.Redirect(c, http.StatusNotFound, "Item not found.", "/menu")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("%s added to cart!", line.Name), view)
}

// POST /cart/items/:id/decrement
func (h *CartController) Decrement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, outcome, prev, err := h.Svc.Decrement(utils.CurrentSession(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	switch outcome {
	case cart.Removed:
		resp.Message(c, fmt.Sprintf("%s has been completely removed from your cart.", prev.Name), view)
	case cart.Decremented:
		resp.Message(c, fmt.Sprintf("%s quantity reduced to %d.", prev.Name, prev.Quantity-1), view)
	default:
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Could not find item in cart to reduce quantity.", "data": view})
	}
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, prev, removed, err := h.Svc.Remove(utils.CurrentSession(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Could not find item in cart to remove.", "data": view})
		return
	}
	resp.Message(c, fmt.Sprintf("%s has been completely removed from your cart.", prev.Name), view)
}

// GET /cart/checkout
func (h *CartController) Checkout(c *gin.Context) {
	sum, err := h.Orders.Checkout(utils.CurrentUserID(c), utils.CurrentSession(c))
	if err != nil {
		checkoutFailed(c, err)
		return
	}
	resp.OK(c, sum)
}

// checkoutFailed answers the errors of the checkout and place-order steps.
func checkoutFailed(c *gin.Context, err error) {
	var perr *services.OrderPersistenceError
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		resp.Redirect(c, http.StatusUnauthorized, err.Error(), "/menu")
	case errors.Is(err, services.ErrEmptyCart):
		resp.Redirect(c, http.StatusBadRequest, err.Error(), "/menu")
	case errors.Is(err, services.ErrInvalidPaymentMethod):
		resp.BadRequest(c, err.Error())
	case errors.As(err, &perr):
		c.Error(err)
		resp.Redirect(c, http.StatusInternalServerError,
			"Error saving order details. Your cart is unchanged, please try again.", "/cart")
	default:
		fail(c, err)
	}
}
