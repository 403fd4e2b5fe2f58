package controllers

import (
	"errors"
	"net/http"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/cart"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/resp"
	"github.com/AmaraNavaneetha/Flavour-Hub/services"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Register(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		resp.Conflict(c, err.Error())
	case err != nil:
		fail(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{
			"ok":       true,
			"message":  "Registration successful! Please login with your new credentials.",
			"data":     user,
			"redirect": "/auth/login",
		})
	}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := a.Svc.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrUnknownUser),
		errors.Is(err, services.ErrWrongPassword):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrInactiveUser),
		errors.Is(err, entity.ErrUnknownRole):
		resp.Forbidden(c, err.Error())
	case err != nil:
		fail(c, err)
	default:
		resp.OK(c, res)
	}
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if sess := utils.CurrentSession(c); sess != nil {
		if err := sess.Destroy(); err != nil {
			fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "You have been logged out.", "redirect": "/"})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	var cartCount int
	if sess := utils.CurrentSession(c); sess != nil {
		cartCount = cart.Load(sess).Count()
	}
	resp.OK(c, gin.H{"user": user, "cartCount": cartCount, "landing": user.Role.LandingPath()})
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req services.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.UpdateProfile(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Your profile has been updated successfully!", user)
}
