package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

// Message is a success with a user-facing message next to the data.
func Message(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": msg, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}

// Redirect tells the client where to send the user along with why.
func Redirect(c *gin.Context, status int, msg, to string) {
	c.JSON(status, gin.H{"ok": false, "error": msg, "redirect": to})
}

// ServerError answers 500 without exposing the cause.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}
