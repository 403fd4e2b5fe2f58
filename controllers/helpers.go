package controllers

import (
	"errors"
	"strconv"

	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/resp"
	"github.com/AmaraNavaneetha/Flavour-Hub/services"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path param, answering 400 otherwise.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}

// fail maps the service errors shared by every controller.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrInvalidInput):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCategoryInUse):
		resp.Conflict(c, err.Error())
	default:
		c.Error(err)
		resp.ServerError(c)
	}
}
