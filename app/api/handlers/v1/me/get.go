package me

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/user-notes/platform/web/auth"
	"github.com/ribgsilva/user-notes/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Current user
// @Description Returns the user identified by the bearer token
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 401 {object} handler.Error
// @Router /v1/me [get]
func Get(ctx *gin.Context) handler.Result {
	user, ok := auth.Current(ctx)
	if !ok {
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: "not authenticated"},
		}
	}
	return handler.Result{Status: http.StatusOK, Body: user}
}
