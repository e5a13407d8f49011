package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a Handler answers, Body is rendered as json unless nil
type Result struct {
	Status int
	Body   any
}

// Error is the body of every non 2xx response
type Error struct {
	Message string `json:"message" example:"notes not found"`
}

type Handler func(ctx *gin.Context) Result

// Wrapper adapts a Handler to gin
func Wrapper(h Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
