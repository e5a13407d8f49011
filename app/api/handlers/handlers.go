package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/user-notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/user-notes/app/api/handlers/v1/me"
	"github.com/ribgsilva/user-notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/user-notes/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

// MapApi registers the note routes behind authenticate
func MapApi(r *gin.Engine, authenticate gin.HandlerFunc) {
	v1 := r.Group("/v1", authenticate)
	v1.GET("/me", handler.Wrapper(me.Get))
	v1.GET("/notes", handler.Wrapper(notes.List))
	v1.POST("/notes", handler.Wrapper(notes.Create))
	v1.GET("/notes/:id", handler.Wrapper(notes.Get))
	v1.DELETE("/notes/:id", handler.Wrapper(notes.Delete))
}
