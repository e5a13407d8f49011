package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/user-notes/business/v1/note"
	"github.com/ribgsilva/user-notes/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List the notes of the current user, newest first. When search is set only notes containing it (ignoring case) are returned
// @Tags Note
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case insensitive text to look for"
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	user, ok := userId(ctx)
	if !ok {
		return unauthorized
	}

	found, err := note.Search(ctx, user, ctx.Query("search"))
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
