package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/user-notes/business/v1/note"
	"github.com/ribgsilva/user-notes/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note of the current user using its id
// @Tags Note
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	user, ok := userId(ctx)
	if !ok {
		return unauthorized
	}

	id, ok := noteId(ctx)
	if !ok {
		return invalidId
	}

	get, err := note.Find(ctx, user, id)

	switch {
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	case get.Id == "":
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "notes not found"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   get,
		}
	}
}
