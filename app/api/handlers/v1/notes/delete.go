package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/user-notes/business/v1/note"
	"github.com/ribgsilva/user-notes/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete a note of the current user using its id
// @Tags Note
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	user, ok := userId(ctx)
	if !ok {
		return unauthorized
	}

	id, ok := noteId(ctx)
	if !ok {
		return invalidId
	}

	err := note.Delete(ctx, user, id)

	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "notes not found"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{Status: http.StatusNoContent}
	}
}
