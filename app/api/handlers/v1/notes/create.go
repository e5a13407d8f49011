package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/user-notes/business/v1/note"
	"github.com/ribgsilva/user-notes/platform/web/handler"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note for the current user
// @Tags Note
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body note.NewNote true "Note content"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/notes [post]
func Create(ctx *gin.Context) handler.Result {
	user, ok := userId(ctx)
	if !ok {
		return unauthorized
	}

	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	created, err := note.Create(ctx, user, newN)

	switch {
	case errors.Is(err, note.ErrInvalidContent):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   created,
		}
	}
}
