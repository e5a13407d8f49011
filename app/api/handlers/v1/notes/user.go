package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ribgsilva/user-notes/platform/web/auth"
	"github.com/ribgsilva/user-notes/platform/web/handler"
	"net/http"
)

var unauthorized = handler.Result{
	Status: http.StatusUnauthorized,
	Body:   handler.Error{Message: "not authenticated"},
}

var invalidId = handler.Result{
	Status: http.StatusBadRequest,
	Body:   handler.Error{Message: "invalid id"},
}

func userId(ctx *gin.Context) (string, bool) {
	user, ok := auth.Current(ctx)
	return user.Id, ok && user.Id != ""
}

func noteId(ctx *gin.Context) (string, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return "", false
	}
	return id.String(), true
}
