package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error payload rendered to clients. The mobile app displays
// Detail verbatim, so it must stay human-readable.
type Err struct {
	Err        error  `json:"-"`
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err.Err))
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusBadRequest,
		Detail:     err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusUnauthorized,
		Detail:     err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusForbidden,
		Detail:     err.Error(),
	}
}

func ErrNotFound(resource string, err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusNotFound,
		Detail:     resource + " not found",
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusConflict,
		Detail:     err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		Detail:     "something went wrong",
	}
}
