package response

import (
	"errors"
	"net/http"

	"Backoffice/pkg/log"
	"Backoffice/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func ErrBadRequest(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func ErrUnauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func ErrNotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

func ErrConflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

func ErrInternal(err error) *BizError {
	return NewError(http.StatusInternalServerError, err.Error())
}

// Render 把 handler 返回的错误写成统一结构, 非 BizError 一律 500
func Render(c *gin.Context, err error) {
	var be *BizError
	if errors.As(err, &be) {
		Fail(c, be.Code, be.Msg)
		return
	}
	Fail(c, http.StatusInternalServerError, err.Error())
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.String("path", c.Request.URL.Path), zap.String("trace", utils.PanicTrace(r)))
				Abort(c, http.StatusInternalServerError, "internal server error")
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			Render(c, c.Errors.Last().Err)
			c.Abort()
		}
	}
}
