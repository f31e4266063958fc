package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// Fail 使用业务码作为 HTTP 状态码
func Fail(c *gin.Context, code int, msg string) {
	status := code
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, Response{
		Code: code,
		Msg:  msg,
	})
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
