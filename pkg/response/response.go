package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is what every failed request returns.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, ErrorBody{Detail: msg})
}
