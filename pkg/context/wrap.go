package context

import (
	"BrainRotBGone/pkg/log"
	"BrainRotBGone/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID   = "user_id"
	CtxViewerID = "current_user_id"
)

var ErrNoUserID = errors.New("user_id is required")

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// GetUserID returns the acting user id placed by the Identity middleware.
func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, ErrNoUserID
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id has the wrong type")
	}

	return uid, nil
}

// GetViewerID returns the viewer id, 0 when the caller did not send one.
func GetViewerID(c *gin.Context) uint64 {
	if v, ok := c.Get(CtxViewerID); ok {
		if uid, ok := v.(uint64); ok {
			return uid
		}
	}
	return 0
}
