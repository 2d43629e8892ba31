package middleware

import (
	ctx "BrainRotBGone/pkg/context"
	"BrainRotBGone/pkg/response"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Identity copies the caller supplied user_id and current_user_id query
// parameters into the request context. Nothing is verified, the ids are
// trusted as sent.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, key := range []string{ctx.CtxUserID, ctx.CtxViewerID} {
			raw, ok := c.GetQuery(key)
			if !ok || raw == "" {
				continue
			}
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				response.Abort(c, http.StatusBadRequest, key+" must be a positive integer")
				return
			}
			c.Set(key, id)
		}

		c.Next()
	}
}
