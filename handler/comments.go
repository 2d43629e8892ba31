package handler

import (
	"BrainRotBGone/pkg/context"
	"BrainRotBGone/pkg/response"
	"BrainRotBGone/service"
	"BrainRotBGone/types"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	CommentsService service.ICommentsService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/posts/:id/comments", context.Wrap(ch.CreateComment))
	r.DELETE("/comments/:id", context.Wrap(ch.DeleteComment))
}

// CreateComment 创建评论
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	comment, err := ch.CommentsService.CreateComment(c.Request.Context(), postID, userID, &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, comment)
	return nil
}

func (ch *CommentsHandler) DeleteComment(c *gin.Context) error {
	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	if err := ch.CommentsService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		return bizError(err)
	}
	response.Success(c, types.MessageResponse{Message: "Comment deleted successfully"})
	return nil
}
