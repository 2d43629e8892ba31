package handler

import (
	"BrainRotBGone/pkg/context"
	"BrainRotBGone/pkg/response"
	"BrainRotBGone/service"
	"BrainRotBGone/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Post struct {
	PostService service.IPostService
	LikeService service.ILikeService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	posts := r.Group("/posts")
	posts.GET("", context.Wrap(p.ListPosts))
	posts.POST("", context.Wrap(p.CreatePost))
	posts.POST("/:id/like", context.Wrap(p.ToggleLike))
	posts.DELETE("/:id", context.Wrap(p.DeletePost))
}

// ListPosts 全部帖子, newest first
func (p *Post) ListPosts(c *gin.Context) error {
	posts, err := p.PostService.ListPosts(c.Request.Context(), context.GetViewerID(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, posts)
	return nil
}

func (p *Post) CreatePost(c *gin.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	post, err := p.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, post)
	return nil
}

func (p *Post) ToggleLike(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	resp, err := p.LikeService.ToggleLike(c.Request.Context(), postID, userID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (p *Post) DeletePost(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	if err := p.PostService.DeletePost(c.Request.Context(), postID, userID); err != nil {
		return bizError(err)
	}
	response.Success(c, types.MessageResponse{Message: "Post deleted successfully"})
	return nil
}

func requireUserID(c *gin.Context) (uint64, error) {
	userID, err := context.GetUserID(c)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, err.Error())
	}
	return userID, nil
}
