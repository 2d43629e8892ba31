package handler

import (
	"BrainRotBGone/pkg/context"
	"BrainRotBGone/pkg/response"
	"BrainRotBGone/service"
	"BrainRotBGone/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService service.IUserService
	PostService service.IPostService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	users := r.Group("/users")
	users.GET("/:id", context.Wrap(u.GetUser))
	users.DELETE("/:id", context.Wrap(u.DeleteUser))
	users.GET("/:id/posts", context.Wrap(u.GetUserPosts))
}

func (u *User) GetUser(c *gin.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	user, err := u.UserService.GetUser(c.Request.Context(), userID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, user)
	return nil
}

// DeleteUser 注销账号, removes the user's posts, comments and likes too.
func (u *User) DeleteUser(c *gin.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := u.UserService.DeleteUser(c.Request.Context(), userID); err != nil {
		return bizError(err)
	}
	response.Success(c, types.MessageResponse{Message: "Account deleted successfully"})
	return nil
}

func (u *User) GetUserPosts(c *gin.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	posts, err := u.PostService.ListUserPosts(c.Request.Context(), userID, context.GetViewerID(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, posts)
	return nil
}
