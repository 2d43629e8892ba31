package handler

import (
	"BrainRotBGone/pkg/context"
	"BrainRotBGone/pkg/response"
	"BrainRotBGone/service"
	"BrainRotBGone/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/auth")
	auth.POST("/login", context.Wrap(a.Login))
	auth.POST("/signup", context.Wrap(a.Signup))
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, user)
	return nil
}

func (a *Auth) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, err := a.AuthService.Signup(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, user)
	return nil
}
