package server

import (
	"BrainRotBGone/handler"
)

type Handlers struct {
	Auth            *handler.Auth
	User            *handler.User
	Post            *handler.Post
	CommentsHandler *handler.CommentsHandler
	Health          *handler.Health
}
