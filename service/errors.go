package service

import "errors"

var (
	ErrUserNotFound       = errors.New("User not found")
	ErrPostNotFound       = errors.New("Post not found")
	ErrCommentNotFound    = errors.New("Comment not found")
	ErrEmailExists        = errors.New("Email already exists")
	ErrUsernameExists     = errors.New("Username already taken")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrBrainrot           = errors.New("Brainrot content detected")
	ErrForbiddenPost      = errors.New("You can only delete your own posts")
	ErrForbiddenComment   = errors.New("You can only delete your own comments")
	ErrLikeBusy           = errors.New("Too many requests, try again")
)
