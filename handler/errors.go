package handler

import (
	"BrainRotBGone/pkg/response"
	"BrainRotBGone/service"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bizError maps service failures onto their HTTP status. Anything unknown is
// returned as is and ends up as a 500.
func bizError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrBrainrot):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbiddenPost),
		errors.Is(err, service.ErrForbiddenComment):
		return response.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return response.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrLikeBusy):
		return response.NewError(http.StatusConflict, err.Error())
	default:
		return err
	}
}

func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// bindError turns a JSON binding failure into a short client message. The
// validator text names Go struct fields, so only the field is kept.
func bindError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return response.NewError(http.StatusBadRequest, strings.ToLower(fieldErrs[0].Field())+" is required")
	}
	return response.NewError(http.StatusBadRequest, "Invalid request body")
}
