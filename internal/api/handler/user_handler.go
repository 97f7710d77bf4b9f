package handler

import (
	"Instaclone/internal/pkg/response"
	"Instaclone/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := s.userSvc.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetUserPosts(c *gin.Context) {
	posts, err := s.userSvc.GetUserPosts(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
