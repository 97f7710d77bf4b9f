package handler

import (
	"Instaclone/internal/api/dto"
	"Instaclone/internal/pkg/response"
	"Instaclone/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchSvc service.SearchService
}

func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchSvc: searchSvc,
	}
}

func (s *SearchHandler) SearchAccounts(c *gin.Context) {
	var searchDTO dto.SearchAccountsDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}

	accounts, err := s.searchSvc.SearchAccounts(c.Request.Context(), searchDTO.Q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, accounts)
}
