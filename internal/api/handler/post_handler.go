package handler

import (
	"Instaclone/internal/pkg/response"
	"Instaclone/internal/pkg/util"
	"Instaclone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	feedSvc   service.FeedService
	actionSvc service.PostActionService
}

func NewPostHandler(feedSvc service.FeedService, actionSvc service.PostActionService) *PostHandler {
	return &PostHandler{
		feedSvc:   feedSvc,
		actionSvc: actionSvc,
	}
}

// GetPosts 分页参数宽松解析：不合法的值回退默认后再由服务端收敛，不拒绝请求
func (s *PostHandler) GetPosts(c *gin.Context) {
	q := c.Query("q")
	page := util.ParseIntOr(c.Query("page"), util.DefaultPage)
	limit := util.ParseIntOr(c.Query("limit"), util.DefaultLimit)

	feed, err := s.feedSvc.GetPosts(c.Request.Context(), q, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *PostHandler) LikePost(c *gin.Context) {
	postID, err := parsePostID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.actionSvc.LikePost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *PostHandler) UnlikePost(c *gin.Context) {
	postID, err := parsePostID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.actionSvc.UnlikePost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// parsePostID 非数字 ID 等价于不存在的帖子
func parsePostID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, service.ErrPostNotFound
	}
	return id, nil
}
