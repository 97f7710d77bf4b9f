package client

import (
	"Instaclone/internal/api/dto"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// FeedAPI 信息流拉取接口，分页控制器的唯一网络依赖
type FeedAPI interface {
	FetchPosts(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error)
}

// LikeAPI 点赞切换接口
type LikeAPI interface {
	Like(ctx context.Context, postID int64) (*dto.LikeStateDTO, error)
	Unlike(ctx context.Context, postID int64) (*dto.LikeStateDTO, error)
}

// Client 服务端 HTTP 客户端
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	return &Client{http: httpClient}
}

func (s *Client) FetchPosts(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error) {
	out := &dto.FeedPageDTO{}

	req := s.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(out).
		SetError(&dto.MessageDTO{})
	if query != "" {
		req.SetQueryParam("q", query)
	}

	resp, err := req.Get("/api/posts")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("fetch posts", resp)
	}
	return out, nil
}

func (s *Client) Like(ctx context.Context, postID int64) (*dto.LikeStateDTO, error) {
	return s.toggleLike(ctx, postID, "like")
}

func (s *Client) Unlike(ctx context.Context, postID int64) (*dto.LikeStateDTO, error) {
	return s.toggleLike(ctx, postID, "unlike")
}

func (s *Client) toggleLike(ctx context.Context, postID int64, action string) (*dto.LikeStateDTO, error) {
	out := &dto.LikeStateDTO{}

	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&dto.MessageDTO{}).
		Patch(fmt.Sprintf("/api/posts/%d/%s", postID, action))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(action+" post", resp)
	}
	return out, nil
}

func (s *Client) SearchAccounts(ctx context.Context, query string) ([]dto.RankedAccountDTO, error) {
	out := []dto.RankedAccountDTO{}

	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&out).
		SetError(&dto.MessageDTO{}).
		Get("/api/search/accounts")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("search accounts", resp)
	}
	return out, nil
}

func apiError(op string, resp *resty.Response) error {
	if msg, ok := resp.Error().(*dto.MessageDTO); ok && msg.Message != "" {
		return fmt.Errorf("%s failed (%d): %s", op, resp.StatusCode(), msg.Message)
	}
	return fmt.Errorf("%s failed (%d)", op, resp.StatusCode())
}
