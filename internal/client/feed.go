package client

import (
	"Instaclone/internal/api/dto"
	"context"
	"errors"
	"sync"
)

type mergeMode int

const (
	mergeReplace mergeMode = iota
	mergeAppend
)

// FeedController 驱动顺序翻页：累积帖子列表，同一时刻至多一个在途请求，
// 新一代请求启动后旧请求的结果整体作废。
type FeedController struct {
	api   FeedAPI
	limit int

	mu      sync.Mutex
	query   string
	posts   []dto.PostFeedDTO
	page    int // 0 = 尚未加载
	hasMore bool
	loading bool
	errMsg  string
	gen     int
	cancel  context.CancelFunc
}

func NewFeedController(api FeedAPI, limit int) *FeedController {
	return &FeedController{
		api:     api,
		limit:   limit,
		hasMore: true,
	}
}

// Reset 切换查询词：作废在途请求、清空列表并重新拉取第一页。
// 查询词变化时必须调用，避免新旧结果集混在一起。
func (c *FeedController) Reset(ctx context.Context, query string) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	c.query = query
	c.posts = nil
	c.page = 0
	c.hasMore = true
	c.loading = false
	c.errMsg = ""

	c.fetchLocked(ctx, 1, mergeReplace)
}

// LoadMore 拉取下一页。已在加载或没有更多数据时是空操作
func (c *FeedController) LoadMore(ctx context.Context) {
	c.mu.Lock()
	if c.loading || !c.hasMore {
		c.mu.Unlock()
		return
	}
	c.fetchLocked(ctx, c.page+1, mergeAppend)
}

// fetchLocked 调用时持有 c.mu，网络调用期间释放，返回时已解锁
func (c *FeedController) fetchLocked(ctx context.Context, page int, mode mergeMode) {
	gen := c.gen
	query := c.query
	c.loading = true
	c.errMsg = ""

	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	res, err := c.api.FetchPosts(fetchCtx, query, page, c.limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	// 过期代的结果完全丢弃，loading 等状态归新一代所有
	if gen != c.gen {
		return
	}
	c.cancel = nil
	c.loading = false

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.errMsg = err.Error()
		}
		return
	}

	if mode == mergeReplace {
		c.posts = res.Data
	} else {
		c.posts = append(c.posts, res.Data...)
	}
	c.page = res.Page
	c.hasMore = res.HasMore
}

// CanLoadMore 供滚动触发器查询
func (c *FeedController) CanLoadMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore && !c.loading
}

// Posts 返回当前累积列表的副本
func (c *FeedController) Posts() []dto.PostFeedDTO {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]dto.PostFeedDTO, len(c.posts))
	copy(out, c.posts)
	return out
}

func (c *FeedController) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *FeedController) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

func (c *FeedController) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *FeedController) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// LikeState 实现 LikeStateSink，点赞控制器从这里取切换前快照
func (c *FeedController) LikeState(postID int64) (dto.LikeStateDTO, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ID == postID {
			return dto.LikeStateDTO{
				PostID:     postID,
				LikesCount: c.posts[i].LikesCount,
				Liked:      c.posts[i].Liked,
			}, true
		}
	}
	return dto.LikeStateDTO{}, false
}

// ApplyLikeState 实现 LikeStateSink，把乐观或服务端状态写回列表
func (c *FeedController) ApplyLikeState(state dto.LikeStateDTO) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ID == state.PostID {
			c.posts[i].LikesCount = state.LikesCount
			c.posts[i].Liked = state.Liked
			return
		}
	}
}
