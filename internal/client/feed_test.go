package client

import (
	"Instaclone/internal/api/dto"
	"context"
	"errors"
	"sync"
	"testing"
)

// fakeFeedAPI 按固定数据集切页，serve 可替换以注入阻塞或错误
type fakeFeedAPI struct {
	mu    sync.Mutex
	calls int
	serve func(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error)
}

func (f *fakeFeedAPI) FetchPosts(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error) {
	f.mu.Lock()
	f.calls++
	serve := f.serve
	f.mu.Unlock()
	return serve(ctx, query, page, limit)
}

func (f *fakeFeedAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func pagedServe(total int) func(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error) {
	return func(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error) {
		start := (page - 1) * limit
		end := start + limit
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		data := make([]dto.PostFeedDTO, 0, end-start)
		for id := start + 1; id <= end; id++ {
			data = append(data, dto.PostFeedDTO{PostDTO: dto.PostDTO{ID: int64(id)}})
		}
		return &dto.FeedPageDTO{
			Data:    data,
			Page:    page,
			Limit:   limit,
			Total:   total,
			HasMore: (page-1)*limit+limit < total,
		}, nil
	}
}

func TestFeedController_ResetLoadsFirstPage(t *testing.T) {
	api := &fakeFeedAPI{serve: pagedServe(23)}
	fc := NewFeedController(api, 5)

	fc.Reset(context.Background(), "")

	if got := fc.Posts(); len(got) != 5 || got[0].ID != 1 {
		t.Fatalf("posts after reset: %+v", got)
	}
	if fc.Page() != 1 || !fc.HasMore() || fc.IsLoading() || fc.Err() != "" {
		t.Fatalf("state: page=%d hasMore=%v loading=%v err=%q", fc.Page(), fc.HasMore(), fc.IsLoading(), fc.Err())
	}
}

func TestFeedController_LoadMoreAccumulatesAllPages(t *testing.T) {
	api := &fakeFeedAPI{serve: pagedServe(23)}
	fc := NewFeedController(api, 5)
	ctx := context.Background()

	fc.Reset(ctx, "")
	for fc.CanLoadMore() {
		fc.LoadMore(ctx)
	}

	posts := fc.Posts()
	if len(posts) != 23 {
		t.Fatalf("len=%d, want 23", len(posts))
	}
	for i, p := range posts {
		if p.ID != int64(i+1) {
			t.Fatalf("posts[%d].ID=%d, want %d", i, p.ID, i+1)
		}
	}
	if fc.Page() != 5 || fc.HasMore() {
		t.Fatalf("page=%d hasMore=%v", fc.Page(), fc.HasMore())
	}
	if api.callCount() != 5 {
		t.Fatalf("calls=%d, want 5", api.callCount())
	}
}

func TestFeedController_LoadMoreIsSingleFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	api := &fakeFeedAPI{serve: pagedServe(23)}
	fc := NewFeedController(api, 5)
	ctx := context.Background()

	fc.Reset(ctx, "")

	api.mu.Lock()
	base := pagedServe(23)
	api.serve = func(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error) {
		close(entered)
		<-release
		return base(ctx, query, page, limit)
	}
	api.mu.Unlock()

	done := make(chan struct{})
	go func() {
		fc.LoadMore(ctx)
		close(done)
	}()
	<-entered

	// 在途期间的重复触发必须是空操作
	fc.LoadMore(ctx)
	if fc.CanLoadMore() {
		t.Fatal("CanLoadMore must report false while a fetch is in flight")
	}

	close(release)
	<-done

	if got := api.callCount(); got != 2 {
		t.Fatalf("calls=%d, want 2", got)
	}
	if len(fc.Posts()) != 10 {
		t.Fatalf("len=%d, want 10", len(fc.Posts()))
	}
}

func TestFeedController_ResetDiscardsStaleResult(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var staleCtx context.Context

	api := &fakeFeedAPI{}
	api.serve = func(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error) {
		if query == "old" {
			staleCtx = ctx
			close(entered)
			<-release
			return &dto.FeedPageDTO{
				Data: []dto.PostFeedDTO{{PostDTO: dto.PostDTO{ID: 100}}},
				Page: page, Limit: limit, Total: 1,
			}, nil
		}
		return &dto.FeedPageDTO{
			Data: []dto.PostFeedDTO{{PostDTO: dto.PostDTO{ID: 200}}},
			Page: page, Limit: limit, Total: 1,
		}, nil
	}
	fc := NewFeedController(api, 5)

	done := make(chan struct{})
	go func() {
		fc.Reset(context.Background(), "old")
		close(done)
	}()
	<-entered

	fc.Reset(context.Background(), "new")

	if staleCtx.Err() == nil {
		t.Fatal("superseded fetch context must be canceled")
	}

	close(release)
	<-done

	posts := fc.Posts()
	if len(posts) != 1 || posts[0].ID != 200 {
		t.Fatalf("stale result leaked into list: %+v", posts)
	}
	if fc.IsLoading() {
		t.Fatal("stale fetch must not clear the new generation's state")
	}
}

func TestFeedController_FetchErrorKeepsListAndPage(t *testing.T) {
	api := &fakeFeedAPI{serve: pagedServe(23)}
	fc := NewFeedController(api, 5)
	ctx := context.Background()

	fc.Reset(ctx, "")
	before := fc.Posts()

	api.mu.Lock()
	api.serve = func(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error) {
		return nil, errors.New("网络错误")
	}
	api.mu.Unlock()

	fc.LoadMore(ctx)

	if fc.Err() == "" {
		t.Fatal("Err must surface the fetch failure")
	}
	if got := fc.Posts(); len(got) != len(before) {
		t.Fatalf("list changed on error: %d -> %d", len(before), len(got))
	}
	if fc.Page() != 1 {
		t.Fatalf("page=%d, want 1", fc.Page())
	}
	if !fc.CanLoadMore() {
		t.Fatal("a failed page must stay retryable")
	}
}

func TestScrollTrigger_DrivesLoadMore(t *testing.T) {
	api := &fakeFeedAPI{serve: pagedServe(8)}
	fc := NewFeedController(api, 5)
	fc.Reset(context.Background(), "")

	events := make(chan struct{})
	trigger := NewScrollTrigger(fc, events)

	done := make(chan struct{})
	go func() {
		trigger.Run(context.Background())
		close(done)
	}()

	events <- struct{}{} // 加载第 2 页
	events <- struct{}{} // 没有更多数据，空操作
	close(events)
	<-done

	if got := len(fc.Posts()); got != 8 {
		t.Fatalf("len=%d, want 8", got)
	}
	if api.callCount() != 2 {
		t.Fatalf("calls=%d, want 2", api.callCount())
	}
}
