package service

import (
	"Instaclone/internal/model"
	"Instaclone/internal/pkg/store"
	"context"
	"fmt"
	"testing"
)

func strPtr(s string) *string { return &s }

func seedFeedStore(n int) *store.MemoryStore {
	snap := &model.Snapshot{
		Users: []model.User{
			{ID: 1, Username: "ann"},
			{ID: 2, Username: "bob"},
		},
		Locations: []model.Location{{ID: 7, Name: "Oslo"}},
	}
	for i := 1; i <= n; i++ {
		locID := int64(7)
		snap.Posts = append(snap.Posts, model.Post{
			ID:         int64(i),
			UserID:     int64(i%2 + 1),
			Caption:    strPtr(fmt.Sprintf("post %d", i)),
			ImageURLs:  []string{fmt.Sprintf("img-%d.jpg", i)},
			CreatedAt:  fmt.Sprintf("2024-01-%02dT00:00:00Z", i),
			LocationID: &locID,
		})
	}
	return store.NewMemoryStore(snap)
}

func TestGetPosts_EndToEndExample(t *testing.T) {
	st := store.NewMemoryStore(&model.Snapshot{
		Posts: []model.Post{
			{ID: 1, UserID: 1, CreatedAt: "2024-01-01"},
			{ID: 2, UserID: 2, CreatedAt: "2024-01-02"},
		},
		Users: []model.User{{ID: 1, Username: "ann"}, {ID: 2, Username: "bob"}},
	})
	svc := NewFeedService(st)

	page1, err := svc.GetPosts(context.Background(), "", 1, 1)
	if err != nil {
		t.Fatalf("GetPosts page 1: %v", err)
	}
	if len(page1.Data) != 1 || page1.Data[0].ID != 2 {
		t.Fatalf("page 1 data: %+v", page1.Data)
	}
	if page1.Page != 1 || page1.Limit != 1 || page1.Total != 2 || !page1.HasMore {
		t.Fatalf("page 1 meta: %+v", page1)
	}

	page2, err := svc.GetPosts(context.Background(), "", 2, 1)
	if err != nil {
		t.Fatalf("GetPosts page 2: %v", err)
	}
	if len(page2.Data) != 1 || page2.Data[0].ID != 1 {
		t.Fatalf("page 2 data: %+v", page2.Data)
	}
	if page2.HasMore {
		t.Fatalf("page 2 should be the last page")
	}
}

func TestGetPosts_PaginationCompleteness(t *testing.T) {
	const total = 23
	const limit = 5
	svc := NewFeedService(seedFeedStore(total))

	seen := make(map[int64]int)
	var count int
	for page := 1; ; page++ {
		res, err := svc.GetPosts(context.Background(), "", page, limit)
		if err != nil {
			t.Fatalf("GetPosts page %d: %v", page, err)
		}
		for _, p := range res.Data {
			seen[p.ID]++
			count++
		}
		if !res.HasMore {
			break
		}
		if page > total {
			t.Fatalf("pagination did not terminate")
		}
	}

	if count != total {
		t.Fatalf("concatenated pages have %d posts, want %d", count, total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("post %d appeared %d times", id, n)
		}
	}
}

func TestGetPosts_SortNewestFirst(t *testing.T) {
	svc := NewFeedService(seedFeedStore(10))

	res, err := svc.GetPosts(context.Background(), "", 1, 10)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	for i := 1; i < len(res.Data); i++ {
		if res.Data[i-1].CreatedAt < res.Data[i].CreatedAt {
			t.Fatalf("posts not newest-first at index %d: %s < %s",
				i, res.Data[i-1].CreatedAt, res.Data[i].CreatedAt)
		}
	}
}

func TestGetPosts_StableSliceOnEqualTimestamps(t *testing.T) {
	snap := &model.Snapshot{Users: []model.User{{ID: 1, Username: "ann"}}}
	for i := 1; i <= 9; i++ {
		snap.Posts = append(snap.Posts, model.Post{
			ID:        int64(i),
			UserID:    1,
			CreatedAt: "2024-05-05T12:00:00Z",
		})
	}
	svc := NewFeedService(store.NewMemoryStore(snap))

	var first []int64
	for run := 0; run < 5; run++ {
		var got []int64
		for page := 1; page <= 3; page++ {
			res, err := svc.GetPosts(context.Background(), "", page, 3)
			if err != nil {
				t.Fatalf("GetPosts: %v", err)
			}
			for _, p := range res.Data {
				got = append(got, p.ID)
			}
		}
		if run == 0 {
			first = got
			continue
		}
		for i := range first {
			if got[i] != first[i] {
				t.Fatalf("run %d produced different slices: %v vs %v", run, got, first)
			}
		}
	}
	// 时间全部相同：稳定排序应保持存储顺序
	for i, id := range first {
		if id != int64(i+1) {
			t.Fatalf("store order not preserved: %v", first)
		}
	}
}

func TestGetPosts_QueryFiltersUsernameAndCaption(t *testing.T) {
	snap := &model.Snapshot{
		Posts: []model.Post{
			{ID: 1, UserID: 1, Caption: strPtr("sunset at the beach"), CreatedAt: "2024-01-03"},
			{ID: 2, UserID: 2, Caption: strPtr("mountain trip"), CreatedAt: "2024-01-02"},
			{ID: 3, UserID: 99, Caption: strPtr("BEACH day"), CreatedAt: "2024-01-01"}, // 作者不存在
		},
		Users: []model.User{{ID: 1, Username: "ann"}, {ID: 2, Username: "beachbob"}},
	}
	svc := NewFeedService(store.NewMemoryStore(snap))

	res, err := svc.GetPosts(context.Background(), "  BEACH ", 1, 10)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	// 命中：标题含 beach 的 1、3，用户名含 beach 的 2。作者缺失不报错
	if res.Total != 3 || len(res.Data) != 3 {
		t.Fatalf("filtered total=%d len=%d", res.Total, len(res.Data))
	}
	if res.Data[2].User != nil {
		t.Fatalf("missing author should resolve to null user, got %+v", res.Data[2].User)
	}
}

func TestGetPosts_ClampsPageAndLimit(t *testing.T) {
	svc := NewFeedService(seedFeedStore(5))

	res, err := svc.GetPosts(context.Background(), "", -3, 500)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if res.Page != 1 || res.Limit != 50 {
		t.Fatalf("clamped page/limit = %d/%d", res.Page, res.Limit)
	}
	if len(res.Data) != 5 || res.HasMore {
		t.Fatalf("data len=%d hasMore=%v", len(res.Data), res.HasMore)
	}
}

func TestGetPosts_EmptyStore(t *testing.T) {
	svc := NewFeedService(store.NewMemoryStore(nil))

	res, err := svc.GetPosts(context.Background(), "", 1, 10)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if res.Total != 0 || res.HasMore || len(res.Data) != 0 {
		t.Fatalf("empty store page: %+v", res)
	}
}

func TestGetPosts_EnrichesUserAndLocation(t *testing.T) {
	svc := NewFeedService(seedFeedStore(4))

	res, err := svc.GetPosts(context.Background(), "", 1, 10)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	for _, item := range res.Data {
		if item.User == nil {
			t.Fatalf("post %d missing user", item.ID)
		}
		if item.User.PostsCount != 2 {
			t.Fatalf("post %d user postsCount=%d, want 2", item.ID, item.User.PostsCount)
		}
		if item.Location == nil || item.Location.Name != "Oslo" {
			t.Fatalf("post %d location: %+v", item.ID, item.Location)
		}
	}
}

func TestGetPosts_PostsCountOverFullSetNotPage(t *testing.T) {
	svc := NewFeedService(seedFeedStore(20))

	// 过滤后分页，postsCount 仍基于全量帖子
	res, err := svc.GetPosts(context.Background(), "post 1", 1, 3)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if len(res.Data) == 0 {
		t.Fatalf("expected filtered results")
	}
	for _, item := range res.Data {
		if item.User.PostsCount != 10 {
			t.Fatalf("postsCount=%d, want 10 (full set)", item.User.PostsCount)
		}
	}
}
