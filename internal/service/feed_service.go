package service

import (
	"Instaclone/internal/api/dto"
	"Instaclone/internal/model"
	"Instaclone/internal/pkg/metrics"
	"Instaclone/internal/pkg/store"
	"Instaclone/internal/pkg/util"
	"context"
	"sort"
	"strings"

	"github.com/jinzhu/copier"
)

type FeedService interface {
	GetPosts(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error)
}

type feedServiceImpl struct {
	store store.Store
}

func NewFeedService(st store.Store) FeedService {
	return &feedServiceImpl{store: st}
}

// GetPosts 信息流查询：按时间倒序、可选文本过滤、分页并展开作者与地点。
// 每次调用都读最新快照，不做缓存。
func (s *feedServiceImpl) GetPosts(ctx context.Context, query string, page, limit int) (*dto.FeedPageDTO, error) {
	metrics.FeedRequests.Inc()

	page = util.ClampPage(page)
	limit = util.ClampLimit(limit)
	q := strings.ToLower(strings.TrimSpace(query))

	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	postCounts := countPostsByUser(snap.Posts)

	userByID := make(map[int64]*model.User, len(snap.Users))
	for i := range snap.Users {
		userByID[snap.Users[i].ID] = &snap.Users[i]
	}
	locByID := make(map[int64]*model.Location, len(snap.Locations))
	for i := range snap.Locations {
		locByID[snap.Locations[i].ID] = &snap.Locations[i]
	}

	// 稳定排序：时间相同的帖子保持存储顺序，保证翻页切片可复现
	posts := make([]model.Post, len(snap.Posts))
	copy(posts, snap.Posts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedTime().After(posts[j].CreatedTime())
	})

	if q != "" {
		filtered := posts[:0]
		for _, p := range posts {
			username := ""
			if u, ok := userByID[p.UserID]; ok {
				username = u.Username
			}
			caption := ""
			if p.Caption != nil {
				caption = *p.Caption
			}
			hay := strings.ToLower(username + " " + caption)
			if strings.Contains(hay, q) {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	total := len(posts)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	paged := posts[start:end]

	items := make([]dto.PostFeedDTO, 0, len(paged))
	for i := range paged {
		item := dto.PostFeedDTO{}
		if err = copier.Copy(&item.PostDTO, &paged[i]); err != nil {
			return nil, err
		}

		if u, ok := userByID[paged[i].UserID]; ok {
			feedUser := &dto.FeedUserDTO{}
			if err = copier.Copy(feedUser, u); err != nil {
				return nil, err
			}
			feedUser.PostsCount = postCounts[u.ID]
			item.User = feedUser
		}

		if paged[i].LocationID != nil {
			if l, ok := locByID[*paged[i].LocationID]; ok {
				item.Location = &dto.LocationDTO{ID: l.ID, Name: l.Name}
			}
		}

		items = append(items, item)
	}

	return &dto.FeedPageDTO{
		Data:    items,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: (page-1)*limit+limit < total,
	}, nil
}

// countPostsByUser 按作者统计全量帖子数，派生字段 postsCount 的来源
func countPostsByUser(posts []model.Post) map[int64]int64 {
	counts := make(map[int64]int64, len(posts))
	for i := range posts {
		counts[posts[i].UserID]++
	}
	return counts
}
