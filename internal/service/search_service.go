package service

import (
	"Instaclone/internal/api/dto"
	"Instaclone/internal/pkg/metrics"
	"Instaclone/internal/pkg/store"
	"context"
	"sort"
	"strings"

	"github.com/jinzhu/copier"
)

// TopAccounts 搜索结果条数上限
const TopAccounts = 5

// 加分项，命中前缀优于命中子串
const (
	scoreUsernamePrefix   = 100
	scoreUsernameContains = 60
	scoreNamePrefix       = 40
	scoreNameContains     = 20
)

type SearchService interface {
	SearchAccounts(ctx context.Context, query string) ([]dto.RankedAccountDTO, error)
}

type searchServiceImpl struct {
	store store.Store
}

func NewSearchService(st store.Store) SearchService {
	return &searchServiceImpl{store: st}
}

type rankedAccount struct {
	userIdx int
	userID  int64
	score   float64
}

// SearchAccounts 账号搜索：用户名/昵称子串匹配加权打分，取前五。
// 空查询直接返回空列表，不读存储。
func (s *searchServiceImpl) SearchAccounts(ctx context.Context, query string) ([]dto.RankedAccountDTO, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []dto.RankedAccountDTO{}, nil
	}

	metrics.SearchRequests.Inc()

	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	scored := make([]rankedAccount, 0)
	for i := range snap.Users {
		u := &snap.Users[i]
		username := strings.ToLower(u.Username)
		name := ""
		if u.Name != nil {
			name = strings.ToLower(*u.Name)
		}

		// 两个字段都不含关键词的账号直接排除，不参与打分
		if !strings.Contains(username, q) && !strings.Contains(name, q) {
			continue
		}

		var score float64
		if strings.HasPrefix(username, q) {
			score += scoreUsernamePrefix
		} else if strings.Contains(username, q) {
			score += scoreUsernameContains
		}
		if strings.HasPrefix(name, q) {
			score += scoreNamePrefix
		} else if strings.Contains(name, q) {
			score += scoreNameContains
		}

		// 连续长度加分：短用户名略占优
		if bonus := 20 - float64(len(username))*0.1; bonus > 0 {
			score += bonus
		}

		scored = append(scored, rankedAccount{userIdx: i, userID: u.ID, score: score})
	}

	// 得分相同按用户 ID 升序，排序结果可复现
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].userID < scored[j].userID
	})

	if len(scored) > TopAccounts {
		scored = scored[:TopAccounts]
	}

	postCounts := countPostsByUser(snap.Posts)

	out := make([]dto.RankedAccountDTO, 0, len(scored))
	for _, r := range scored {
		acc := dto.RankedAccountDTO{}
		if err = copier.Copy(&acc, &snap.Users[r.userIdx]); err != nil {
			return nil, err
		}
		acc.PostsCount = postCounts[r.userID]
		out = append(out, acc)
	}
	return out, nil
}
