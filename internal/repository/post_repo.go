package repository

import (
	"Instaclone/internal/model"
	"Instaclone/internal/pkg/store"
	"context"
	"sort"
)

type PostRepo interface {
	// ListByUser 某用户的全部帖子，最新的在前
	ListByUser(ctx context.Context, userID int64) ([]model.Post, error)
	// CountByUser 某用户的发帖数，基于全量帖子集合
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

type postRepoImpl struct {
	store store.Store
}

func NewPostRepo(st store.Store) PostRepo {
	return &postRepoImpl{store: st}
}

func (s *postRepoImpl) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0)
	for i := range snap.Posts {
		if snap.Posts[i].UserID == userID {
			posts = append(posts, snap.Posts[i])
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedTime().After(posts[j].CreatedTime())
	})
	return posts, nil
}

func (s *postRepoImpl) CountByUser(ctx context.Context, userID int64) (int64, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return 0, err
	}

	var n int64
	for i := range snap.Posts {
		if snap.Posts[i].UserID == userID {
			n++
		}
	}
	return n, nil
}
