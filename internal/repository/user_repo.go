package repository

import (
	"Instaclone/internal/model"
	"Instaclone/internal/pkg/store"
	"context"
	"strings"
)

type UserRepo interface {
	// FindByUsername 大小写不敏感查找，未命中返回 (nil, nil)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepoImpl struct {
	store store.Store
}

func NewUserRepo(st store.Store) UserRepo {
	return &userRepoImpl{store: st}
}

func (s *userRepoImpl) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(username)
	for i := range snap.Users {
		if strings.ToLower(snap.Users[i].Username) == want {
			u := snap.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}
