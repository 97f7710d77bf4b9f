package service

import (
	"Instaclone/internal/api/dto"
	"Instaclone/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	GetUserByUsername(ctx context.Context, username string) (*dto.FeedUserDTO, error)
	GetUserPosts(ctx context.Context, username string) ([]dto.PostDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	postRepo repository.PostRepo
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *userServiceImpl) GetUserByUsername(ctx context.Context, username string) (*dto.FeedUserDTO, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	out := &dto.FeedUserDTO{}
	if err = copier.Copy(out, user); err != nil {
		return nil, err
	}
	out.PostsCount, err = s.postRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetUserPosts 用户不存在时返回空列表而不是 404，与信息流接口的宽松风格一致
func (s *userServiceImpl) GetUserPosts(ctx context.Context, username string) ([]dto.PostDTO, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []dto.PostDTO{}, nil
	}

	posts, err := s.postRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PostDTO, 0, len(posts))
	for i := range posts {
		item := dto.PostDTO{}
		if err = copier.Copy(&item, &posts[i]); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
