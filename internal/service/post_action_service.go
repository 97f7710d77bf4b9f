package service

import (
	"Instaclone/internal/api/dto"
	"Instaclone/internal/model"
	"Instaclone/internal/pkg/metrics"
	"Instaclone/internal/pkg/store"
	"context"
	log "log/slog"
)

type PostActionService interface {
	LikePost(ctx context.Context, postID int64) (*dto.LikeStateDTO, error)
	UnlikePost(ctx context.Context, postID int64) (*dto.LikeStateDTO, error)
}

type postActionServiceImpl struct {
	store store.Store
}

func NewPostActionService(st store.Store) PostActionService {
	return &postActionServiceImpl{store: st}
}

// LikePost 点赞。已点赞的帖子不再累加，直接返回当前状态
func (s *postActionServiceImpl) LikePost(ctx context.Context, postID int64) (*dto.LikeStateDTO, error) {
	metrics.IncLikeToggle("like")

	var state dto.LikeStateDTO
	err := s.store.Update(ctx, func(snap *model.Snapshot) (bool, error) {
		post := snap.FindPost(postID)
		if post == nil {
			return false, ErrPostNotFound
		}

		if post.Liked {
			state = likeState(post)
			return false, nil
		}

		post.LikesCount++
		post.Liked = true
		state = likeState(post)
		metrics.StoreWrites.Inc()
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// UnlikePost 取消点赞。未点赞时是无副作用的空操作，计数下限为 0
func (s *postActionServiceImpl) UnlikePost(ctx context.Context, postID int64) (*dto.LikeStateDTO, error) {
	metrics.IncLikeToggle("unlike")

	var state dto.LikeStateDTO
	err := s.store.Update(ctx, func(snap *model.Snapshot) (bool, error) {
		post := snap.FindPost(postID)
		if post == nil {
			return false, ErrPostNotFound
		}

		if !post.Liked {
			log.InfoContext(ctx, "unlike on unliked post", "post_id", postID)
			state = likeState(post)
			return false, nil
		}

		post.LikesCount--
		if post.LikesCount < 0 {
			post.LikesCount = 0
		}
		post.Liked = false
		state = likeState(post)
		metrics.StoreWrites.Inc()
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func likeState(post *model.Post) dto.LikeStateDTO {
	return dto.LikeStateDTO{
		PostID:     post.ID,
		LikesCount: post.LikesCount,
		Liked:      post.Liked,
	}
}
