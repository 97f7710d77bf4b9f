package client

import (
	"Instaclone/internal/api/dto"
	"context"
	"errors"
	"sync"
)

// ErrUnknownPost 切换了不在本地列表中的帖子
var ErrUnknownPost = errors.New("帖子不在本地列表中")

// LikeStateSink 点赞状态的本地宿主，信息流控制器实现它
type LikeStateSink interface {
	LikeState(postID int64) (dto.LikeStateDTO, bool)
	ApplyLikeState(state dto.LikeStateDTO)
}

type toggleOp struct {
	gen    int
	cancel context.CancelFunc
}

// LikeController 乐观点赞切换：先改本地再发请求，失败整体回滚。
// 同一帖子上新的切换会取代未完成的旧切换，被取代的调用不再影响状态；
// 不同帖子的切换互不相干，可以同时在途。
type LikeController struct {
	api  LikeAPI
	sink LikeStateSink

	mu  sync.Mutex
	ops map[int64]*toggleOp
}

func NewLikeController(api LikeAPI, sink LikeStateSink) *LikeController {
	return &LikeController{
		api:  api,
		sink: sink,
		ops:  make(map[int64]*toggleOp),
	}
}

// Toggle 翻转一个帖子的点赞状态
func (c *LikeController) Toggle(ctx context.Context, postID int64) error {
	c.mu.Lock()

	snapshot, ok := c.sink.LikeState(postID)
	if !ok {
		c.mu.Unlock()
		return ErrUnknownPost
	}

	op := c.ops[postID]
	if op == nil {
		op = &toggleOp{}
		c.ops[postID] = op
	}
	// 取代同一帖子上未完成的切换
	if op.cancel != nil {
		op.cancel()
	}
	op.gen++
	gen := op.gen

	toggleCtx, cancel := context.WithCancel(ctx)
	op.cancel = cancel

	// 乐观更新先于网络调用可见
	next := snapshot
	next.Liked = !snapshot.Liked
	if next.Liked {
		next.LikesCount = snapshot.LikesCount + 1
	} else {
		next.LikesCount = snapshot.LikesCount - 1
		if next.LikesCount < 0 {
			next.LikesCount = 0
		}
	}
	c.sink.ApplyLikeState(next)
	c.mu.Unlock()

	var state *dto.LikeStateDTO
	var err error
	if next.Liked {
		state, err = c.api.Like(toggleCtx, postID)
	} else {
		state, err = c.api.Unlike(toggleCtx, postID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// 只允许最近一次切换的结果落地
	if op.gen != gen {
		return nil
	}
	op.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		// 失败时回滚到切换前快照
		c.sink.ApplyLikeState(snapshot)
		return err
	}

	// 服务端返回的状态为准
	c.sink.ApplyLikeState(*state)
	return nil
}
