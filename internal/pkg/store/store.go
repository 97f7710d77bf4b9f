package store

import (
	"Instaclone/internal/model"
	"context"
)

// Store 文档存储接口。整文档读、整文档写，无事务
type Store interface {
	// Read 加载最新快照
	Read(ctx context.Context) (*model.Snapshot, error)
	// Write 持久化整个快照，last-write-wins
	Write(ctx context.Context, snap *model.Snapshot) error
	// Update 串行化的读-改-写。fn 返回 dirty=false 时跳过落盘
	Update(ctx context.Context, fn func(snap *model.Snapshot) (dirty bool, err error)) error
}
