package store

import (
	"Instaclone/internal/model"
	"context"
	"sync"

	"github.com/goccy/go-json"
)

// MemoryStore 内存实现，测试用
type MemoryStore struct {
	mu   sync.Mutex
	snap *model.Snapshot

	// Writes 记录落盘次数，用于断言无变更时不写
	Writes int
}

func NewMemoryStore(snap *model.Snapshot) *MemoryStore {
	if snap == nil {
		snap = &model.Snapshot{}
	}
	snap.Normalize()
	return &MemoryStore{snap: clone(snap)}
}

func (s *MemoryStore) Read(ctx context.Context) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.snap), nil
}

func (s *MemoryStore) Write(ctx context.Context, snap *model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = clone(snap)
	s.Writes++
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, fn func(snap *model.Snapshot) (bool, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := clone(s.snap)
	dirty, err := fn(next)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	s.snap = next
	s.Writes++
	return nil
}

// clone 经由 JSON 深拷贝，读方拿不到内部快照的引用
func clone(snap *model.Snapshot) *model.Snapshot {
	b, _ := json.Marshal(snap)
	out := &model.Snapshot{}
	_ = json.Unmarshal(b, out)
	out.Normalize()
	return out
}
