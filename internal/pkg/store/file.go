package store

import (
	"Instaclone/internal/model"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// FileStore 单个 JSON 文件承载全部集合
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore 打开（必要时创建）存储文件，保证三个集合存在
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create store dir")
	}

	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	if err = s.persist(snap); err != nil {
		return nil, err
	}
	return s, nil
}

// Path 返回存储文件路径，备份任务使用
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Read(ctx context.Context) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.load()
}

func (s *FileStore) Write(ctx context.Context, snap *model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(snap)
}

func (s *FileStore) Update(ctx context.Context, fn func(snap *model.Snapshot) (bool, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}

	dirty, err := fn(snap)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	return s.persist(snap)
}

func (s *FileStore) load() (*model.Snapshot, error) {
	snap := &model.Snapshot{}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			snap.Normalize()
			return snap, nil
		}
		return nil, errors.Wrap(err, "read store file")
	}

	if len(b) > 0 {
		if err = json.Unmarshal(b, snap); err != nil {
			return nil, errors.Wrap(err, "decode store file")
		}
	}
	snap.Normalize()
	return snap, nil
}

// persist 先写临时文件再 rename，避免半写状态
func (s *FileStore) persist(snap *model.Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode store file")
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, b, 0o644); err != nil {
		return errors.Wrap(err, "write store tmp file")
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace store file")
	}
	return nil
}
