package job

import (
	"Instaclone/internal/pkg/logger"
	"Instaclone/internal/pkg/store"
	"context"
	log "log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// BackupJob 周期性地把文档存储快照复制到备份目录
type BackupJob struct {
	store store.Store
	dir   string
}

func NewBackupJob(st store.Store, dir string) *BackupJob {
	return &BackupJob{
		store: st,
		dir:   dir,
	}
}

func (s *BackupJob) Run() {
	traceID := "job-backup-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	snap, err := s.store.Read(ctx)
	if err != nil {
		log.ErrorContext(ctx, "backup read store error", "err", err)
		return
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		log.ErrorContext(ctx, "backup create dir error", "err", err)
		return
	}

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.ErrorContext(ctx, "backup encode error", "err", err)
		return
	}

	name := filepath.Join(s.dir, "db-"+time.Now().Format("20060102T150405")+".json")
	if err = os.WriteFile(name, b, 0o644); err != nil {
		log.ErrorContext(ctx, "backup write error", "file", name, "err", err)
		return
	}

	log.InfoContext(ctx, "BackupJob finished", "file", name,
		"posts", len(snap.Posts), "users", len(snap.Users))
}
