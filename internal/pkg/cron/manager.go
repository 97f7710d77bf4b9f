package cron

import (
	"Instaclone/internal/api/config"
	"Instaclone/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine    *cron.Cron
	backupJob *job.BackupJob
	backupCfg config.BackupConfig
}

func NewCronManager(backupJob *job.BackupJob, backupCfg config.BackupConfig) *Manager {
	return &Manager{
		engine:    cron.New(cron.WithSeconds()),
		backupJob: backupJob,
		backupCfg: backupCfg,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if !s.backupCfg.Enable {
		return nil
	}
	if _, err := s.engine.AddJob(s.backupCfg.Spec, s.backupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
