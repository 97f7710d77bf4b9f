package wire

import (
	"Instaclone/internal/api"
	"Instaclone/internal/api/config"
	"Instaclone/internal/api/handler"
	"Instaclone/internal/job"
	"Instaclone/internal/pkg/cron"
	"Instaclone/internal/pkg/store"
	"Instaclone/internal/repository"
	"Instaclone/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	Store   store.Store
	CronMgr *cron.Manager
}

func BuildApplication(st *store.FileStore, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(st)
	postRepo := repository.NewPostRepo(st)

	feedService := service.NewFeedService(st)
	searchService := service.NewSearchService(st)
	postActionService := service.NewPostActionService(st)
	userService := service.NewUserService(userRepo, postRepo)

	handlers := &api.HandlersGroup{
		PostHandler:   handler.NewPostHandler(feedService, postActionService),
		SearchHandler: handler.NewSearchHandler(searchService),
		UserHandler:   handler.NewUserHandler(userService),
	}

	router := api.SetupRouter(handlers)

	backupJob := job.NewBackupJob(st, cfg.Store.Backup.Dir)
	cronMgr := cron.NewCronManager(backupJob, cfg.Store.Backup)

	return &ApplicationContainer{
		Router:  router,
		Store:   st,
		CronMgr: cronMgr,
	}, nil
}
