package wire

import (
	"RunBriefing/internal/api"
	"RunBriefing/internal/api/handler"
	"RunBriefing/internal/job"
	"RunBriefing/internal/pkg/cron"
	"RunBriefing/internal/repository"
	"RunBriefing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(rdb *redis.Client) (*ApplicationContainer, error) {
	statRepo := repository.NewStatRepo(rdb)
	statService := service.NewStatService(statRepo)

	handlers := &api.HandlersGroup{
		StatsHandler: handler.NewStatsHandler(statService),
		VoteHandler:  handler.NewVoteHandler(statService),
		AdminHandler: handler.NewAdminHandler(statService),
	}

	router := api.SetupRouter(handlers)

	snapshotJob := job.NewStatsSnapshotJob(statService)
	cronMgr := cron.NewCronManager(snapshotJob)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
