package cron

import (
	"context"
	"time"

	"tripdesk/config"
	"tripdesk/services/audit"
	"tripdesk/services/experience"
	"tripdesk/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Task types handled by the maintenance worker.
const (
	TypeAuditPurge = "audit:purge"
	TypeImagePurge = "images:purge"
)

// Soft-deleted image documents picked up per purge run.
const imagePurgeBatch = 100

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitMaintenanceWorker starts the async worker and its nightly schedule:
// audit entries past the retention window and soft-deleted images past the
// grace window are purged once a day.
func InitMaintenanceWorker(auditSvc audit.AuditService, imageSvc experience.ImageService) {
	opts := redisOpts()

	srv := asynq.NewServer(opts, asynq.Config{
		Concurrency: 2,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAuditPurge, handleAuditPurge(auditSvc))
	mux.HandleFunc(TypeImagePurge, handleImagePurge(imageSvc))

	scheduler := asynq.NewScheduler(opts, nil)
	if _, err := scheduler.Register("0 3 * * *", asynq.NewTask(TypeAuditPurge, nil)); err != nil {
		utils.GetLogger().Error("Worker: audit purge schedule registration failed", zap.Error(err))
	}
	if _, err := scheduler.Register("30 3 * * *", asynq.NewTask(TypeImagePurge, nil)); err != nil {
		utils.GetLogger().Error("Worker: image purge schedule registration failed", zap.Error(err))
	}

	go func() {
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				utils.GetLogger().Error("Worker: failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					utils.GetLogger().Fatal("Worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			utils.GetLogger().Error("Worker: scheduler failed", zap.Error(err))
		}
	}()
}

func handleAuditPurge(svc audit.AuditService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		removed, err := svc.PurgeOlderThan(config.AppConfig.AuditRetentionDays)
		if err != nil {
			utils.GetLogger().Error("Worker: audit purge failed", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("Worker: audit purge complete", zap.Int64("removed", removed))
		return nil
	}
}

func handleImagePurge(svc experience.ImageService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		purged, err := svc.PurgeExpired(ctx, config.AppConfig.ImageGraceDays, imagePurgeBatch)
		if err != nil {
			utils.GetLogger().Error("Worker: image purge failed", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("Worker: image purge complete", zap.Int("purged", purged))
		return nil
	}
}
