// Package bootstrap wires repositories, services and scheduled jobs for the
// CLI entrypoints. The server and worker commands share this assembly.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	auditApp "praxis/internal/application/audit"
	escalationApp "praxis/internal/application/escalation"
	outboxApp "praxis/internal/application/outbox"
	domoutbox "praxis/internal/domain/outbox"
	"praxis/internal/infrastructure/cache"
	"praxis/internal/infrastructure/config"
	"praxis/internal/infrastructure/delivery"
	"praxis/internal/infrastructure/redaction"
	"praxis/internal/infrastructure/repository"
	"praxis/internal/infrastructure/scheduler"
	"praxis/internal/shared/db"
	"praxis/internal/shared/logger"
)

const preferenceCacheTTL = 10 * time.Minute

// Services bundles the application layer facades.
type Services struct {
	Escalation *escalationApp.Service
	Outbox     *outboxApp.Service
	Audit      *auditApp.Service

	workItemRepo *repository.WorkItemRepository
}

// BuildServices assembles the full service graph on top of the database
// connection. When Redis is configured, preference reads go through the
// read-through cache.
func BuildServices(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Services {
	txManager := db.NewTransactionManager(gormDB)

	workItemRepo := repository.NewWorkItemRepository(gormDB)
	recordRepo := repository.NewEscalationRecordRepository(gormDB)
	notificationRepo := repository.NewOutboxNotificationRepository(gormDB)
	directory := repository.NewProjectMemberDirectory(gormDB)
	auditRepo := repository.NewAuditEntryRepository(gormDB, cfg.Audit.AppendRetryAttempts)

	var preferenceRepo domoutbox.PreferenceRepository = repository.NewUserPreferenceRepository(gormDB)
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		preferenceRepo = cache.NewPreferenceCache(preferenceRepo, client, preferenceCacheTTL, log)
		log.Infow("preference cache enabled", "addr", cfg.Redis.GetAddr())
	}

	auditService := auditApp.NewService(auditRepo, redaction.NewFieldMaskRedactor(), log)

	channels := []domoutbox.DeliveryChannel{
		delivery.NewEmailChannel(cfg.Email, log),
		delivery.NewChatChannel(log),
		delivery.NewWebhookChannel(log),
	}
	outboxService := outboxApp.NewService(notificationRepo, preferenceRepo, channels, auditService, log)

	escalationService := escalationApp.NewService(
		workItemRepo,
		recordRepo,
		directory,
		outboxService,
		auditService,
		txManager,
		log,
	)

	return &Services{
		Escalation: escalationService,
		Outbox:     outboxService,
		Audit:      auditService,

		workItemRepo: workItemRepo,
	}
}

// BuildScheduler registers the SLA scan, outbox drain and stale-claim reaper
// on a fresh scheduler manager.
func BuildScheduler(services *Services, cfg *config.Config, log logger.Interface) (*scheduler.SchedulerManager, error) {
	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	slaScanJob := scheduler.NewSLAScanJob(services.workItemRepo, services.Escalation, cfg.Escalation, log)
	scanInterval := time.Duration(cfg.Escalation.ScanIntervalMinutes) * time.Minute
	if err := manager.RegisterEscalationJobs(slaScanJob, scanInterval); err != nil {
		return nil, fmt.Errorf("failed to register escalation jobs: %w", err)
	}

	drainJob := scheduler.NewOutboxDrainJob(services.Outbox, cfg.Outbox)
	reaperJob := scheduler.NewStaleClaimReaperJob(services.Outbox, cfg.Outbox)
	drainInterval := time.Duration(cfg.Outbox.DrainIntervalSeconds) * time.Second
	if err := manager.RegisterOutboxJobs(drainJob, reaperJob, drainInterval); err != nil {
		return nil, fmt.Errorf("failed to register outbox jobs: %w", err)
	}

	return manager, nil
}
