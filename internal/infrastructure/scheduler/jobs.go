package scheduler

import (
	"context"
	"fmt"
	"time"

	escalationApp "praxis/internal/application/escalation"
	escUsecases "praxis/internal/application/escalation/usecases"
	outboxApp "praxis/internal/application/outbox"
	outboxUsecases "praxis/internal/application/outbox/usecases"
	sharedConfig "praxis/internal/shared/config"
	"praxis/internal/shared/logger"
)

// OrgLister enumerates the tenants the SLA scan must visit.
type OrgLister interface {
	ListActiveOrgIDs(ctx context.Context) ([]uint, error)
}

// SLAScanJob runs one SLA check per active organization. A failing org is
// logged and skipped; the scan still visits the rest.
type SLAScanJob struct {
	orgs     OrgLister
	service  *escalationApp.Service
	cooldown time.Duration
	logger   logger.Interface
}

func NewSLAScanJob(orgs OrgLister, service *escalationApp.Service, cfg sharedConfig.EscalationConfig, log logger.Interface) *SLAScanJob {
	return &SLAScanJob{
		orgs:     orgs,
		service:  service,
		cooldown: time.Duration(cfg.CooldownHours) * time.Hour,
		logger:   log.Named("sla-scan-job"),
	}
}

func (j *SLAScanJob) Execute(ctx context.Context) (int, error) {
	orgIDs, err := j.orgs.ListActiveOrgIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate organizations: %w", err)
	}

	escalated := 0
	for _, orgID := range orgIDs {
		if err := ctx.Err(); err != nil {
			return escalated, err
		}

		result, err := j.service.RunSLACheck(ctx, escUsecases.RunSLACheckCommand{
			OrgID:    orgID,
			Cooldown: j.cooldown,
		})
		if err != nil {
			j.logger.Errorw("sla check failed for organization", "org_id", orgID, "error", err)
			continue
		}

		escalated += result.Escalated
		if len(result.Errors) > 0 {
			j.logger.Warnw("sla check completed with item errors",
				"org_id", orgID,
				"checked", result.Checked,
				"escalated", result.Escalated,
				"errors", len(result.Errors),
			)
		}
	}
	return escalated, nil
}

// OutboxDrainJob drains one batch of queued notifications.
type OutboxDrainJob struct {
	service        *outboxApp.Service
	batchSize      int
	maxAttempts    int
	perItemTimeout time.Duration
}

func NewOutboxDrainJob(service *outboxApp.Service, cfg sharedConfig.OutboxConfig) *OutboxDrainJob {
	return &OutboxDrainJob{
		service:        service,
		batchSize:      cfg.BatchSize,
		maxAttempts:    cfg.MaxAttempts,
		perItemTimeout: time.Duration(cfg.PerItemTimeoutSeconds) * time.Second,
	}
}

func (j *OutboxDrainJob) Execute(ctx context.Context) (int, error) {
	result, err := j.service.ProcessQueue(ctx, outboxUsecases.ProcessQueueCommand{
		BatchSize:      j.batchSize,
		MaxAttempts:    j.maxAttempts,
		PerItemTimeout: j.perItemTimeout,
	})
	if err != nil {
		return 0, err
	}
	return result.Processed, nil
}

// StaleClaimReaperJob returns abandoned SENDING rows to QUEUED.
type StaleClaimReaperJob struct {
	service *outboxApp.Service
	lease   time.Duration
}

func NewStaleClaimReaperJob(service *outboxApp.Service, cfg sharedConfig.OutboxConfig) *StaleClaimReaperJob {
	return &StaleClaimReaperJob{
		service: service,
		lease:   time.Duration(cfg.ClaimLeaseSeconds) * time.Second,
	}
}

func (j *StaleClaimReaperJob) Execute(ctx context.Context) (int, error) {
	result, err := j.service.ReleaseStaleClaims(ctx, outboxUsecases.ReleaseStaleClaimsCommand{
		Lease: j.lease,
	})
	if err != nil {
		return 0, err
	}
	return int(result.Released), nil
}
