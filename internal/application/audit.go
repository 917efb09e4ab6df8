package application

import (
	"context"
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/audit"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/pkg/utils"
)

const defaultAuditPageSize = 100

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

type AuditQuery struct {
	UserID       *uint      `json:"user_id"`
	ResourceType *string    `json:"resource_type"`
	ResourceID   *string    `json:"resource_id"`
	Action       *string    `json:"action"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Limit        int        `json:"limit" binding:"omitempty,min=1,max=1000"`
	Offset       int        `json:"offset" binding:"omitempty,min=0"`
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, q AuditQuery) ([]audit.AuditLog, error) {
	if q.Limit == 0 {
		q.Limit = defaultAuditPageSize
	}
	logs, err := s.Repos.WithContext(ctx).Audit.GetAuditLogs(repository.AuditQueryParams{
		UserID:       q.UserID,
		ResourceType: q.ResourceType,
		ResourceID:   q.ResourceID,
		Action:       q.Action,
		StartTime:    q.StartTime,
		EndTime:      q.EndTime,
		Limit:        q.Limit,
		Offset:       q.Offset,
	})
	if err != nil {
		return nil, storageErr("failed to read audit logs", err)
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	return logs, nil
}

// Prune deletes audit rows older than retentionDays.
func (s *AuditService) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, validationf("retention must be at least one day, got %d", retentionDays)
	}
	n, err := s.Repos.WithContext(ctx).Audit.DeleteOldAuditLogs(retentionDays)
	if err != nil {
		return 0, storageErr("failed to prune audit logs", err)
	}
	return n, nil
}

func recordAudit(repos *repository.Repos, actorID uint, action, resourceType string, resourceID uint, before, after any) error {
	if err := utils.LogAudit(repos.Audit, actorID, action, resourceType, resourceID, before, after, ""); err != nil {
		return storageErr("failed to write audit log", err)
	}
	return nil
}
