package service

import (
	"context"
	"encoding/json"
	"fmt"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/logger"
	"volunteer-scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit actions
const (
	AuditActionCreate   = "create"
	AuditActionUpdate   = "update"
	AuditActionDelete   = "delete"
	AuditActionGenerate = "generate"
)

// AuditService records and lists changes made inside an organization
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditService creates a new AuditService
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// AuditLogListResponse represents a paginated list of audit entries
type AuditLogListResponse struct {
	Entries  []models.AuditLog `json:"entries"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Record stores one audit entry. Failures are logged and never returned:
// the audited action has already happened.
func (s *AuditService) Record(ctx context.Context, actor Actor, action, entity, entityID string, details interface{}) {
	entry := &models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	entry.OrganizationID = actor.OrganizationID
	if actor.UserID != uuid.Nil {
		actorID := actor.UserID
		entry.ActorID = &actorID
	}
	if details != nil {
		raw, err := json.Marshal(details)
		if err == nil {
			entry.Details = datatypes.JSON(raw)
		}
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		logger.New().WithFields(map[string]interface{}{
			"action":          action,
			"entity":          entity,
			"entity_id":       entityID,
			"organization_id": actor.OrganizationID.String(),
		}).Warnf("Failed to record audit entry: %v", err)
	}
}

// List returns the organization's audit log, newest first
func (s *AuditService) List(ctx context.Context, actor Actor, page, pageSize int) (*AuditLogListResponse, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	entries, total, err := s.repo.List(ctx, actor.OrganizationID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	return &AuditLogListResponse{
		Entries:  entries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
