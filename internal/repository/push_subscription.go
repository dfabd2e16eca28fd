package repository

import (
	"context"
	"time"

	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PushSubscriptionRepository handles database operations for push subscriptions
type PushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository creates a new push subscription repository
func NewPushSubscriptionRepository(db *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

// Upsert stores a subscription; an endpoint already known is re-bound to
// the given user with fresh keys.
func (r *PushSubscriptionRepository) Upsert(ctx context.Context, sub *models.PushSubscription) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_id":         sub.UserID,
			"organization_id": sub.OrganizationID,
			"p256dh":          sub.P256dh,
			"auth":            sub.Auth,
			"updated_at":      time.Now(),
		}),
	}).Create(sub).Error
	return translate("save push subscription", err, nil, nil)
}

// ListByUsers returns every subscription owned by one of userIDs
func (r *PushSubscriptionRepository) ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]models.PushSubscription, error) {
	if len(userIDs) == 0 {
		return []models.PushSubscription{}, nil
	}
	var subs []models.PushSubscription
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&subs).Error
	if err != nil {
		return nil, translate("list push subscriptions", err, nil, nil)
	}
	return subs, nil
}

// DeleteByEndpoint removes a subscription the push service reported as gone
func (r *PushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	err := r.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&models.PushSubscription{}).Error
	return translate("delete push subscription", err, nil, nil)
}

// DeleteForUser removes the user's subscription for endpoint
func (r *PushSubscriptionRepository) DeleteForUser(ctx context.Context, userID uuid.UUID, endpoint string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&models.PushSubscription{}).Error
	return translate("delete push subscription", err, nil, nil)
}
