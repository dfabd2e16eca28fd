package main

import (
	"context"

	"volunteer-scheduler-backend/internal/notifier"
	"volunteer-scheduler-backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// changeNotifier delivers service changes inline. The CLI exits right after
// saving, so nothing may be left in a background queue.
type changeNotifier struct {
	ctx        context.Context
	dispatcher *notifier.Dispatcher
	logger     *zap.Logger
}

func (n *changeNotifier) Publish(change notifier.ServiceChange) bool {
	result, err := n.dispatcher.HandleChange(n.ctx, change)
	if err != nil {
		n.logger.Warn("Failed to notify assignees",
			zap.String("service_id", change.ServiceID.String()), zap.Error(err))
		return false
	}
	n.logger.Debug("Assignees notified",
		zap.String("service_id", change.ServiceID.String()),
		zap.Int("pushed", result.Pushed),
		zap.Int("emailed", result.Emailed))
	return true
}

// newChangeNotifier wires the channels that are configured. Without VAPID
// keys or SES settings the change is still diffed but nothing is sent.
func (a *App) newChangeNotifier(ctx context.Context, db *gorm.DB) *changeNotifier {
	opts := notifier.DispatcherOptions{
		Subscriptions: repository.NewPushSubscriptionRepository(db),
		Volunteers:    repository.NewVolunteerRepository(db),
		AppBaseURL:    a.cfg.AppBaseURL,
	}
	if push, err := notifier.NewWebPushSender(a.cfg.VAPIDPublicKey, a.cfg.VAPIDPrivateKey, a.cfg.VAPIDSubject); err == nil {
		opts.Push = push
	} else {
		a.logger.Debug("Push notifications disabled", zap.Error(err))
	}
	if a.cfg.EmailEnabled() {
		if email, err := notifier.NewSESEmailSender(ctx, a.cfg.SESRegion, a.cfg.SESFromEmail, a.cfg.SESFromName); err == nil {
			opts.Email = email
		} else {
			a.logger.Warn("Email notifications disabled", zap.Error(err))
		}
	}
	return &changeNotifier{ctx: ctx, dispatcher: notifier.NewDispatcher(opts), logger: a.logger}
}
