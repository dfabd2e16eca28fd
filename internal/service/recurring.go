package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// MaxRecurringOccurrences caps how many services one recurrence may create
const MaxRecurringOccurrences = 104

// RecurringRequest expands an RFC 5545 RRULE between From and To (inclusive)
type RecurringRequest struct {
	RRule       string     `json:"rrule" validate:"required" example:"FREQ=WEEKLY;BYDAY=SU"`
	From        string     `json:"from" validate:"required" example:"2025-01-05"`
	To          string     `json:"to" validate:"required" example:"2025-03-30"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	EventTypeID *uuid.UUID `json:"event_type_id"`
}

// CreateRecurring creates one empty service per occurrence in one transaction
func (s *ServiceEventService) CreateRecurring(ctx context.Context, actor Actor, req *RecurringRequest) ([]models.ServiceEvent, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	from, err := parseDate("from", req.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to", req.To)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	dates, err := ExpandRecurrence(req.RRule, from, to)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	services := make([]models.ServiceEvent, len(dates))
	for i, d := range dates {
		services[i] = models.ServiceEvent{
			Date:        d,
			Title:       title,
			EventTypeID: req.EventTypeID,
			Assignments: []models.Assignment{},
		}
		services[i].OrganizationID = actor.OrganizationID
	}
	if len(services) == 0 {
		return services, nil
	}

	if err := s.repo.CreateBatch(ctx, services); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, AuditActionCreate, "service", "", map[string]interface{}{
		"rrule": req.RRule,
		"count": len(services),
	})
	return services, nil
}

// ExpandRecurrence returns the calendar dates of rule between from and to,
// both inclusive. The rule is anchored at from.
func ExpandRecurrence(rule string, from, to time.Time) ([]time.Time, error) {
	rule = strings.TrimSpace(rule)
	if len(rule) >= 6 && strings.EqualFold(rule[:6], "RRULE:") {
		rule = rule[6:]
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidRecurrence, err)
	}
	opt.Dtstart = from.UTC()
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidRecurrence, err)
	}

	// Occurrences may carry a time of day; anything before the next
	// midnight still falls on the last day.
	end := calendarDay(to).AddDate(0, 0, 1)

	var dates []time.Time
	next := r.Iterator()
	for {
		occurrence, ok := next()
		if !ok || !occurrence.Before(end) {
			break
		}
		date := calendarDay(occurrence)
		if n := len(dates); n > 0 && dates[n-1].Equal(date) {
			continue
		}
		if len(dates) == MaxRecurringOccurrences {
			return nil, apperrors.ErrTooManyOccurrences
		}
		dates = append(dates, date)
	}
	return dates, nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
